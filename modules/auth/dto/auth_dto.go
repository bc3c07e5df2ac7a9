package dto

// LoginRequest authenticates an administrator. DepartmentCode must resolve
// to a department with the admin role and Password must match the configured
// admin password.
type LoginRequest struct {
	DepartmentCode string `json:"department_code" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token          string `json:"token"`
	DepartmentName string `json:"department_name"`
	Role           string `json:"role"`
	ExpiresIn      int64  `json:"expires_in"`
}
