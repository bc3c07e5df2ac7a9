package dto

type CreateDepartmentCodeRequest struct {
	Code           string `json:"code" validate:"required"`
	DepartmentName string `json:"department_name" validate:"required"`
	Role           string `json:"role"`
}

type UpdateDepartmentCodeRequest struct {
	Code           string `json:"code"`
	DepartmentName string `json:"department_name"`
	Role           string `json:"role"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// VerifyCodeResponse never echoes the code back. Clients only learn which
// department it belongs to.
type VerifyCodeResponse struct {
	Valid          bool   `json:"valid"`
	DepartmentName string `json:"department_name,omitempty"`
	Role           string `json:"role,omitempty"`
}
