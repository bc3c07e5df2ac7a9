package dto

type MarkAsReadRequest struct {
	DepartmentCode string   `json:"department_code" validate:"required"`
	IDs            []string `json:"ids" validate:"required"`
}

type MarkAllAsReadRequest struct {
	DepartmentCode string `json:"department_code" validate:"required"`
}

type CreateNotificationRequest struct {
	DepartmentCode string                 `json:"department_code"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message"`
	Type           string                 `json:"type"`
	Data           map[string]interface{} `json:"data"`
}
