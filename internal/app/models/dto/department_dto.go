package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" binding:"required,max=100"`
	HeadUserID     int64  `json:"head_user_id" binding:"required,min=1"`
}

// UpdateDepartmentRequest represents a partial department update
type UpdateDepartmentRequest struct {
	DepartmentName *string `json:"department_name,omitempty" binding:"omitempty,max=100"`
	HeadUserID     *int64  `json:"head_user_id,omitempty" binding:"omitempty,min=1"`
}

// DepartmentResponse represents department information
type DepartmentResponse struct {
	ID         int64  `json:"department_id"`
	Name       string `json:"department_name"`
	HeadUserID *int64 `json:"head_user_id,omitempty"`
}
