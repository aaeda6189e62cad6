package department

type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	BranchID string `json:"branch_id" binding:"required"`
}

type UpdateDepartmentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	BranchID string `json:"branch_id" binding:"required"`
}

// OptionsQuery narrows the department option list to one branch; the
// zero value (or "all") lists every department.
type OptionsQuery struct {
	Branch string `form:"branch"`
}

type DepartmentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BranchID   string `json:"branch_id,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
}
