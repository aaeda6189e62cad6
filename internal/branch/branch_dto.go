package branch

type CreateBranchRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Address   string `json:"address" binding:"max=200"`
	Phone     string `json:"phone" binding:"omitempty,min=6,max=20"`
}

type UpdateBranchRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Address   string `json:"address" binding:"max=200"`
	Phone     string `json:"phone" binding:"omitempty,min=6,max=20"`
}

type BranchResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
