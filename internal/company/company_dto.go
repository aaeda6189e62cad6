package company

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	RUC     string `json:"ruc" binding:"required,len=11,numeric"`
	Address string `json:"address" binding:"max=200"`
}

type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	RUC     string `json:"ruc" binding:"required,len=11,numeric"`
	Address string `json:"address" binding:"max=200"`
}

type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RUC     string `json:"ruc,omitempty"`
	Address string `json:"address,omitempty"`
}
