package domain

// Read models for the upstream HR API's master data. Every nested link
// is optional: the API sometimes embeds the referenced entity, sometimes
// only its identifier, sometimes neither.

type Company struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	RUC     string `json:"ruc"`
	Address string `json:"address"`
}

type Branch struct {
	ID        ID     `json:"id"`
	CompanyID ID     `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type BranchRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Department struct {
	ID       ID         `json:"id"`
	Name     string     `json:"name"`
	BranchID ID         `json:"branch_id"`
	Branch   *BranchRef `json:"branch"`
}

// OwningBranchID reads the owning branch from the direct field when the
// API sent one, falling back to the embedded reference.
func (d Department) OwningBranchID() string {
	if !d.BranchID.IsZero() {
		return d.BranchID.String()
	}
	if d.Branch != nil {
		return d.Branch.ID.String()
	}
	return ""
}

type Role struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Schedule struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	EntryTime        string `json:"entry_time"`
	ExitTime         string `json:"exit_time"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
}
