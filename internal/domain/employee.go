package domain

import "strings"

type Employee struct {
	ID         ID          `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Status     string      `json:"status"`
	Employment *Employment `json:"employment"`
}

// Employment is the nested assignment detail. Department and Role may
// arrive as bare identifiers, embedded references, both, or neither.
type Employment struct {
	DepartmentID ID             `json:"department_id"`
	Department   *DepartmentRef `json:"department"`
	RoleID       ID             `json:"role_id"`
	Role         *RoleRef       `json:"role"`
	ScheduleID   ID             `json:"schedule_id"`
}

type DepartmentRef struct {
	ID       ID         `json:"id"`
	Name     string     `json:"name"`
	BranchID ID         `json:"branch_id"`
	Branch   *BranchRef `json:"branch"`
}

type RoleRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// DepartmentID resolves the employee's department identifier with null
// propagation: missing employment or missing link yields "".
func (e Employee) DepartmentID() string {
	if e.Employment == nil {
		return ""
	}
	if !e.Employment.DepartmentID.IsZero() {
		return e.Employment.DepartmentID.String()
	}
	if e.Employment.Department != nil {
		return e.Employment.Department.ID.String()
	}
	return ""
}

// RoleID resolves the employee's role identifier, "" when unresolvable.
func (e Employee) RoleID() string {
	if e.Employment == nil {
		return ""
	}
	if !e.Employment.RoleID.IsZero() {
		return e.Employment.RoleID.String()
	}
	if e.Employment.Role != nil {
		return e.Employment.Role.ID.String()
	}
	return ""
}

// BranchID resolves the employee's branch through the department chain.
// The embedded department reference is preferred; when it only carries
// an identifier the department index completes the chain.
func (e Employee) BranchID(departments map[string]Department) string {
	if e.Employment == nil {
		return ""
	}

	if ref := e.Employment.Department; ref != nil {
		if !ref.BranchID.IsZero() {
			return ref.BranchID.String()
		}
		if ref.Branch != nil {
			return ref.Branch.ID.String()
		}
	}

	deptID := e.DepartmentID()
	if deptID == "" {
		return ""
	}
	if dept, ok := departments[deptID]; ok {
		return dept.OwningBranchID()
	}
	return ""
}
