package filter

import "rrhh-admin/internal/domain"

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Labels of the synthetic All entry, per the noun's gender.
const (
	LabelTodas = "Todas"
	LabelTodos = "Todos"
)

// WithAllOption prepends the synthetic All entry, preserving the order
// of the given options.
func WithAllOption(label string, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, Option{Label: label, Value: All})
	return append(out, opts...)
}

func hasValue(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// BranchOptions lists every branch, input order preserved, All first.
func BranchOptions(branches []domain.Branch) []Option {
	opts := make([]Option, 0, len(branches))
	for _, b := range branches {
		opts = append(opts, Option{Label: b.Name, Value: b.ID.String()})
	}
	return WithAllOption(LabelTodas, opts)
}

// DepartmentOptions lists the departments visible under the branch
// selection: all of them when branch is All, otherwise only departments
// whose owning branch matches, identifiers compared as strings.
func DepartmentOptions(departments []domain.Department, branch string) []Option {
	opts := make([]Option, 0, len(departments))
	for _, d := range departments {
		if isConstrained(branch) && d.OwningBranchID() != branch {
			continue
		}
		opts = append(opts, Option{Label: d.Name, Value: d.ID.String()})
	}
	return WithAllOption(LabelTodas, opts)
}

// RoleOptions lists every role, All first.
func RoleOptions(roles []domain.Role) []Option {
	opts := make([]Option, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, Option{Label: r.Name, Value: r.ID.String()})
	}
	return WithAllOption(LabelTodos, opts)
}

// EmployeeOptions keeps an employee only if it satisfies every
// constrained context dimension: branch through the department chain,
// department, and role. An employee whose chain cannot be resolved
// fails any constrained dimension. The department index completes
// chains where the employment detail carries only identifiers.
func EmployeeOptions(employees []domain.Employee, departments map[string]domain.Department, s State) []Option {
	opts := make([]Option, 0, len(employees))
	for _, e := range employees {
		if isConstrained(s.Branch) && e.BranchID(departments) != s.Branch {
			continue
		}
		if isConstrained(s.Department) && e.DepartmentID() != s.Department {
			continue
		}
		if isConstrained(s.Role) && e.RoleID() != s.Role {
			continue
		}

		label := e.FullName()
		if label == "" {
			label = e.Email
		}
		opts = append(opts, Option{Label: label, Value: e.ID.String()})
	}
	return WithAllOption(LabelTodos, opts)
}
