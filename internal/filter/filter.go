// Package filter implements the hierarchical filter and cascading
// selection rules shared by the admin list screens. It is a pure
// package: no I/O, no logging, and no failure modes. Empty inputs
// derive empty outputs.
package filter

// All is the sentinel selection meaning "no constraint on this
// dimension". Select dimensions that arrive empty are treated as All.
const All = "all"

// Filter dimension names as they travel in query strings.
const (
	DimBranch     = "branch"
	DimDepartment = "department"
	DimRole       = "role"
	DimEmployee   = "employee"
	DimStatus     = "status"
	DimDocType    = "doc_type"
	DimDateFrom   = "date_from"
	DimDateTo     = "date_to"
	DimSearch     = "search"
)

// State holds one screen's filter selections. Select dimensions use the
// All sentinel; date bounds and search default to empty.
type State struct {
	Branch     string `json:"branch"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Employee   string `json:"employee"`
	Status     string `json:"status"`
	DocType    string `json:"doc_type"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
	Search     string `json:"search"`
}

// NewState returns the unrestricted state every screen starts from.
func NewState() State {
	return State{
		Branch:     All,
		Department: All,
		Role:       All,
		Employee:   All,
		Status:     All,
		DocType:    All,
	}
}

// NavContext carries the navigation parameters of context mode: a screen
// entered from a branch's or department's "view employees" action shows
// that dimension pre-seeded and locked.
type NavContext struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NavContext discriminators. An empty Kind means normal mode.
const (
	ContextBranch     = "branch"
	ContextDepartment = "department"
)

func (n NavContext) Active() bool {
	return (n.Kind == ContextBranch || n.Kind == ContextDepartment) && n.ID != ""
}

// Locked names the dimension the context pins, "" in normal mode.
func (n NavContext) Locked() string {
	if !n.Active() {
		return ""
	}
	if n.Kind == ContextBranch {
		return DimBranch
	}
	return DimDepartment
}

// Seeded builds the initial state for a screen entered in context mode.
// The seeded dimension participates in derivation like any other
// selection; only its presentation is locked.
func Seeded(nav NavContext) State {
	return nav.Apply(NewState())
}

// Apply pins the locked dimension onto an existing state. Whatever the
// client sent for that dimension is overridden; everything else is kept,
// so a state that was already consistent with the context survives. In
// normal mode the state passes through unchanged.
func (n NavContext) Apply(s State) State {
	switch {
	case !n.Active():
	case n.Kind == ContextBranch:
		s.Branch = n.ID
	case n.Kind == ContextDepartment:
		s.Department = n.ID
	}
	return s
}

// Change sets one dimension and cascade-resets the selections that
// depend on it: branch resets department and employee, department and
// role each reset employee. Re-selecting the current value is a no-op,
// so dependents survive. Unknown dimensions leave the state untouched.
func (s State) Change(dim, value string) State {
	switch dim {
	case DimBranch:
		value = normalizeSelect(value)
		if value == s.Branch {
			return s
		}
		s.Branch = value
		s.Department = All
		s.Employee = All
	case DimDepartment:
		value = normalizeSelect(value)
		if value == s.Department {
			return s
		}
		s.Department = value
		s.Employee = All
	case DimRole:
		value = normalizeSelect(value)
		if value == s.Role {
			return s
		}
		s.Role = value
		s.Employee = All
	case DimEmployee:
		s.Employee = normalizeSelect(value)
	case DimStatus:
		s.Status = normalizeSelect(value)
	case DimDocType:
		s.DocType = normalizeSelect(value)
	case DimDateFrom:
		s.DateFrom = value
	case DimDateTo:
		s.DateTo = value
	case DimSearch:
		s.Search = value
	}
	return s
}

// Reconcile self-heals stale selections after a data refresh: a selected
// department or employee no longer present in its recomputed option set
// silently resets to All. A healed department drags employee with it,
// the same dependency Change enforces.
func (s State) Reconcile(departmentOpts, employeeOpts []Option) State {
	if isConstrained(s.Department) && !hasValue(departmentOpts, s.Department) {
		s.Department = All
		s.Employee = All
	}
	if isConstrained(s.Employee) && !hasValue(employeeOpts, s.Employee) {
		s.Employee = All
	}
	return s
}

// Normalized maps empty select values to All so states built straight
// from query parameters obey the sentinel convention.
func (s State) Normalized() State {
	s.Branch = normalizeSelect(s.Branch)
	s.Department = normalizeSelect(s.Department)
	s.Role = normalizeSelect(s.Role)
	s.Employee = normalizeSelect(s.Employee)
	s.Status = normalizeSelect(s.Status)
	s.DocType = normalizeSelect(s.DocType)
	return s
}

func normalizeSelect(v string) string {
	if v == "" {
		return All
	}
	return v
}

func isConstrained(v string) bool {
	return v != "" && v != All
}
