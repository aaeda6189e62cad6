package domain

// Index helpers keyed by normalized identifier. Entries without an
// identifier are skipped rather than indexed under "".

func IndexBranches(branches []Branch) map[string]Branch {
	idx := make(map[string]Branch, len(branches))
	for _, b := range branches {
		if b.ID.IsZero() {
			continue
		}
		idx[b.ID.String()] = b
	}
	return idx
}

func IndexDepartments(departments []Department) map[string]Department {
	idx := make(map[string]Department, len(departments))
	for _, d := range departments {
		if d.ID.IsZero() {
			continue
		}
		idx[d.ID.String()] = d
	}
	return idx
}

func IndexEmployees(employees []Employee) map[string]Employee {
	idx := make(map[string]Employee, len(employees))
	for _, e := range employees {
		if e.ID.IsZero() {
			continue
		}
		idx[e.ID.String()] = e
	}
	return idx
}

func IndexRoles(roles []Role) map[string]Role {
	idx := make(map[string]Role, len(roles))
	for _, r := range roles {
		if r.ID.IsZero() {
			continue
		}
		idx[r.ID.String()] = r
	}
	return idx
}

// ResolveEmployee returns the employee a record belongs to, preferring
// the embedded copy over an index lookup.
func ResolveEmployee(embedded *Employee, ownerID string, employees map[string]Employee) (Employee, bool) {
	if embedded != nil {
		return *embedded, true
	}
	if ownerID == "" {
		return Employee{}, false
	}
	e, ok := employees[ownerID]
	return e, ok
}
