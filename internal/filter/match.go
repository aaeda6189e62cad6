package filter

import (
	"strings"
	"time"

	"rrhh-admin/internal/domain"
)

// Record is the normalized row context a screen's resolver produces for
// each listed record. Context identifiers left empty mean the chain
// could not be resolved; such a record fails any constrained context
// dimension but still passes when everything is at All.
type Record struct {
	Branch       string
	Department   string
	Role         string
	Employee     string
	Status       string
	DocType      string
	Date         time.Time
	HasDate      bool
	SearchFields []string
}

// Matches reports whether the record passes every constrained dimension.
// Dimensions are conjunctive and independent; a dimension at All or
// empty imposes nothing.
func (s State) Matches(r Record) bool {
	if !matchSelect(s.Branch, r.Branch) {
		return false
	}
	if !matchSelect(s.Department, r.Department) {
		return false
	}
	if !matchSelect(s.Role, r.Role) {
		return false
	}
	if !matchSelect(s.Employee, r.Employee) {
		return false
	}
	if !matchSelect(s.Status, r.Status) {
		return false
	}
	if !matchSelect(s.DocType, r.DocType) {
		return false
	}
	if !s.matchDate(r) {
		return false
	}
	return s.matchSearch(r)
}

func matchSelect(selected, value string) bool {
	if !isConstrained(selected) {
		return true
	}
	return value == selected
}

// matchDate applies the inclusive day-granular [DateFrom, DateTo] check.
// An unset or unparseable bound imposes nothing; a record without a
// parseable date fails whenever any bound is set.
func (s State) matchDate(r Record) bool {
	from, hasFrom := domain.ParseDate(strings.TrimSpace(s.DateFrom))
	to, hasTo := domain.ParseDate(strings.TrimSpace(s.DateTo))
	if !hasFrom && !hasTo {
		return true
	}
	if !r.HasDate {
		return false
	}

	day := toDay(r.Date)
	if hasFrom && day.Before(toDay(from)) {
		return false
	}
	if hasTo && day.After(toDay(to)) {
		return false
	}
	return true
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// matchSearch requires the trimmed, case-insensitive search string to be
// a substring of at least one searchable field.
func (s State) matchSearch(r Record) bool {
	q := strings.ToLower(strings.TrimSpace(s.Search))
	if q == "" {
		return true
	}
	for _, f := range r.SearchFields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
