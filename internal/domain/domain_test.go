package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"rrhh-admin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"string", `"42"`, "42"},
		{"number", `42`, "42"},
		{"uuid string", `"550e8400-e29b-41d4-a716-446655440000"`, "550e8400-e29b-41d4-a716-446655440000"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id domain.ID
			err := json.Unmarshal([]byte(tc.in), &id)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, id.String())
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var id domain.ID
		err := json.Unmarshal([]byte(`{"id":1}`), &id)

		assert.Error(t, err)
	})

	t.Run("mixed types inside one payload", func(t *testing.T) {
		var depts []domain.Department
		payload := `[{"id":10,"branch_id":"1"},{"id":"20","branch_id":2}]`

		err := json.Unmarshal([]byte(payload), &depts)

		assert.NoError(t, err)
		assert.Equal(t, "10", depts[0].ID.String())
		assert.Equal(t, "1", depts[0].BranchID.String())
		assert.Equal(t, "20", depts[1].ID.String())
		assert.Equal(t, "2", depts[1].BranchID.String())
	})
}

func TestDepartment_OwningBranchID(t *testing.T) {
	t.Run("direct field wins", func(t *testing.T) {
		d := domain.Department{BranchID: "1", Branch: &domain.BranchRef{ID: "9"}}
		assert.Equal(t, "1", d.OwningBranchID())
	})

	t.Run("falls back to embedded reference", func(t *testing.T) {
		d := domain.Department{Branch: &domain.BranchRef{ID: "9"}}
		assert.Equal(t, "9", d.OwningBranchID())
	})

	t.Run("unresolvable yields empty", func(t *testing.T) {
		assert.Equal(t, "", domain.Department{}.OwningBranchID())
	})
}

func TestEmployee_Resolvers(t *testing.T) {
	departments := domain.IndexDepartments([]domain.Department{
		{ID: "10", Name: "RRHH", BranchID: "1"},
		{ID: "20", Name: "Ventas", BranchID: "2"},
	})

	t.Run("nil employment propagates to empty", func(t *testing.T) {
		e := domain.Employee{ID: "5"}

		assert.Equal(t, "", e.DepartmentID())
		assert.Equal(t, "", e.RoleID())
		assert.Equal(t, "", e.BranchID(departments))
	})

	t.Run("direct identifiers", func(t *testing.T) {
		e := domain.Employee{Employment: &domain.Employment{DepartmentID: "10", RoleID: "3"}}

		assert.Equal(t, "10", e.DepartmentID())
		assert.Equal(t, "3", e.RoleID())
		assert.Equal(t, "1", e.BranchID(departments))
	})

	t.Run("embedded references", func(t *testing.T) {
		e := domain.Employee{Employment: &domain.Employment{
			Department: &domain.DepartmentRef{ID: "20", BranchID: "2"},
			Role:       &domain.RoleRef{ID: "7"},
		}}

		assert.Equal(t, "20", e.DepartmentID())
		assert.Equal(t, "7", e.RoleID())
		assert.Equal(t, "2", e.BranchID(departments))
	})

	t.Run("branch through nested branch ref", func(t *testing.T) {
		e := domain.Employee{Employment: &domain.Employment{
			Department: &domain.DepartmentRef{ID: "20", Branch: &domain.BranchRef{ID: "2"}},
		}}

		assert.Equal(t, "2", e.BranchID(nil))
	})

	t.Run("branch completed through index", func(t *testing.T) {
		e := domain.Employee{Employment: &domain.Employment{DepartmentID: "20"}}

		assert.Equal(t, "2", e.BranchID(departments))
	})

	t.Run("unknown department yields empty branch", func(t *testing.T) {
		e := domain.Employee{Employment: &domain.Employment{DepartmentID: "99"}}

		assert.Equal(t, "", e.BranchID(departments))
	})
}

func TestEmployee_FullName(t *testing.T) {
	assert.Equal(t, "Maria Lopez", domain.Employee{FirstName: " Maria ", LastName: " Lopez "}.FullName())
	assert.Equal(t, "Maria", domain.Employee{FirstName: "Maria"}.FullName())
	assert.Equal(t, "", domain.Employee{}.FullName())
}

func TestResolveEmployee(t *testing.T) {
	employees := domain.IndexEmployees([]domain.Employee{
		{ID: "7", FirstName: "Maria", LastName: "Lopez"},
	})

	t.Run("embedded copy preferred", func(t *testing.T) {
		embedded := &domain.Employee{ID: "7", FirstName: "Embedded"}

		e, ok := domain.ResolveEmployee(embedded, "7", employees)

		assert.True(t, ok)
		assert.Equal(t, "Embedded", e.FirstName)
	})

	t.Run("index lookup by owner id", func(t *testing.T) {
		e, ok := domain.ResolveEmployee(nil, "7", employees)

		assert.True(t, ok)
		assert.Equal(t, "Maria", e.FirstName)
	})

	t.Run("unresolvable", func(t *testing.T) {
		_, ok := domain.ResolveEmployee(nil, "", employees)
		assert.False(t, ok)

		_, ok = domain.ResolveEmployee(nil, "99", employees)
		assert.False(t, ok)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		got, ok := domain.ParseDate("2024-01-15")

		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, ok := domain.ParseDate("2024-01-15T10:30:00Z")

		assert.True(t, ok)
		assert.Equal(t, 15, got.Day())
	})

	t.Run("unparseable", func(t *testing.T) {
		for _, in := range []string{"", "no-date", "15/01/2024"} {
			_, ok := domain.ParseDate(in)
			assert.False(t, ok, in)
		}
	})
}
