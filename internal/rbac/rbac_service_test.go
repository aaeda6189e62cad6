package rbac_test

import (
	"testing"

	"rrhh-admin/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	service, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"empleado reads documents", rbac.RoleEmpleado, rbac.ResourceDocuments, rbac.ActionRead, true},
		{"empleado files a departure request", rbac.RoleEmpleado, rbac.ResourceDepartures, rbac.ActionWrite, true},
		{"empleado cannot manage employees", rbac.RoleEmpleado, rbac.ResourceEmployees, rbac.ActionWrite, false},
		{"empleado cannot decide departures", rbac.RoleEmpleado, rbac.ResourceDepartures, rbac.ActionDecide, false},
		{"empleado cannot see companies", rbac.RoleEmpleado, rbac.ResourceCompanies, rbac.ActionRead, false},

		{"rrhh inherits employee reads", rbac.RoleRRHH, rbac.ResourceDocuments, rbac.ActionRead, true},
		{"rrhh manages employees", rbac.RoleRRHH, rbac.ResourceEmployees, rbac.ActionWrite, true},
		{"rrhh decides departures", rbac.RoleRRHH, rbac.ResourceDepartures, rbac.ActionDecide, true},
		{"rrhh cannot manage branches", rbac.RoleRRHH, rbac.ResourceBranches, rbac.ActionWrite, false},
		{"rrhh cannot manage companies", rbac.RoleRRHH, rbac.ResourceCompanies, rbac.ActionWrite, false},

		{"admin inherits rrhh", rbac.RoleAdmin, rbac.ResourceEmployees, rbac.ActionWrite, true},
		{"admin inherits empleado reads", rbac.RoleAdmin, rbac.ResourceDepartures, rbac.ActionRead, true},
		{"admin manages companies", rbac.RoleAdmin, rbac.ResourceCompanies, rbac.ActionDelete, true},
		{"admin manages branches", rbac.RoleAdmin, rbac.ResourceBranches, rbac.ActionWrite, true},

		{"unknown role denied", "auditor", rbac.ResourceDocuments, rbac.ActionRead, false},
		{"empty role denied", "", rbac.ResourceDocuments, rbac.ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := service.Enforce(tc.role, tc.resource, tc.action)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}
