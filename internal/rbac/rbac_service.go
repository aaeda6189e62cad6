// Package rbac decides which screens each role may touch. The policy is
// static: the upstream HR API owns fine-grained ownership checks, this
// service only gates whole resources by the role claim in the token.
package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles, lowest to highest. Each role inherits everything below it.
const (
	RoleEmpleado = "empleado"
	RoleRRHH     = "rrhh"
	RoleAdmin    = "admin"
)

// Resources, one per admin screen.
const (
	ResourceCompanies   = "companies"
	ResourceBranches    = "branches"
	ResourceDepartments = "departments"
	ResourceRoles       = "roles"
	ResourceEmployees   = "employees"
	ResourceSchedules   = "schedules"
	ResourceDocuments   = "documents"
	ResourceDepartures  = "departures"
)

const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
	ActionDecide = "decide"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var groupingPolicies = [][]string{
	{RoleRRHH, RoleEmpleado},
	{RoleAdmin, RoleRRHH},
}

var policies = [][]string{
	{RoleEmpleado, ResourceBranches, ActionRead},
	{RoleEmpleado, ResourceDepartments, ActionRead},
	{RoleEmpleado, ResourceRoles, ActionRead},
	{RoleEmpleado, ResourceEmployees, ActionRead},
	{RoleEmpleado, ResourceSchedules, ActionRead},
	{RoleEmpleado, ResourceDocuments, ActionRead},
	{RoleEmpleado, ResourceDepartures, ActionRead},
	{RoleEmpleado, ResourceDepartures, ActionWrite},

	{RoleRRHH, ResourceCompanies, ActionRead},
	{RoleRRHH, ResourceEmployees, ActionWrite},
	{RoleRRHH, ResourceEmployees, ActionDelete},
	{RoleRRHH, ResourceDepartments, ActionWrite},
	{RoleRRHH, ResourceDepartments, ActionDelete},
	{RoleRRHH, ResourceRoles, ActionWrite},
	{RoleRRHH, ResourceRoles, ActionDelete},
	{RoleRRHH, ResourceSchedules, ActionWrite},
	{RoleRRHH, ResourceSchedules, ActionDelete},
	{RoleRRHH, ResourceDocuments, ActionWrite},
	{RoleRRHH, ResourceDocuments, ActionDelete},
	{RoleRRHH, ResourceDepartures, ActionDecide},

	{RoleAdmin, ResourceCompanies, ActionWrite},
	{RoleAdmin, ResourceCompanies, ActionDelete},
	{RoleAdmin, ResourceBranches, ActionWrite},
	{RoleAdmin, ResourceBranches, ActionDelete},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

// NewService builds the enforcer once; the policy never changes after
// construction, so Enforce needs no locking.
func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := enforcer.AddGroupingPolicies(groupingPolicies); err != nil {
		return nil, err
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return s.enforcer.Enforce(role, resource, action)
}
