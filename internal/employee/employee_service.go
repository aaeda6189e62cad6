package employee

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"
	"rrhh-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// Statuses is the fixed vocabulary of the employee status selector.
var Statuses = []filter.Option{
	{Label: "Activo", Value: "active"},
	{Label: "Inactivo", Value: "inactive"},
}

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateEmployee(ctx context.Context, payload any) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, payload any) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type Service interface {
	Screen(ctx context.Context, query ScreenQuery) (ScreenResponse, error)
	Options(ctx context.Context, query OptionsQuery) ([]filter.Option, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) Screen(ctx context.Context, query ScreenQuery) (ScreenResponse, error) {
	nav := filter.NavContext{Kind: query.CtxKind, ID: query.CtxID, Name: query.CtxName}

	st := nav.Apply(stateFromQuery(query))
	if query.Changed != "" {
		st = nav.Apply(st.Change(query.Changed, query.Value))
	}

	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}
	employees, err := s.catalog.Employees(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}

	deptIdx := domain.IndexDepartments(departments)
	roleIdx := domain.IndexRoles(roles)

	// No employee dimension here; only the department selection can go
	// stale.
	st = st.Reconcile(filter.DepartmentOptions(departments, st.Branch), nil)

	rows := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if st.Matches(employeeRecord(e, deptIdx)) {
			rows = append(rows, mapEmployee(e, deptIdx, roleIdx))
		}
	}

	return ScreenResponse{
		Filters: st,
		Options: ScreenOptions{
			Branches:    filter.BranchOptions(branches),
			Departments: filter.DepartmentOptions(departments, st.Branch),
			Roles:       filter.RoleOptions(roles),
			Statuses:    filter.WithAllOption(filter.LabelTodos, Statuses),
		},
		Rows:    rows,
		Context: screenContext(nav),
	}, nil
}

// Options derives the cascading employee option list for the given
// branch, department and role selections.
func (s *service) Options(ctx context.Context, query OptionsQuery) ([]filter.Option, error) {
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.catalog.Employees(ctx)
	if err != nil {
		return nil, err
	}

	st := filter.State{
		Branch:     query.Branch,
		Department: query.Department,
		Role:       query.Role,
	}.Normalized()

	return filter.EmployeeOptions(employees, domain.IndexDepartments(departments), st), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.catalog.Employees(ctx)
	if err != nil {
		return nil, err
	}

	deptIdx := domain.IndexDepartments(departments)
	roleIdx := domain.IndexRoles(roles)

	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, mapEmployee(e, deptIdx, roleIdx))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return EmployeeResponse{}, err
	}
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return EmployeeResponse{}, err
	}
	employees, err := s.catalog.Employees(ctx)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e, ok := domain.IndexEmployees(employees)[id]
	if !ok {
		return EmployeeResponse{}, apperror.ErrNotFound
	}
	return mapEmployee(e, domain.IndexDepartments(departments), domain.IndexRoles(roles)), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	created, err := s.api.CreateEmployee(ctx, req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityEmployee)
	s.logger.Info("employee created", zap.String("employee_id", created.ID.String()))
	return mapEmployee(created, nil, nil), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	updated, err := s.api.UpdateEmployee(ctx, id, req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityEmployee)
	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapEmployee(updated, nil, nil), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityEmployee)
	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func stateFromQuery(q ScreenQuery) filter.State {
	return filter.State{
		Branch:     q.Branch,
		Department: q.Department,
		Role:       q.Role,
		Status:     q.Status,
		Search:     q.Search,
	}.Normalized()
}

func screenContext(nav filter.NavContext) *ScreenContext {
	if !nav.Active() {
		return nil
	}
	return &ScreenContext{Kind: nav.Kind, ID: nav.ID, Name: nav.Name, Locked: nav.Locked()}
}

func employeeRecord(e domain.Employee, departments map[string]domain.Department) filter.Record {
	return filter.Record{
		Branch:       e.BranchID(departments),
		Department:   e.DepartmentID(),
		Role:         e.RoleID(),
		Employee:     e.ID.String(),
		Status:       e.Status,
		SearchFields: []string{e.FullName(), e.Email},
	}
}

func mapEmployee(e domain.Employee, departments map[string]domain.Department, roles map[string]domain.Role) EmployeeResponse {
	out := EmployeeResponse{
		ID:       e.ID.String(),
		FullName: e.FullName(),
		Email:    e.Email,
		Status:   e.Status,
		BranchID: e.BranchID(departments),
	}

	if deptID := e.DepartmentID(); deptID != "" {
		out.DepartmentID = deptID
		if d, ok := departments[deptID]; ok {
			out.DepartmentName = d.Name
		} else if e.Employment != nil && e.Employment.Department != nil {
			out.DepartmentName = e.Employment.Department.Name
		}
	}

	if roleID := e.RoleID(); roleID != "" {
		out.RoleID = roleID
		if r, ok := roles[roleID]; ok {
			out.RoleName = r.Name
		} else if e.Employment != nil && e.Employment.Role != nil {
			out.RoleName = e.Employment.Role.Name
		}
	}

	return out
}
