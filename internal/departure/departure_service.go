package departure

import (
	"context"

	"rrhh-admin/internal/catalog"
	departureerrors "rrhh-admin/internal/departure/errors"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"

	"go.uber.org/zap"
)

// Statuses is the fixed vocabulary of the request status selector.
var Statuses = []filter.Option{
	{Label: "Pendiente", Value: "pending"},
	{Label: "Aprobada", Value: "approved"},
	{Label: "Rechazada", Value: "rejected"},
}

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateDeparture(ctx context.Context, payload any) (domain.DepartureRequest, error)
	DecideDeparture(ctx context.Context, id string, payload any) (domain.DepartureRequest, error)
}

type Service interface {
	Screen(ctx context.Context, query ScreenQuery) (ScreenResponse, error)
	Create(ctx context.Context, req CreateDepartureRequest) (DepartureResponse, error)
	Decide(ctx context.Context, id string, req DecideDepartureRequest) (DepartureResponse, error)
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("departure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("departure.service")
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
	departures, err := s.catalog.Departures(ctx)
	if err != nil {
		return ScreenResponse{}, err
	}

	deptIdx := domain.IndexDepartments(departments)
	empIdx := domain.IndexEmployees(employees)

	st = st.Reconcile(
		filter.DepartmentOptions(departments, st.Branch),
		filter.EmployeeOptions(employees, deptIdx, st),
	)

	rows := make([]DepartureResponse, 0, len(departures))
	for _, req := range departures {
		if st.Matches(departureRecord(req, deptIdx, empIdx)) {
			rows = append(rows, mapDeparture(req, empIdx))
		}
	}

	return ScreenResponse{
		Filters: st,
		Options: ScreenOptions{
			Branches:    filter.BranchOptions(branches),
			Departments: filter.DepartmentOptions(departments, st.Branch),
			Roles:       filter.RoleOptions(roles),
			Employees:   filter.EmployeeOptions(employees, deptIdx, st),
			Statuses:    filter.WithAllOption(filter.LabelTodos, Statuses),
		},
		Rows:    rows,
		Context: screenContext(nav),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateDepartureRequest) (DepartureResponse, error) {
	created, err := s.api.CreateDeparture(ctx, req)
	if err != nil {
		return DepartureResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDeparture)
	s.logger.Info("departure request created",
		zap.String("departure_id", created.ID.String()),
		zap.String("employee_id", created.OwnerID()),
	)
	return mapDeparture(created, nil), nil
}

// Decide approves or rejects a pending request. Rejections carry the
// reason shown to the employee, so it cannot be empty.
func (s *service) Decide(ctx context.Context, id string, req DecideDepartureRequest) (DepartureResponse, error) {
	switch req.Status {
	case "approved":
	case "rejected":
		if req.Reason == "" {
			return DepartureResponse{}, departureerrors.ErrReasonRequired
		}
	default:
		return DepartureResponse{}, departureerrors.ErrInvalidDecision
	}

	decided, err := s.api.DecideDeparture(ctx, id, req)
	if err != nil {
		return DepartureResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDeparture)
	s.logger.Info("departure request decided",
		zap.String("departure_id", id),
		zap.String("status", req.Status),
	)
	return mapDeparture(decided, nil), nil
}

func stateFromQuery(q ScreenQuery) filter.State {
	return filter.State{
		Branch:     q.Branch,
		Department: q.Department,
		Role:       q.Role,
		Employee:   q.Employee,
		Status:     q.Status,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		Search:     q.Search,
	}.Normalized()
}

func screenContext(nav filter.NavContext) *ScreenContext {
	if !nav.Active() {
		return nil
	}
	return &ScreenContext{Kind: nav.Kind, ID: nav.ID, Name: nav.Name, Locked: nav.Locked()}
}

func departureRecord(req domain.DepartureRequest, departments map[string]domain.Department, employees map[string]domain.Employee) filter.Record {
	rec := filter.Record{
		Employee:     req.OwnerID(),
		Status:       req.Status,
		SearchFields: []string{req.Reason},
	}
	if t, ok := domain.ParseDate(req.Date); ok {
		rec.Date, rec.HasDate = t, true
	}
	if emp, ok := domain.ResolveEmployee(req.Employee, req.OwnerID(), employees); ok {
		rec.Branch = emp.BranchID(departments)
		rec.Department = emp.DepartmentID()
		rec.Role = emp.RoleID()
		rec.SearchFields = append(rec.SearchFields, emp.FullName(), emp.Email)
	}
	return rec
}

func mapDeparture(req domain.DepartureRequest, employees map[string]domain.Employee) DepartureResponse {
	out := DepartureResponse{
		ID:         req.ID.String(),
		EmployeeID: req.OwnerID(),
		Date:       req.Date,
		ExitTime:   req.ExitTime,
		ReturnTime: req.ReturnTime,
		Reason:     req.Reason,
		Status:     req.Status,
	}
	if emp, ok := domain.ResolveEmployee(req.Employee, req.OwnerID(), employees); ok {
		out.EmployeeName = emp.FullName()
	}
	return out
}
