package department

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"
	"rrhh-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateDepartment(ctx context.Context, payload any) (domain.Department, error)
	UpdateDepartment(ctx context.Context, id string, payload any) (domain.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Options(ctx context.Context, query OptionsQuery) ([]filter.Option, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return nil, err
	}

	branchIdx := domain.IndexBranches(branches)
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, mapDepartment(d, branchIdx))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}

	d, ok := domain.IndexDepartments(departments)[id]
	if !ok {
		return DepartmentResponse{}, apperror.ErrNotFound
	}
	return mapDepartment(d, domain.IndexBranches(branches)), nil
}

// Options lists departments as selector entries, narrowed to the given
// branch. Every entry it returns is also present in the unconstrained
// list.
func (s *service) Options(ctx context.Context, query OptionsQuery) ([]filter.Option, error) {
	departments, err := s.catalog.Departments(ctx)
	if err != nil {
		return nil, err
	}
	return filter.DepartmentOptions(departments, normalizeBranch(query.Branch)), nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	created, err := s.api.CreateDepartment(ctx, req)
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDepartment)
	s.logger.Info("department created", zap.String("department_id", created.ID.String()))
	return mapDepartment(created, nil), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	updated, err := s.api.UpdateDepartment(ctx, id, req)
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDepartment)
	s.logger.Info("department updated", zap.String("department_id", id))
	return mapDepartment(updated, nil), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteDepartment(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityDepartment)
	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

func normalizeBranch(v string) string {
	if v == "" {
		return filter.All
	}
	return v
}

func mapDepartment(d domain.Department, branches map[string]domain.Branch) DepartmentResponse {
	out := DepartmentResponse{
		ID:       d.ID.String(),
		Name:     d.Name,
		BranchID: d.OwningBranchID(),
	}
	if b, ok := branches[out.BranchID]; ok {
		out.BranchName = b.Name
	} else if d.Branch != nil {
		out.BranchName = d.Branch.Name
	}
	return out
}
