package role

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
	CreateRole(ctx context.Context, payload any) (domain.Role, error)
	UpdateRole(ctx context.Context, id string, payload any) (domain.Role, error)
	DeleteRole(ctx context.Context, id string) error
}

type Service interface {
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	Options(ctx context.Context) ([]filter.Option, error)
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, mapRole(r))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return RoleResponse{}, err
	}

	r, ok := domain.IndexRoles(roles)[id]
	if !ok {
		return RoleResponse{}, apperror.ErrNotFound
	}
	return mapRole(r), nil
}

// Options lists every role as a selector entry. Roles never narrow by
// branch or department, so there is no query to bind.
func (s *service) Options(ctx context.Context) ([]filter.Option, error) {
	roles, err := s.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	return filter.RoleOptions(roles), nil
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	created, err := s.api.CreateRole(ctx, req)
	if err != nil {
		return RoleResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityRole)
	s.logger.Info("role created", zap.String("role_id", created.ID.String()))
	return mapRole(created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	updated, err := s.api.UpdateRole(ctx, id, req)
	if err != nil {
		return RoleResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityRole)
	s.logger.Info("role updated", zap.String("role_id", id))
	return mapRole(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteRole(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityRole)
	s.logger.Info("role deleted", zap.String("role_id", id))
	return nil
}

func mapRole(r domain.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
	}
}
