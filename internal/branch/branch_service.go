package branch

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
	CreateBranch(ctx context.Context, payload any) (domain.Branch, error)
	UpdateBranch(ctx context.Context, id string, payload any) (domain.Branch, error)
	DeleteBranch(ctx context.Context, id string) error
}

type Service interface {
	GetAll(ctx context.Context) ([]BranchResponse, error)
	GetByID(ctx context.Context, id string) (BranchResponse, error)
	Options(ctx context.Context) ([]filter.Option, error)
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]BranchResponse, error) {
	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, mapBranch(b))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BranchResponse, error) {
	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return BranchResponse{}, err
	}

	b, ok := domain.IndexBranches(branches)[id]
	if !ok {
		return BranchResponse{}, apperror.ErrNotFound
	}
	return mapBranch(b), nil
}

// Options lists every branch as a selector entry.
func (s *service) Options(ctx context.Context) ([]filter.Option, error) {
	branches, err := s.catalog.Branches(ctx)
	if err != nil {
		return nil, err
	}
	return filter.BranchOptions(branches), nil
}

// Create invalidates beyond the branch snapshot: departments and
// employees embed branch references, so their snapshots go stale too.
// The catalog owns that closure.
func (s *service) Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error) {
	created, err := s.api.CreateBranch(ctx, req)
	if err != nil {
		return BranchResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityBranch)
	s.logger.Info("branch created", zap.String("branch_id", created.ID.String()))
	return mapBranch(created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error) {
	updated, err := s.api.UpdateBranch(ctx, id, req)
	if err != nil {
		return BranchResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityBranch)
	s.logger.Info("branch updated", zap.String("branch_id", id))
	return mapBranch(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteBranch(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityBranch)
	s.logger.Info("branch deleted", zap.String("branch_id", id))
	return nil
}

func mapBranch(b domain.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID.String(),
		CompanyID: b.CompanyID.String(),
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
	}
}
