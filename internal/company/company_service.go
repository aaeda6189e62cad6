package company

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// API is the slice of the HR client this feature mutates through.
type API interface {
	CreateCompany(ctx context.Context, payload any) (domain.Company, error)
	UpdateCompany(ctx context.Context, id string, payload any) (domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
}

type Service interface {
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api     API
	catalog catalog.Service
	logger  *zap.Logger
}

func NewService(api API, catalogService catalog.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{api: api, catalog: catalogService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.catalog.Companies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, mapCompany(c))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	companies, err := s.catalog.Companies(ctx)
	if err != nil {
		return CompanyResponse{}, err
	}

	for _, c := range companies {
		if c.ID.String() == id {
			return mapCompany(c), nil
		}
	}
	return CompanyResponse{}, apperror.ErrNotFound
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	created, err := s.api.CreateCompany(ctx, req)
	if err != nil {
		return CompanyResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityCompany)
	s.logger.Info("company created", zap.String("company_id", created.ID.String()))
	return mapCompany(created), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	updated, err := s.api.UpdateCompany(ctx, id, req)
	if err != nil {
		return CompanyResponse{}, err
	}

	s.catalog.Invalidate(ctx, catalog.EntityCompany)
	s.logger.Info("company updated", zap.String("company_id", id))
	return mapCompany(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCompany(ctx, id); err != nil {
		return err
	}

	s.catalog.Invalidate(ctx, catalog.EntityCompany)
	s.logger.Info("company deleted", zap.String("company_id", id))
	return nil
}

func mapCompany(c domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		RUC:     c.RUC,
		Address: c.Address,
	}
}
