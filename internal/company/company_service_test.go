package company_test

import (
	"context"
	"testing"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/catalog/mock"
	"rrhh-admin/internal/company"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeCompanyAPI struct {
	createFn func(ctx context.Context, payload any) (domain.Company, error)
	updateFn func(ctx context.Context, id string, payload any) (domain.Company, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeCompanyAPI) CreateCompany(ctx context.Context, payload any) (domain.Company, error) {
	if f.createFn != nil {
		return f.createFn(ctx, payload)
	}
	return domain.Company{}, nil
}

func (f *fakeCompanyAPI) UpdateCompany(ctx context.Context, id string, payload any) (domain.Company, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, payload)
	}
	return domain.Company{}, nil
}

func (f *fakeCompanyAPI) DeleteCompany(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type companyServiceDeps struct {
	catalog *mock.MockService
	api     *fakeCompanyAPI
	service company.Service
}

func setupCompanyServiceTest(t *testing.T) *companyServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalogMock := mock.NewMockService(ctrl)
	api := &fakeCompanyAPI{}

	return &companyServiceDeps{
		catalog: catalogMock,
		api:     api,
		service: company.NewService(api, catalogMock, zap.NewNop()),
	}
}

func TestCompanyService_Reads(t *testing.T) {
	deps := setupCompanyServiceTest(t)
	deps.catalog.EXPECT().Companies(gomock.Any()).Return([]domain.Company{
		{ID: "c1", Name: "Acme SAC", RUC: "20123456789", Address: "Av. Industrial 500"},
	}, nil).AnyTimes()

	resp, err := deps.service.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []company.CompanyResponse{
		{ID: "c1", Name: "Acme SAC", RUC: "20123456789", Address: "Av. Industrial 500"},
	}, resp)

	got, err := deps.service.GetByID(context.Background(), "c1")
	assert.NoError(t, err)
	assert.Equal(t, "Acme SAC", got.Name)

	_, err = deps.service.GetByID(context.Background(), "404")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCompanyService_Mutations(t *testing.T) {
	t.Run("update invalidates companies only", func(t *testing.T) {
		deps := setupCompanyServiceTest(t)
		deps.catalog.EXPECT().Invalidate(gomock.Any(), catalog.EntityCompany)

		deps.api.updateFn = func(ctx context.Context, id string, payload any) (domain.Company, error) {
			req := payload.(company.UpdateCompanyRequest)
			return domain.Company{ID: domain.ID(id), Name: req.Name, RUC: req.RUC}, nil
		}

		resp, err := deps.service.Update(context.Background(), "c1", company.UpdateCompanyRequest{Name: "Acme Perú SAC", RUC: "20123456789"})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Perú SAC", resp.Name)
	})

	t.Run("create failure skips invalidation", func(t *testing.T) {
		deps := setupCompanyServiceTest(t)
		deps.api.createFn = func(ctx context.Context, payload any) (domain.Company, error) {
			return domain.Company{}, apperror.ErrInvalidInput
		}

		_, err := deps.service.Create(context.Background(), company.CreateCompanyRequest{Name: "X", RUC: "123"})

		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}
