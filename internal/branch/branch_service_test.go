package branch_test

import (
	"context"
	"testing"

	"rrhh-admin/internal/branch"
	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/catalog/mock"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"
	"rrhh-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeBranchAPI struct {
	createFn func(ctx context.Context, payload any) (domain.Branch, error)
	updateFn func(ctx context.Context, id string, payload any) (domain.Branch, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeBranchAPI) CreateBranch(ctx context.Context, payload any) (domain.Branch, error) {
	if f.createFn != nil {
		return f.createFn(ctx, payload)
	}
	return domain.Branch{}, nil
}

func (f *fakeBranchAPI) UpdateBranch(ctx context.Context, id string, payload any) (domain.Branch, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, payload)
	}
	return domain.Branch{}, nil
}

func (f *fakeBranchAPI) DeleteBranch(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type branchServiceDeps struct {
	catalog *mock.MockService
	api     *fakeBranchAPI
	service branch.Service
}

func setupBranchServiceTest(t *testing.T) *branchServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalogMock := mock.NewMockService(ctrl)
	api := &fakeBranchAPI{}

	return &branchServiceDeps{
		catalog: catalogMock,
		api:     api,
		service: branch.NewService(api, catalogMock, zap.NewNop()),
	}
}

func TestBranchService_Reads(t *testing.T) {
	deps := setupBranchServiceTest(t)
	deps.catalog.EXPECT().Branches(gomock.Any()).Return([]domain.Branch{
		{ID: "1", CompanyID: "c1", Name: "Centro", Address: "Av. Principal 100", Phone: "999111222"},
		{ID: "2", CompanyID: "c1", Name: "Norte"},
	}, nil).AnyTimes()

	t.Run("get all maps every branch", func(t *testing.T) {
		resp, err := deps.service.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []branch.BranchResponse{
			{ID: "1", CompanyID: "c1", Name: "Centro", Address: "Av. Principal 100", Phone: "999111222"},
			{ID: "2", CompanyID: "c1", Name: "Norte"},
		}, resp)
	})

	t.Run("get by id", func(t *testing.T) {
		resp, err := deps.service.GetByID(context.Background(), "2")
		assert.NoError(t, err)
		assert.Equal(t, "Norte", resp.Name)

		_, err = deps.service.GetByID(context.Background(), "404")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("options lead with the all entry", func(t *testing.T) {
		opts, err := deps.service.Options(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []filter.Option{
			{Label: "Todas", Value: filter.All},
			{Label: "Centro", Value: "1"},
			{Label: "Norte", Value: "2"},
		}, opts)
	})
}

func TestBranchService_Mutations(t *testing.T) {
	t.Run("create invalidates the branch closure", func(t *testing.T) {
		deps := setupBranchServiceTest(t)
		deps.catalog.EXPECT().Invalidate(gomock.Any(), catalog.EntityBranch)

		deps.api.createFn = func(ctx context.Context, payload any) (domain.Branch, error) {
			req := payload.(branch.CreateBranchRequest)
			return domain.Branch{ID: "3", Name: req.Name, Address: req.Address}, nil
		}

		resp, err := deps.service.Create(context.Background(), branch.CreateBranchRequest{Name: "Sur", Address: "Jr. Unión 55"})

		assert.NoError(t, err)
		assert.Equal(t, "3", resp.ID)
	})

	t.Run("delete failure propagates", func(t *testing.T) {
		deps := setupBranchServiceTest(t)
		deps.api.deleteFn = func(ctx context.Context, id string) error {
			return apperror.ErrUpstreamUnavailable
		}

		assert.ErrorIs(t, deps.service.Delete(context.Background(), "1"), apperror.ErrUpstreamUnavailable)
	})
}
