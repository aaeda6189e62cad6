package department_test

import (
	"context"
	"testing"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/catalog/mock"
	"rrhh-admin/internal/department"
	"rrhh-admin/internal/domain"
	"rrhh-admin/internal/filter"
	"rrhh-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeDepartmentAPI struct {
	createFn func(ctx context.Context, payload any) (domain.Department, error)
	updateFn func(ctx context.Context, id string, payload any) (domain.Department, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeDepartmentAPI) CreateDepartment(ctx context.Context, payload any) (domain.Department, error) {
	if f.createFn != nil {
		return f.createFn(ctx, payload)
	}
	return domain.Department{}, nil
}

func (f *fakeDepartmentAPI) UpdateDepartment(ctx context.Context, id string, payload any) (domain.Department, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, payload)
	}
	return domain.Department{}, nil
}

func (f *fakeDepartmentAPI) DeleteDepartment(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

var (
	testBranches = []domain.Branch{
		{ID: "1", Name: "Centro"},
		{ID: "2", Name: "Norte"},
	}
	testDepartments = []domain.Department{
		{ID: "10", Name: "RRHH", BranchID: "1"},
		{ID: "20", Name: "Ventas", BranchID: "1"},
		{ID: "30", Name: "Logística", BranchID: "2"},
		{ID: "40", Name: "Huérfano"},
	}
)

type departmentServiceDeps struct {
	catalog *mock.MockService
	api     *fakeDepartmentAPI
	service department.Service
}

func setupDepartmentServiceTest(t *testing.T) *departmentServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalogMock := mock.NewMockService(ctrl)
	api := &fakeDepartmentAPI{}

	return &departmentServiceDeps{
		catalog: catalogMock,
		api:     api,
		service: department.NewService(api, catalogMock, zap.NewNop()),
	}
}

func (d *departmentServiceDeps) stubWorld() {
	d.catalog.EXPECT().Branches(gomock.Any()).Return(testBranches, nil).AnyTimes()
	d.catalog.EXPECT().Departments(gomock.Any()).Return(testDepartments, nil).AnyTimes()
}

func TestDepartmentService_GetAll(t *testing.T) {
	deps := setupDepartmentServiceTest(t)
	deps.stubWorld()

	resp, err := deps.service.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 4)
	assert.Equal(t, department.DepartmentResponse{ID: "10", Name: "RRHH", BranchID: "1", BranchName: "Centro"}, resp[0])
	assert.Empty(t, resp[3].BranchName)
}

func TestDepartmentService_Options(t *testing.T) {
	deps := setupDepartmentServiceTest(t)
	deps.stubWorld()

	t.Run("empty branch lists everything", func(t *testing.T) {
		opts, err := deps.service.Options(context.Background(), department.OptionsQuery{})

		assert.NoError(t, err)
		assert.Equal(t, filter.Option{Label: "Todas", Value: filter.All}, opts[0])
		assert.Len(t, opts, 5)
	})

	t.Run("branch narrows to its departments", func(t *testing.T) {
		opts, err := deps.service.Options(context.Background(), department.OptionsQuery{Branch: "2"})

		assert.NoError(t, err)
		assert.Equal(t, []filter.Option{
			{Label: "Todas", Value: filter.All},
			{Label: "Logística", Value: "30"},
		}, opts)
	})

	t.Run("narrowed options are a subset of the full list", func(t *testing.T) {
		all, err := deps.service.Options(context.Background(), department.OptionsQuery{})
		assert.NoError(t, err)

		for _, branch := range []string{"1", "2"} {
			narrowed, err := deps.service.Options(context.Background(), department.OptionsQuery{Branch: branch})
			assert.NoError(t, err)
			for _, opt := range narrowed {
				assert.Contains(t, all, opt)
			}
		}
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	deps := setupDepartmentServiceTest(t)
	deps.stubWorld()

	resp, err := deps.service.GetByID(context.Background(), "30")
	assert.NoError(t, err)
	assert.Equal(t, "Norte", resp.BranchName)

	_, err = deps.service.GetByID(context.Background(), "404")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDepartmentService_Mutations(t *testing.T) {
	t.Run("create invalidates department and employee snapshots", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		deps.catalog.EXPECT().Invalidate(gomock.Any(), catalog.EntityDepartment)

		deps.api.createFn = func(ctx context.Context, payload any) (domain.Department, error) {
			req := payload.(department.CreateDepartmentRequest)
			return domain.Department{ID: "50", Name: req.Name, BranchID: domain.ID(req.BranchID)}, nil
		}

		resp, err := deps.service.Create(context.Background(), department.CreateDepartmentRequest{Name: "Calidad", BranchID: "1"})

		assert.NoError(t, err)
		assert.Equal(t, "50", resp.ID)
		assert.Equal(t, "1", resp.BranchID)
	})

	t.Run("update failure propagates without invalidation", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		deps.api.updateFn = func(ctx context.Context, id string, payload any) (domain.Department, error) {
			return domain.Department{}, apperror.ErrNotFound
		}

		_, err := deps.service.Update(context.Background(), "404", department.UpdateDepartmentRequest{Name: "Calidad", BranchID: "1"})

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("delete invalidates", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		deps.catalog.EXPECT().Invalidate(gomock.Any(), catalog.EntityDepartment)

		assert.NoError(t, deps.service.Delete(context.Background(), "10"))
	})
}
