package department_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rrhh-admin/internal/department"
	"rrhh-admin/internal/filter"
	"rrhh-admin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeDepartmentService struct {
	getAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	getByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	optionsFn func(ctx context.Context, query department.OptionsQuery) ([]filter.Option, error)
	createFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	updateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Options(ctx context.Context, query department.OptionsQuery) ([]filter.Option, error) {
	return f.optionsFn(ctx, query)
}
func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestDepartmentHandler_GetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDepartmentService{
		optionsFn: func(ctx context.Context, query department.OptionsQuery) ([]filter.Option, error) {
			assert.Equal(t, "2", query.Branch)
			return []filter.Option{
				{Label: "Todas", Value: filter.All},
				{Label: "Logística", Value: "30"},
			}, nil
		},
	}

	h := department.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/departments/options?branch=2", nil)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var got []filter.Option
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}

func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			createFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, "Calidad", req.Name)
				return department.DepartmentResponse{ID: "50", Name: req.Name, BranchID: req.BranchID}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Calidad","branch_id":"1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative missing branch", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Calidad"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDepartmentService{
		getByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			return department.DepartmentResponse{}, apperror.ErrNotFound
		},
	}

	h := department.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/departments/404", nil)
	c.Params = gin.Params{{Key: "id", Value: "404"}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDepartmentService{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "10", id)
			return nil
		},
	}

	h := department.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/departments/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
