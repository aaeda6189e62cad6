package branch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rrhh-admin/internal/branch"
	"rrhh-admin/internal/filter"

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

type fakeBranchService struct {
	getAllFn  func(ctx context.Context) ([]branch.BranchResponse, error)
	getByIDFn func(ctx context.Context, id string) (branch.BranchResponse, error)
	optionsFn func(ctx context.Context) ([]filter.Option, error)
	createFn  func(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	updateFn  func(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeBranchService) GetAll(ctx context.Context) ([]branch.BranchResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeBranchService) GetByID(ctx context.Context, id string) (branch.BranchResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeBranchService) Options(ctx context.Context) ([]filter.Option, error) {
	return f.optionsFn(ctx)
}
func (f *fakeBranchService) Create(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeBranchService) Update(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeBranchService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestBranchHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeBranchService{
		getAllFn: func(ctx context.Context) ([]branch.BranchResponse, error) {
			return []branch.BranchResponse{{ID: "1", Name: "Centro"}}, nil
		},
	}

	h := branch.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/branches", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestBranchHandler_GetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeBranchService{
		optionsFn: func(ctx context.Context) ([]filter.Option, error) {
			return []filter.Option{{Label: "Todas", Value: filter.All}, {Label: "Centro", Value: "1"}}, nil
		},
	}

	h := branch.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/branches/options", nil)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())

	var opts []filter.Option
	assert.NoError(t, json.Unmarshal(env.Data, &opts))
	assert.Equal(t, "all", opts[0].Value)
}

func TestBranchHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeBranchService{
			createFn: func(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
				assert.Equal(t, "Sur", req.Name)
				return branch.BranchResponse{ID: "3", Name: req.Name}, nil
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/branches", strings.NewReader(`{"name":"Sur"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative name too short", func(t *testing.T) {
		h := branch.NewHandler(&fakeBranchService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/branches", strings.NewReader(`{"name":"S"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}
