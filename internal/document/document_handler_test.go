package document_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rrhh-admin/internal/document"
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

type fakeDocumentService struct {
	screenFn func(ctx context.Context, query document.ScreenQuery) (document.ScreenResponse, error)
	createFn func(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeDocumentService) Screen(ctx context.Context, query document.ScreenQuery) (document.ScreenResponse, error) {
	return f.screenFn(ctx, query)
}
func (f *fakeDocumentService) Create(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeDocumentService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestDocumentHandler_Screen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success binds the query and echoes the derived screen", func(t *testing.T) {
		svc := &fakeDocumentService{
			screenFn: func(ctx context.Context, query document.ScreenQuery) (document.ScreenResponse, error) {
				assert.Equal(t, "1", query.Branch)
				assert.Equal(t, filter.DimDepartment, query.Changed)
				assert.Equal(t, "10", query.Value)
				assert.Equal(t, filter.ContextBranch, query.CtxKind)

				st := filter.NewState()
				st.Branch = "1"
				st.Department = "10"
				return document.ScreenResponse{
					Filters: st,
					Rows:    []document.DocumentResponse{{ID: "d1", FileName: "cv.pdf"}},
				}, nil
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/documents/screen?branch=1&changed=department&value=10&ctx=branch&ctx_id=1", nil)

		h.Screen(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got document.ScreenResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "10", got.Filters.Department)
		assert.Len(t, got.Rows, 1)
	})

	t.Run("pagination windows the rows only", func(t *testing.T) {
		rows := make([]document.DocumentResponse, 0, 25)
		for i := 0; i < 25; i++ {
			rows = append(rows, document.DocumentResponse{ID: string(rune('a' + i))})
		}
		svc := &fakeDocumentService{
			screenFn: func(ctx context.Context, query document.ScreenQuery) (document.ScreenResponse, error) {
				return document.ScreenResponse{Filters: filter.NewState(), Rows: rows}, nil
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/documents/screen?page=3&page_size=10", nil)

		h.Screen(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got document.ScreenResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got.Rows, 5)
		assert.Equal(t, filter.All, got.Filters.Branch)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeDocumentService{
			screenFn: func(ctx context.Context, query document.ScreenQuery) (document.ScreenResponse, error) {
				return document.ScreenResponse{}, apperror.ErrUpstreamUnavailable
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/documents/screen", nil)

		h.Screen(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, apperror.CodeServiceUnavailable, env.Error.Code)
	})
}

func TestDocumentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDocumentService{
			createFn: func(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
				assert.Equal(t, "5", req.EmployeeID)
				assert.Equal(t, "cv", req.DocType)
				return document.DocumentResponse{ID: "d9", EmployeeID: req.EmployeeID, FileName: req.FileName, DocType: req.DocType}, nil
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"5","file_name":"cv_maria.pdf","doc_type":"cv"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got document.DocumentResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "d9", got.ID)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(`{"doc_type":"resume"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeDocumentService{
			createFn: func(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
				return document.DocumentResponse{}, errors.New("create failed")
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"5","file_name":"cv.pdf","doc_type":"cv"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Internal server error", env.Error.Message)
	})
}

func TestDocumentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDocumentService{
			deleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, "d1", id)
				return nil
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/documents/d1", nil)
		c.Params = gin.Params{{Key: "id", Value: "d1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeDocumentService{
			deleteFn: func(ctx context.Context, id string) error {
				return apperror.ErrNotFound
			},
		}

		h := document.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/documents/nope", nil)
		c.Params = gin.Params{{Key: "id", Value: "nope"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}
