package hrapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rrhh-admin/internal/hrapi"
	"rrhh-admin/internal/shared/apperror"
	"rrhh-admin/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newClient(t *testing.T, handler http.HandlerFunc) *hrapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return hrapi.NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestClient_ForwardsCallerIdentity(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := contextutil.WithAuthToken(context.Background(), "tok-123")
	ctx = contextutil.WithRequestID(ctx, "req-9")

	_, err := client.ListBranches(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "req-9", gotRequestID)
}

func TestClient_DecodesBothResponseShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":1,"name":"Centro"},{"id":"2","name":"Norte"}]`))
		})

		got, err := client.ListBranches(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID.String())
		assert.Equal(t, "2", got[1].ID.String())
	})

	t.Run("enveloped data", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true,"data":[{"id":10,"branch_id":1,"name":"RRHH"}]}`))
		})

		got, err := client.ListDepartments(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "10", got[0].ID.String())
		assert.Equal(t, "1", got[0].OwningBranchID())
	})
}

func TestClient_MapsUpstreamErrors(t *testing.T) {
	cases := []struct {
		name       string
		upstream   int
		body       string
		wantCode   string
		wantStatus int
	}{
		{"not found", http.StatusNotFound, `{"message":"employee not found"}`, apperror.CodeNotFound, http.StatusNotFound},
		{"unauthorized", http.StatusUnauthorized, `{}`, apperror.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden, `{}`, apperror.CodeForbidden, http.StatusForbidden},
		{"conflict", http.StatusConflict, `{"error":{"message":"duplicate email"}}`, apperror.CodeConflict, http.StatusConflict},
		{"validation", http.StatusUnprocessableEntity, `{"message":"name required"}`, apperror.CodeInvalidInput, http.StatusBadRequest},
		{"bad request", http.StatusBadRequest, `{}`, apperror.CodeInvalidInput, http.StatusBadRequest},
		{"upstream down", http.StatusBadGateway, ``, apperror.CodeServiceUnavailable, http.StatusServiceUnavailable},
		{"internal", http.StatusInternalServerError, ``, apperror.CodeServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.upstream)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.ListEmployees(context.Background())

			var appErr *apperror.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.wantStatus, appErr.HTTPStatus)
		})
	}

	t.Run("upstream message survives the mapping", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":{"message":"duplicate email"}}`))
		})

		_, err := client.ListEmployees(context.Background())

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "duplicate email", appErr.Message)
	})
}

func TestClient_Login(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req hrapi.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@acme.com", req.Email)

		_, _ = w.Write([]byte(`{"data":{"access_token":"at","refresh_token":"rt","user":{"id":7,"email":"ana@acme.com","role":"rrhh"}}}`))
	})

	session, err := client.Login(context.Background(), hrapi.LoginRequest{Email: "ana@acme.com", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, "at", session.AccessToken)
	assert.Equal(t, "7", session.User.ID.String())
	assert.Equal(t, "rrhh", session.User.Role)
}

func TestClient_MutationPaths(t *testing.T) {
	var gotMethod, gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"1"}`))
	})
	ctx := context.Background()

	_, err := client.DecideDeparture(ctx, "15", map[string]string{"status": "approved"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/departures/15/decision", gotPath)

	err = client.DeleteDocument(ctx, "9")
	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/documents/9", gotPath)

	_, err = client.UpdateBranch(ctx, "3", map[string]string{"name": "Centro"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/branches/3", gotPath)
}

func TestClient_UnreachableUpstream(t *testing.T) {
	client := hrapi.NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := client.ListBranches(context.Background())

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
}
