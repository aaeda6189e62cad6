// Package hrapi is the thin client for the upstream HR REST API. Every
// screen read and every mutation of this service ends up here; the
// caller's bearer token and request ID travel along on each call.
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rrhh-admin/internal/shared/apperror"
	"rrhh-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("hrapi.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrapi.client")
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     l,
	}
}

// doJSON performs one upstream round trip: marshal body, attach the
// caller's credentials and request ID from the context, map non-2xx
// responses to apperror values, decode the payload into out.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "marshal upstream request", http.StatusInternalServerError)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "build upstream request", http.StatusInternalServerError)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := contextutil.GetAuthToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	l := contextutil.GetLogger(ctx, c.logger)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Error("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "HR API unreachable", http.StatusServiceUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "read HR API response", http.StatusServiceUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.Warn("upstream returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return mapUpstreamError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := decodePayload(respBody, out); err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "decode HR API response", http.StatusInternalServerError)
	}
	return nil
}

// decodePayload handles both response shapes the upstream emits:
// an envelope with a data field, or the bare document.
func decodePayload(raw []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// upstreamMessage digs a human-readable message out of an upstream
// error body, tolerating both error shapes.
func upstreamMessage(body []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &nested); err == nil {
		if nested.Error.Message != "" {
			return nested.Error.Message
		}
		if nested.Message != "" {
			return nested.Message
		}
	}
	return ""
}

func mapUpstreamError(status int, body []byte) error {
	msg := upstreamMessage(body)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "HR API rejected the request"
		}
		return apperror.New(apperror.CodeInvalidInput, msg, http.StatusBadRequest)
	case status == http.StatusUnauthorized:
		if msg == "" {
			msg = "Invalid credentials"
		}
		return apperror.New(apperror.CodeUnauthorized, msg, http.StatusUnauthorized)
	case status == http.StatusForbidden:
		if msg == "" {
			msg = "Forbidden"
		}
		return apperror.New(apperror.CodeForbidden, msg, http.StatusForbidden)
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "Resource not found"
		}
		return apperror.New(apperror.CodeNotFound, msg, http.StatusNotFound)
	case status == http.StatusConflict:
		if msg == "" {
			msg = "Conflict"
		}
		return apperror.New(apperror.CodeConflict, msg, http.StatusConflict)
	case status >= 500:
		return apperror.New(apperror.CodeServiceUnavailable, "HR API unavailable", http.StatusServiceUnavailable)
	default:
		return apperror.New(apperror.CodeInternalError, fmt.Sprintf("unexpected HR API status %d", status), http.StatusInternalServerError)
	}
}
