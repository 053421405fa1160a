package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginapp/authserver/models"
)

// TestRoutes_StaticPage verifies the embedded client is served at the root.
func TestRoutes_StaticPage(t *testing.T) {
	h, _ := newTestHandler(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

// TestRoutes_MethodNotAllowed verifies the API endpoints reject wrong verbs.
func TestRoutes_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestRoutes_TraceIDPropagation verifies every response carries a trace id,
// echoing the caller's when one is supplied.
func TestRoutes_TraceIDPropagation(t *testing.T) {
	h, _ := newTestHandler(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-supplied-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "caller-supplied-id", rec.Header().Get(traceIDHeader))
}

// TestRoutes_LoginWiredThroughRouter verifies the full middleware chain in
// front of a real endpoint.
func TestRoutes_LoginWiredThroughRouter(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 7, Username: username}, nil
		},
	}
	h, _ := newTestHandler(t, auth)
	router := h.Init()

	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "pw123"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
