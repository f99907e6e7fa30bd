package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"user-service/internal/database"
)

func newServer(buf *bytes.Buffer) *echo.Echo {
	e := echo.New()
	Use(e, zerolog.New(buf), []string{"*"})
	db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
	Setup(e, db, nil)
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, nil)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /health",
		http.MethodGet + " /api-docs/openapi.json",
		http.MethodGet + " /swagger/*",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestServerBehaviour(t *testing.T) {
	var logs bytes.Buffer
	e := newServer(&logs)

	t.Run("unknown route is json 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"success":false,"message":"Not Found"}`, rec.Body.String())
		require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("invalid id short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"success":false,"message":"Invalid user ID format"}`, rec.Body.String())
	})

	t.Run("openapi document", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"/api/users/{id}"`)
	})

	t.Run("cors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderOrigin, "http://example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	require.True(t, strings.Contains(logs.String(), "request completed"))
}

func TestRecoverReturnsJSON(t *testing.T) {
	var logs bytes.Buffer
	e := newServer(&logs)
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
	require.Contains(t, logs.String(), `"level":"error"`)
}
