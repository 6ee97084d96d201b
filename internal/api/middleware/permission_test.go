package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequirePermission_Granted(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/tarefa/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("perms", []string{"OutraCoisa", "ExcluirTarefa"})

	called := false
	mw := RequirePermission("ExcluirTarefa")
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

// Being authenticated is not enough: without the named permission the caller
// gets 403, never 404 or 204.
func TestRequirePermission_AuthenticatedButMissingClaim(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/tarefa/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")
	c.Set("perms", []string{"OutraCoisa"})

	mw := RequirePermission("ExcluirTarefa")
	err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequirePermission_NoPermsClaim(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/tarefa/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequirePermission("ExcluirTarefa")
	err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
