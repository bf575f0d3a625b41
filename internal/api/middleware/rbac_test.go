package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
)

func runGate(t *testing.T, gate echo.MiddlewareFunc, identity *domain.Identity) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, identity)
	}

	return gate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestRequireRole_Anonymous(t *testing.T) {
	err := runGate(t, RequireRole(domain.RoleEditor), nil)
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", code)
	}
}

func TestRequireRole_Insufficient(t *testing.T) {
	editor := &domain.Identity{ID: "u1", Role: domain.RoleEditor}
	err := runGate(t, RequireRole(domain.RoleAdmin), editor)
	if code := httpCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403 for editor on admin gate, got %d", code)
	}
}

func TestRequireRole_AdminPassesBothGates(t *testing.T) {
	admin := &domain.Identity{ID: "u1", Role: domain.RoleAdmin}
	for _, min := range []domain.Role{domain.RoleEditor, domain.RoleAdmin} {
		if err := runGate(t, RequireRole(min), admin); err != nil {
			t.Fatalf("admin rejected at min=%s: %v", min, err)
		}
	}
}

func TestRequireAuth_AdmitsEditor(t *testing.T) {
	editor := &domain.Identity{ID: "u1", Role: domain.RoleEditor}
	if err := runGate(t, RequireAuth(), editor); err != nil {
		t.Fatalf("editor rejected: %v", err)
	}
}
