package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// stubTokens accepts exactly one token value and returns a fixed identity.
type stubTokens struct {
	valid    string
	identity domain.Identity
}

func (s *stubTokens) Issue(domain.Identity) (string, time.Time, error) {
	return s.valid, time.Now().Add(time.Hour), nil
}

func (s *stubTokens) Verify(token string) (*domain.Identity, error) {
	if token != s.valid {
		return nil, errors.New("bad token")
	}
	identity := s.identity
	return &identity, nil
}

func runSession(t *testing.T, tokens *stubTokens, cookie *http.Cookie) *domain.Identity {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.Identity
	handler := Session(tokens, zerolog.Nop())(func(c echo.Context) error {
		seen = IdentityFrom(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("session middleware must never reject: got %d", rec.Code)
	}
	return seen
}

func TestSession_NoCookie(t *testing.T) {
	tokens := &stubTokens{valid: "good"}
	if identity := runSession(t, tokens, nil); identity != nil {
		t.Fatalf("expected anonymous request, got %+v", identity)
	}
}

func TestSession_ValidCookie(t *testing.T) {
	tokens := &stubTokens{
		valid:    "good",
		identity: domain.Identity{ID: "u1", Email: "a@example.com", Role: domain.RoleEditor},
	}
	identity := runSession(t, tokens, &http.Cookie{Name: SessionCookieName, Value: "good"})
	if identity == nil || identity.ID != "u1" {
		t.Fatalf("expected identity set, got %+v", identity)
	}
}

func TestSession_SecureCookieName(t *testing.T) {
	tokens := &stubTokens{
		valid:    "good",
		identity: domain.Identity{ID: "u1", Role: domain.RoleAdmin},
	}
	identity := runSession(t, tokens, &http.Cookie{Name: SecureSessionCookieName, Value: "good"})
	if identity == nil {
		t.Fatalf("expected secure-prefixed cookie to be honoured")
	}
}

func TestSession_BadToken(t *testing.T) {
	tokens := &stubTokens{valid: "good"}
	identity := runSession(t, tokens, &http.Cookie{Name: SessionCookieName, Value: "forged"})
	if identity != nil {
		t.Fatalf("expected rejected token to leave the request anonymous")
	}
}
