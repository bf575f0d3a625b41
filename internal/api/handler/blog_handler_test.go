package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/api"
	"github.com/torch-group/torch-api/internal/api/handler"
	"github.com/torch-group/torch-api/internal/api/middleware"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/service"
)

type stubBlogService struct {
	posts map[string]*domain.BlogPost
}

func (s *stubBlogService) ListPublished(context.Context) ([]domain.BlogPost, error) {
	out := []domain.BlogPost{}
	for _, p := range s.posts {
		if p.Published {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubBlogService) ListAll(context.Context) ([]domain.BlogPost, error) {
	out := []domain.BlogPost{}
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubBlogService) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	p, ok := s.posts[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *stubBlogService) Create(_ context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if _, exists := s.posts[post.Slug]; exists {
		return nil, domain.ErrSlugExists
	}
	clone := *post
	clone.ID = "p1"
	s.posts[post.Slug] = &clone
	out := clone
	return &out, nil
}

func (s *stubBlogService) Update(_ context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (s *stubBlogService) Delete(context.Context, string) error {
	return domain.ErrNotFound
}

// newBlogApp wires the blog routes behind the real session and role
// middleware, the way the router does.
func newBlogApp(posts map[string]*domain.BlogPost) (*echo.Echo, *service.SessionTokens) {
	tokens := service.NewSessionTokens("test-secret", time.Hour)
	h := handler.NewBlogHandler(&stubBlogService{posts: posts})

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.Use(middleware.Session(tokens, zerolog.Nop()))

	e.GET("/api/blog", h.ListPublic)
	e.GET("/api/blog/:slug", h.GetBySlug)

	admin := e.Group("/api/admin", middleware.RequireAuth())
	admin.GET("/blog", h.ListAdmin)
	elevated := admin.Group("", middleware.RequireRole(domain.RoleAdmin))
	elevated.POST("/blog", h.Create)
	return e, tokens
}

func authedRequest(t *testing.T, tokens *service.SessionTokens, role domain.Role, method, path, body string) *http.Request {
	t.Helper()
	token, _, err := tokens.Issue(domain.Identity{ID: "u1", Email: "u@example.com", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	return req
}

func TestBlogGetBySlug_UnpublishedHidden(t *testing.T) {
	e, _ := newBlogApp(map[string]*domain.BlogPost{
		"draft": {ID: "p1", Slug: "draft", Title: "Draft", Published: false},
		"live":  {ID: "p2", Slug: "live", Title: "Live", Published: true},
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/draft", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("draft must be hidden from public reads: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("published post must be public: got %d", rec.Code)
	}
}

func TestBlogAdmin_Gates(t *testing.T) {
	e, tokens := newBlogApp(map[string]*domain.BlogPost{})

	// Anonymous on an admin listing: 401.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/blog", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous admin read: expected 401, got %d", rec.Code)
	}

	// Editor may read admin listings.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, tokens, domain.RoleEditor, http.MethodGet, "/api/admin/blog", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("editor admin read: expected 200, got %d", rec.Code)
	}

	// Editor may not mutate.
	body := `{"slug":"new","title":"New","content":"text"}`
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, tokens, domain.RoleEditor, http.MethodPost, "/api/admin/blog", body))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("editor mutation: expected 403, got %d", rec.Code)
	}

	// Admin may mutate.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, tokens, domain.RoleAdmin, http.MethodPost, "/api/admin/blog", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin mutation: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
