package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/api"
	"github.com/torch-group/torch-api/internal/api/handler"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

type stubSiteService struct {
	settings    domain.SiteSettings
	stats       domain.DashboardStats
	lastUpdated *domain.SiteSettings
}

func (s *stubSiteService) GetSettings(context.Context) (*domain.SiteSettings, error) {
	out := s.settings
	return &out, nil
}

func (s *stubSiteService) UpdateSettings(_ context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	s.lastUpdated = settings
	return settings, nil
}

func (s *stubSiteService) DashboardStats(context.Context) (*domain.DashboardStats, error) {
	out := s.stats
	return &out, nil
}

func newSiteApp(site ports.SiteService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	h := handler.NewSiteHandler(site)
	e.GET("/api/settings", h.GetSettings)
	e.PUT("/api/admin/settings", h.UpdateSettings)
	e.GET("/api/admin/dashboard", h.Dashboard)
	return e
}

func TestGetSettings(t *testing.T) {
	e := newSiteApp(&stubSiteService{settings: domain.SiteSettings{SiteName: "Torch Group", Tagline: "Ignite"}})

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"site_name":"Torch Group"`) {
		t.Fatalf("settings missing from body: %s", rec.Body.String())
	}
}

func TestUpdateSettings(t *testing.T) {
	site := &stubSiteService{}
	e := newSiteApp(site)

	body := `{"site_name":"Torch Group","contact_email":"hello@torchgroup.co"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if site.lastUpdated == nil || site.lastUpdated.ContactEmail != "hello@torchgroup.co" {
		t.Fatalf("service saw wrong settings: %+v", site.lastUpdated)
	}
}

func TestUpdateSettings_Invalid(t *testing.T) {
	site := &stubSiteService{}
	e := newSiteApp(site)

	for name, body := range map[string]string{
		"missing name": `{"tagline":"Ignite"}`,
		"bad email":    `{"site_name":"Torch Group","contact_email":"not-an-address"}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
	if site.lastUpdated != nil {
		t.Fatalf("service must not be called on invalid payload")
	}
}

func TestDashboard(t *testing.T) {
	e := newSiteApp(&stubSiteService{stats: domain.DashboardStats{Posts: 4, Subscribers: 120}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"subscribers":120`) {
		t.Fatalf("counts missing from body: %s", rec.Body.String())
	}
}
