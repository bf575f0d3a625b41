package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// SiteHandler serves the public settings read plus the admin settings editor
// and dashboard counts.
type SiteHandler struct {
	site ports.SiteService
}

func NewSiteHandler(site ports.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

type settingsRequest struct {
	SiteName     string            `json:"site_name"     validate:"required"`
	Tagline      string            `json:"tagline"`
	ContactEmail string            `json:"contact_email" validate:"omitempty,email"`
	SocialLinks  map[string]string `json:"social_links"`
}

// GetSettings handles GET /api/settings.
//
// @Summary      Get site settings
// @Tags         site
// @Produce      json
// @Success      200  {object}  domain.SiteSettings
// @Router       /api/settings [get]
func (h *SiteHandler) GetSettings(c echo.Context) error {
	settings, err := h.site.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/settings.
//
// @Summary      Update site settings
// @Tags         site
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.SiteSettings
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/settings [put]
func (h *SiteHandler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.site.UpdateSettings(c.Request().Context(), &domain.SiteSettings{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		ContactEmail: req.ContactEmail,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Dashboard handles GET /api/admin/dashboard.
//
// @Summary      Get dashboard counts
// @Tags         site
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  domain.DashboardStats
// @Router       /api/admin/dashboard [get]
func (h *SiteHandler) Dashboard(c echo.Context) error {
	stats, err := h.site.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
