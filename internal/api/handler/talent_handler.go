package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// TalentHandler serves public roster reads and admin roster CRUD.
type TalentHandler struct {
	service ports.TalentService
}

func NewTalentHandler(service ports.TalentService) *TalentHandler {
	return &TalentHandler{service: service}
}

type talentRequest struct {
	Slug       string `json:"slug"       validate:"required"`
	Name       string `json:"name"       validate:"required"`
	Discipline string `json:"discipline"`
	Bio        string `json:"bio"`
	Photo      string `json:"photo"      validate:"omitempty,url"`
	Active     bool   `json:"active"`
}

func (r talentRequest) toDomain() *domain.Talent {
	return &domain.Talent{
		Slug:       r.Slug,
		Name:       r.Name,
		Discipline: r.Discipline,
		Bio:        r.Bio,
		Photo:      r.Photo,
		Active:     r.Active,
	}
}

// ListPublic handles GET /api/talents — active roster entries only.
//
// @Summary      List active talents
// @Tags         talents
// @Produce      json
// @Success      200  {array}  domain.Talent
// @Router       /api/talents [get]
func (h *TalentHandler) ListPublic(c echo.Context) error {
	talents, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, talents)
}

// GetBySlug handles GET /api/talents/:slug. Inactive talents are hidden from
// anonymous readers.
//
// @Summary      Get a talent by slug
// @Tags         talents
// @Produce      json
// @Param        slug  path      string  true  "Talent slug"
// @Success      200   {object}  domain.Talent
// @Failure      404   {object}  map[string]string
// @Router       /api/talents/{slug} [get]
func (h *TalentHandler) GetBySlug(c echo.Context) error {
	talent, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if !talent.Active {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return c.JSON(http.StatusOK, talent)
}

// ListAdmin handles GET /api/admin/talents — the full roster.
//
// @Summary      List all talents
// @Tags         talents
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Talent
// @Router       /api/admin/talents [get]
func (h *TalentHandler) ListAdmin(c echo.Context) error {
	talents, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, talents)
}

// Create handles POST /api/admin/talents.
//
// @Summary      Create a talent
// @Tags         talents
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      talentRequest  true  "Talent"
// @Success      201   {object}  domain.Talent
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/talents [post]
func (h *TalentHandler) Create(c echo.Context) error {
	var req talentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/admin/talents/:id.
//
// @Summary      Update a talent
// @Tags         talents
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string         true  "Talent id"
// @Param        body  body      talentRequest  true  "Talent"
// @Success      200   {object}  domain.Talent
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/talents/{id} [put]
func (h *TalentHandler) Update(c echo.Context) error {
	var req talentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/talents/:id.
//
// @Summary      Delete a talent
// @Tags         talents
// @Produce      json
// @Security     SessionCookie
// @Param        id  path  string  true  "Talent id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/talents/{id} [delete]
func (h *TalentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
