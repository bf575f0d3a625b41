package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// ContentHandler serves the remaining site sections: team members, service
// offerings, portfolio projects, and brand logos. Public routes return only
// visible entries; admin routes see everything.
type ContentHandler struct {
	content ports.ContentService
}

func NewContentHandler(content ports.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

type teamMemberRequest struct {
	Name  string `json:"name"  validate:"required"`
	Title string `json:"title" validate:"required"`
	Photo string `json:"photo" validate:"omitempty,url"`
	Order int    `json:"order"`
}

type serviceRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type projectRequest struct {
	Slug       string `json:"slug"        validate:"required"`
	Name       string `json:"name"        validate:"required"`
	Summary    string `json:"summary"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
	BrandID    string `json:"brand_id"`
	Published  bool   `json:"published"`
}

type brandRequest struct {
	Slug    string `json:"slug"    validate:"required"`
	Name    string `json:"name"    validate:"required"`
	Logo    string `json:"logo"    validate:"omitempty,url"`
	Website string `json:"website" validate:"omitempty,url"`
	Active  bool   `json:"active"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// --- Team members ---

// ListTeam handles GET /api/team.
//
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200  {array}  domain.TeamMember
// @Router       /api/team [get]
func (h *ContentHandler) ListTeam(c echo.Context) error {
	members, err := h.content.ListTeam(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// CreateTeamMember handles POST /api/admin/team.
//
// @Summary      Create a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      teamMemberRequest  true  "Member"
// @Success      201   {object}  domain.TeamMember
// @Router       /api/admin/team [post]
func (h *ContentHandler) CreateTeamMember(c echo.Context) error {
	var req teamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.content.CreateTeamMember(c.Request().Context(), &domain.TeamMember{
		Name: req.Name, Title: req.Title, Photo: req.Photo, Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTeamMember handles PUT /api/admin/team/:id.
//
// @Summary      Update a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string             true  "Member id"
// @Param        body  body      teamMemberRequest  true  "Member"
// @Success      200   {object}  domain.TeamMember
// @Router       /api/admin/team/{id} [put]
func (h *ContentHandler) UpdateTeamMember(c echo.Context) error {
	var req teamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.content.UpdateTeamMember(c.Request().Context(), c.Param("id"), &domain.TeamMember{
		Name: req.Name, Title: req.Title, Photo: req.Photo, Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTeamMember handles DELETE /api/admin/team/:id.
//
// @Summary      Delete a team member
// @Tags         team
// @Security     SessionCookie
// @Param        id  path  string  true  "Member id"
// @Success      204
// @Router       /api/admin/team/{id} [delete]
func (h *ContentHandler) DeleteTeamMember(c echo.Context) error {
	if err := h.content.DeleteTeamMember(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Services ---

// ListServices handles GET /api/services.
//
// @Summary      List service offerings
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/services [get]
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.content.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/admin/services.
//
// @Summary      Create a service offering
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      serviceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Router       /api/admin/services [post]
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.content.CreateService(c.Request().Context(), &domain.Service{
		Slug: req.Slug, Name: req.Name, Summary: req.Summary, Description: req.Description, Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateService handles PUT /api/admin/services/:id.
//
// @Summary      Update a service offering
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service"
// @Success      200   {object}  domain.Service
// @Router       /api/admin/services/{id} [put]
func (h *ContentHandler) UpdateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.content.UpdateService(c.Request().Context(), c.Param("id"), &domain.Service{
		Slug: req.Slug, Name: req.Name, Summary: req.Summary, Description: req.Description, Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteService handles DELETE /api/admin/services/:id.
//
// @Summary      Delete a service offering
// @Tags         services
// @Security     SessionCookie
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Router       /api/admin/services/{id} [delete]
func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.content.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Projects ---

// ListProjects handles GET /api/projects — published entries only.
//
// @Summary      List published projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/projects [get]
func (h *ContentHandler) ListProjects(c echo.Context) error {
	projects, err := h.content.ListPublishedProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListProjectsAdmin handles GET /api/admin/projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Project
// @Router       /api/admin/projects [get]
func (h *ContentHandler) ListProjectsAdmin(c echo.Context) error {
	projects, err := h.content.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /api/admin/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      projectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Router       /api/admin/projects [post]
func (h *ContentHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.content.CreateProject(c.Request().Context(), &domain.Project{
		Slug: req.Slug, Name: req.Name, Summary: req.Summary,
		CoverImage: req.CoverImage, BrandID: req.BrandID, Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProject handles PUT /api/admin/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project"
// @Success      200   {object}  domain.Project
// @Router       /api/admin/projects/{id} [put]
func (h *ContentHandler) UpdateProject(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.content.UpdateProject(c.Request().Context(), c.Param("id"), &domain.Project{
		Slug: req.Slug, Name: req.Name, Summary: req.Summary,
		CoverImage: req.CoverImage, BrandID: req.BrandID, Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProject handles DELETE /api/admin/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     SessionCookie
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Router       /api/admin/projects/{id} [delete]
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	if err := h.content.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Brands ---

// ListBrands handles GET /api/brands — active brands only.
//
// @Summary      List active brands
// @Tags         brands
// @Produce      json
// @Success      200  {array}  domain.Brand
// @Router       /api/brands [get]
func (h *ContentHandler) ListBrands(c echo.Context) error {
	brands, err := h.content.ListActiveBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// ListBrandsAdmin handles GET /api/admin/brands.
//
// @Summary      List all brands
// @Tags         brands
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Brand
// @Router       /api/admin/brands [get]
func (h *ContentHandler) ListBrandsAdmin(c echo.Context) error {
	brands, err := h.content.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// CreateBrand handles POST /api/admin/brands.
//
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      brandRequest  true  "Brand"
// @Success      201   {object}  domain.Brand
// @Router       /api/admin/brands [post]
func (h *ContentHandler) CreateBrand(c echo.Context) error {
	var req brandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.content.CreateBrand(c.Request().Context(), &domain.Brand{
		Slug: req.Slug, Name: req.Name, Logo: req.Logo, Website: req.Website, Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBrand handles PUT /api/admin/brands/:id.
//
// @Summary      Update a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string        true  "Brand id"
// @Param        body  body      brandRequest  true  "Brand"
// @Success      200   {object}  domain.Brand
// @Router       /api/admin/brands/{id} [put]
func (h *ContentHandler) UpdateBrand(c echo.Context) error {
	var req brandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.content.UpdateBrand(c.Request().Context(), c.Param("id"), &domain.Brand{
		Slug: req.Slug, Name: req.Name, Logo: req.Logo, Website: req.Website, Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBrand handles DELETE /api/admin/brands/:id.
//
// @Summary      Delete a brand
// @Tags         brands
// @Security     SessionCookie
// @Param        id  path  string  true  "Brand id"
// @Success      204
// @Router       /api/admin/brands/{id} [delete]
func (h *ContentHandler) DeleteBrand(c echo.Context) error {
	if err := h.content.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
