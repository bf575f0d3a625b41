package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// BlogHandler serves public blog reads and admin blog CRUD.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type blogPostRequest struct {
	Slug       string `json:"slug"        validate:"required"`
	Title      string `json:"title"       validate:"required"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"     validate:"required"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
	Published  bool   `json:"published"`
}

func (r blogPostRequest) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		Slug:       r.Slug,
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CoverImage: r.CoverImage,
		Published:  r.Published,
	}
}

// ListPublic handles GET /api/blog — published posts only.
//
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /api/blog [get]
func (h *BlogHandler) ListPublic(c echo.Context) error {
	posts, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetBySlug handles GET /api/blog/:slug. Unpublished posts are hidden from
// anonymous readers.
//
// @Summary      Get a blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  domain.BlogPost
// @Failure      404   {object}  map[string]string
// @Router       /api/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	post, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if !post.Published {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return c.JSON(http.StatusOK, post)
}

// ListAdmin handles GET /api/admin/blog — every post, drafts included.
//
// @Summary      List all blog posts
// @Tags         blog
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.BlogPost
// @Router       /api/admin/blog [get]
func (h *BlogHandler) ListAdmin(c echo.Context) error {
	posts, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /api/admin/blog.
//
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      blogPostRequest  true  "Post"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req blogPostRequest
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

// Update handles PUT /api/admin/blog/:id.
//
// @Summary      Update a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string           true  "Post id"
// @Param        body  body      blogPostRequest  true  "Post"
// @Success      200   {object}  domain.BlogPost
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req blogPostRequest
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

// Delete handles DELETE /api/admin/blog/:id.
//
// @Summary      Delete a blog post
// @Tags         blog
// @Produce      json
// @Security     SessionCookie
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
