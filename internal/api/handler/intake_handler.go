package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// IntakeHandler receives public contact form and newsletter submissions and
// exposes the admin views over them.
type IntakeHandler struct {
	intake ports.IntakeService
}

func NewIntakeHandler(intake ports.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SubmitContact handles POST /api/contact.
//
// @Summary      Submit a contact form message
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *IntakeHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.intake.SubmitContact(c.Request().Context(), &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "message received"})
}

// ListContacts handles GET /api/admin/contacts.
//
// @Summary      List contact messages
// @Tags         intake
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.ContactMessage
// @Router       /api/admin/contacts [get]
func (h *IntakeHandler) ListContacts(c echo.Context) error {
	messages, err := h.intake.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Subscribe handles POST /api/newsletter/subscribe. Re-subscribing an address
// already on the list is a success, not a conflict.
//
// @Summary      Subscribe to the newsletter
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      newsletterRequest  true  "Address"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/newsletter/subscribe [post]
func (h *IntakeHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.intake.Subscribe(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "subscribed"})
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Unknown addresses
// succeed silently so the endpoint leaks no membership information.
//
// @Summary      Unsubscribe from the newsletter
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      newsletterRequest  true  "Address"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/newsletter/unsubscribe [post]
func (h *IntakeHandler) Unsubscribe(c echo.Context) error {
	var req newsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.intake.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "unsubscribed"})
}

// ListSubscribers handles GET /api/admin/newsletter.
//
// @Summary      List newsletter subscribers
// @Tags         intake
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.NewsletterSubscriber
// @Router       /api/admin/newsletter [get]
func (h *IntakeHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.intake.ListSubscribers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}
