package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/ports"
)

// VerificationHandler issues and checks one-time phone verification codes for
// talent applications.
type VerificationHandler struct {
	verify ports.VerificationService
}

func NewVerificationHandler(verify ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{verify: verify}
}

type sendCodeRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type checkCodeRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

type checkCodeResponse struct {
	Verified bool `json:"verified"`
}

// SendCode handles POST /api/verification/send.
//
// @Summary      Send a verification code
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      sendCodeRequest  true  "Phone number"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/verification/send [post]
func (h *VerificationHandler) SendCode(c echo.Context) error {
	var req sendCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.verify.Send(c.Request().Context(), req.Phone); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "code sent"})
}

// CheckCode handles POST /api/verification/verify. A wrong code is a normal
// 200 with verified=false, not an error.
//
// @Summary      Check a verification code
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      checkCodeRequest  true  "Phone and code"
// @Success      200   {object}  checkCodeResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/verification/verify [post]
func (h *VerificationHandler) CheckCode(c echo.Context) error {
	var req checkCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ok, err := h.verify.Check(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkCodeResponse{Verified: ok})
}
