package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/api/metrics"
	"github.com/torch-group/torch-api/internal/api/middleware"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// AuthHandler handles sign-in/sign-out and session inspection.
type AuthHandler struct {
	auth       ports.AuthService
	tokens     ports.SessionTokens
	secureMode bool
	secretSet  bool
}

// NewAuthHandler builds the handler. secureMode switches the cookie to its
// Secure, __Secure--prefixed form (production behind TLS); secretSet feeds
// the diagnostic endpoint only.
func NewAuthHandler(auth ports.AuthService, tokens ports.SessionTokens, secureMode, secretSet bool) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, secureMode: secureMode, secretSet: secretSet}
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User domain.Identity `json:"user"`
}

type checkResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN EDITOR"`
}

// Signin verifies credentials and sets the session cookie.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.auth.VerifyCredentials(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		default:
			metrics.SignInsTotal.WithLabelValues("unavailable").Inc()
		}
		return err
	}

	token, expiresAt, err := h.tokens.Issue(*identity)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, expiresAt))
	metrics.SignInsTotal.WithLabelValues("success").Inc()

	// Only public identity fields go in the body; the token travels in the
	// cookie alone.
	return c.JSON(http.StatusOK, userResponse{User: *identity})
}

// Signout expires the session cookie. The token itself stays valid until its
// expiry since sessions are stateless.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)
	return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
}

// Check reports whether the request carries a valid session. It never errors
// for a bad or missing token.
//
// @Summary      Check the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusOK, checkResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, checkResponse{Authenticated: true, User: identity})
}

// CheckSession is a diagnostic endpoint exposing the decoded session and
// secret-presence info. It reveals no secret material, only whether one is
// configured.
//
// @Summary      Inspect session state (diagnostic)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/check-session [get]
func (h *AuthHandler) CheckSession(c echo.Context) error {
	cookiePresent := false
	for _, name := range []string{middleware.SecureSessionCookieName, middleware.SessionCookieName} {
		if cookie, err := c.Cookie(name); err == nil && cookie.Value != "" {
			cookiePresent = true
			break
		}
	}

	resp := map[string]interface{}{
		"cookie_present": cookiePresent,
		"secret_set":     h.secretSet,
		"secure_mode":    h.secureMode,
	}
	if identity := middleware.IdentityFrom(c); identity != nil {
		resp["decoded"] = identity
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateUser registers a new admin-area account. Admin only.
//
// @Summary      Create an admin-area user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	user, err := h.auth.CreateUser(c.Request().Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{User: domain.IdentityOf(user)})
}

// sessionCookie builds the session cookie with the security attributes the
// environment calls for. Secure mode also switches to the __Secure- name so
// browsers enforce the prefix rules.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	name := middleware.SessionCookieName
	if h.secureMode {
		name = middleware.SecureSessionCookieName
	}
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureMode,
		SameSite: http.SameSiteLaxMode,
	}
}
