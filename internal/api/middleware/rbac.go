package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// RequireRole gates a route on a minimum role. An anonymous request gets 401;
// an authenticated one below the minimum gets 403, so the two causes stay
// distinguishable to API clients.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !identity.Role.AtLeast(min) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// RequireAuth admits any authenticated identity.
func RequireAuth() echo.MiddlewareFunc {
	return RequireRole(domain.RoleEditor)
}
