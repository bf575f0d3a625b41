package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/api/metrics"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// Cookie names used for the session token. The secure-prefixed variant is
// what the browser stores when the cookie was set with Secure over TLS.
const (
	SessionCookieName       = "next-auth.session-token"
	SecureSessionCookieName = "__Secure-next-auth.session-token"
)

// identityKey is the echo context key the session reader stores the
// reconstructed identity under.
const identityKey = "identity"

// Session reads the session cookie on every request and, when the token
// verifies, stores the identity in the request context. It never rejects a
// request: a missing cookie, bad signature, expired or malformed token all
// leave the request anonymous. Gates decide what anonymous means per route.
func Session(tokens ports.SessionTokens, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				metrics.SessionReadsTotal.WithLabelValues("none").Inc()
				return next(c)
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				metrics.SessionReadsTotal.WithLabelValues("rejected").Inc()
				log.Debug().Err(err).Msg("session token rejected")
				return next(c)
			}

			metrics.SessionReadsTotal.WithLabelValues("verified").Inc()
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// sessionToken extracts the raw token from either cookie name, preferring the
// secure-prefixed one.
func sessionToken(c echo.Context) string {
	for _, name := range []string{SecureSessionCookieName, SessionCookieName} {
		if cookie, err := c.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}

// IdentityFrom returns the verified identity for the request, or nil when the
// request is anonymous.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}
