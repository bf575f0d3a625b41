package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// SessionClaims is the signed payload carried in the session cookie.
type SessionClaims struct {
	Name string `json:"name"`
	// Email duplicates the registered subject's account email so the
	// identity can be rebuilt without a database read.
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SessionTokens issues and verifies the stateless session tokens. Tokens are
// self-contained: signature + expiry are the only validity checks, there is
// no server-side session record to revoke.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
}

const defaultSessionTTL = 7 * 24 * time.Hour

func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionTokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the identity with issued-at and expiry.
func (s *SessionTokens) Issue(identity domain.Identity) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("session secret not configured")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and reconstructs the identity. Every
// failure mode (bad signature, expired, malformed, missing secret, unknown
// role) returns an error; callers fold them all into "no session".
func (s *SessionTokens) Verify(tokenString string) (*domain.Identity, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("session secret not configured")
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("session token invalid")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("session token role: %w", err)
	}

	return &domain.Identity{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}, nil
}
