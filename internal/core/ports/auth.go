package ports

import (
	"context"
	"time"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// UserRepository defines the persistence interface for admin accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AuthService verifies credentials and manages admin accounts.
type AuthService interface {
	// VerifyCredentials returns the identity for a matching email/password
	// pair. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials; a failed storage round-trip yields
	// domain.ErrStorageUnavailable.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.Identity, error)

	// CreateUser registers a new admin-area account with a hashed password.
	CreateUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
}

// SessionTokens issues and verifies the self-contained session tokens carried
// in the session cookie. There is no server-side session store.
type SessionTokens interface {
	// Issue signs a token embedding the identity, valid for the configured
	// session lifetime. Returns the token and its expiry.
	Issue(identity domain.Identity) (string, time.Time, error)

	// Verify checks signature and expiry and reconstructs the identity.
	// Any failure returns an error; callers treat all of them as
	// "no session".
	Verify(token string) (*domain.Identity, error)
}
