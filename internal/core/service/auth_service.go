package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// AuthService implements credential verification and account creation.
type AuthService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// VerifyCredentials looks up the user by email and compares the bcrypt hash.
// Unknown email and wrong password are deliberately indistinguishable: both
// return domain.ErrInvalidCredentials with no other difference in shape, so
// the endpoint cannot be used to enumerate accounts. A storage failure is the
// one distinct outcome, surfaced as domain.ErrStorageUnavailable.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a hash comparison anyway so the miss costs the same
			// as a wrong password.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("user lookup failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.IdentityOf(user)
	return &identity, nil
}

// dummyHash is a valid bcrypt hash of an unused value, compared against when
// the email is unknown to keep the two failure paths constant-work.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("torch-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// CreateUser registers a new admin-area account.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(role.String()); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", role.String()).Msg("user created")
	return created, nil
}
