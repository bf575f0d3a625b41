package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/torch-group/torch-api/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	if clone.ID == "" {
		clone.ID = user.Email
	}
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) add(t *testing.T, email, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.users[email] = &domain.User{
		ID:           "u-" + email,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestAuthService_VerifyCredentials_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "alice@example.com", "correct horse", domain.RoleAdmin)
	svc := NewAuthService(repo, zerolog.Nop())

	identity, err := svc.VerifyCredentials(context.Background(), "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("VerifyCredentials returned error: %v", err)
	}
	if identity.Email != "alice@example.com" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_VerifyCredentials_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "alice@example.com", "correct horse", domain.RoleEditor)
	svc := NewAuthService(repo, zerolog.Nop())

	_, unknownErr := svc.VerifyCredentials(context.Background(), "nobody@example.com", "whatever")
	_, wrongErr := svc.VerifyCredentials(context.Background(), "alice@example.com", "wrong password")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_VerifyCredentials_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	for _, pair := range [][2]string{{"", "pass"}, {"a@b.com", ""}, {"", ""}} {
		if _, err := svc.VerifyCredentials(context.Background(), pair[0], pair[1]); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("empty input (%q, %q): expected ErrInvalidCredentials, got %v", pair[0], pair[1], err)
		}
	}
}

func TestAuthService_VerifyCredentials_StorageDown(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection reset")
	svc := NewAuthService(repo, zerolog.Nop())

	_, err := svc.VerifyCredentials(context.Background(), "alice@example.com", "pass")
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestAuthService_CreateUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), "Bob", "bob@example.com", "hunter2hunter2", domain.RoleEditor)
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.PasswordHash == "hunter2hunter2" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if _, err := svc.CreateUser(context.Background(), "Bob", "bob@example.com", "hunter2hunter2", domain.RoleEditor); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists on duplicate, got %v", err)
	}
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.CreateUser(context.Background(), "Bob", "bob@example.com", "hunter2hunter2", domain.Role("ROOT")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
