package service

import (
	"strings"
	"testing"
	"time"

	"github.com/torch-group/torch-api/internal/core/domain"
)

var testIdentity = domain.Identity{
	ID:    "u1",
	Name:  "Alice",
	Email: "alice@example.com",
	Role:  domain.RoleAdmin,
}

func TestSessionTokens_RoundTrip(t *testing.T) {
	tokens := NewSessionTokens("test-secret", time.Hour)

	token, expiresAt, err := tokens.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if remaining := time.Until(expiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}

	got, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if *got != testIdentity {
		t.Fatalf("identity mismatch: got %+v, want %+v", *got, testIdentity)
	}
}

func TestSessionTokens_DefaultTTL(t *testing.T) {
	tokens := NewSessionTokens("test-secret", 0)

	_, expiresAt, err := tokens.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 7*24*time.Hour-time.Minute {
		t.Fatalf("expected 7-day default expiry, got %v from now", remaining)
	}
}

func TestSessionTokens_Expired(t *testing.T) {
	tokens := NewSessionTokens("test-secret", -time.Minute)
	// Negative ttl falls back to the default, so build one expired by hand.
	tokens.ttl = -time.Minute

	token, _, err := tokens.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := tokens.Verify(token); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestSessionTokens_WrongSecret(t *testing.T) {
	issuer := NewSessionTokens("secret-a", time.Hour)
	verifier := NewSessionTokens("secret-b", time.Hour)

	token, _, err := issuer.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestSessionTokens_Tampered(t *testing.T) {
	tokens := NewSessionTokens("test-secret", time.Hour)

	token, _, err := tokens.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + ".eyJyb2xlIjoiQURNSU4ifQ." + parts[2]
	if _, err := tokens.Verify(tampered); err == nil {
		t.Fatalf("expected tampered token to fail verification")
	}
}

func TestSessionTokens_EmptySecret(t *testing.T) {
	tokens := NewSessionTokens("", time.Hour)

	if _, _, err := tokens.Issue(testIdentity); err == nil {
		t.Fatalf("expected Issue to fail without a secret")
	}
	if _, err := tokens.Verify("whatever"); err == nil {
		t.Fatalf("expected Verify to fail without a secret")
	}
}
