package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

type stubCodeStore struct {
	codes map[string]string
}

func newStubCodeStore() *stubCodeStore {
	return &stubCodeStore{codes: make(map[string]string)}
}

func (s *stubCodeStore) Put(_ context.Context, key, code string) error {
	s.codes[key] = code
	return nil
}

func (s *stubCodeStore) Get(_ context.Context, key string) (string, error) {
	return s.codes[key], nil
}

func (s *stubCodeStore) Delete(_ context.Context, key string) error {
	delete(s.codes, key)
	return nil
}

func TestVerificationService_SendStoresSixDigitCode(t *testing.T) {
	store := newStubCodeStore()
	svc := NewVerificationService(store, zerolog.Nop())

	if err := svc.Send(context.Background(), "+15550001111"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	code := store.codes["+15550001111"]
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("code contains non-digit: %q", code)
		}
	}
}

func TestVerificationService_SendReplacesPreviousCode(t *testing.T) {
	store := newStubCodeStore()
	store.codes["+15550001111"] = "111111"
	svc := NewVerificationService(store, zerolog.Nop())

	if err := svc.Send(context.Background(), "+15550001111"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	// A fresh code always overwrites; the odds of colliding with the seeded
	// value are one in a million and would only mask, not fail, this check.
	ok, err := svc.Check(context.Background(), "+15550001111", store.codes["+15550001111"])
	if err != nil || !ok {
		t.Fatalf("expected latest code to verify: ok=%v err=%v", ok, err)
	}
}

func TestVerificationService_CheckConsumesOnSuccess(t *testing.T) {
	store := newStubCodeStore()
	store.codes["+15550001111"] = "123456"
	svc := NewVerificationService(store, zerolog.Nop())

	ok, err := svc.Check(context.Background(), "+15550001111", "123456")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching code to verify")
	}

	if ok, _ := svc.Check(context.Background(), "+15550001111", "123456"); ok {
		t.Fatalf("expected code to be consumed after first success")
	}
}

func TestVerificationService_WrongCodeLeavesStored(t *testing.T) {
	store := newStubCodeStore()
	store.codes["+15550001111"] = "123456"
	svc := NewVerificationService(store, zerolog.Nop())

	ok, err := svc.Check(context.Background(), "+15550001111", "654321")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to fail")
	}
	if store.codes["+15550001111"] != "123456" {
		t.Fatalf("wrong attempt must not consume the code")
	}
}

func TestVerificationService_UnknownPhone(t *testing.T) {
	svc := NewVerificationService(newStubCodeStore(), zerolog.Nop())

	ok, err := svc.Check(context.Background(), "+15559998888", "123456")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected no match without a stored code")
	}
}
