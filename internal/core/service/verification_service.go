package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/ports"
)

// VerificationService issues and checks one-time phone verification codes.
// Codes live in an external TTL store so they survive restarts and are shared
// across instances. SMS delivery is out of scope; in development the code is
// logged instead.
type VerificationService struct {
	codes ports.CodeStore
	log   zerolog.Logger
}

func NewVerificationService(codes ports.CodeStore, log zerolog.Logger) *VerificationService {
	return &VerificationService{codes: codes, log: log}
}

// Send generates a 6-digit code and stores it under the phone number,
// replacing any earlier code for the same number.
func (s *VerificationService) Send(ctx context.Context, phone string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	if err := s.codes.Put(ctx, phone, code); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	// Development stand-in for the SMS channel.
	s.log.Info().Str("phone", phone).Str("code", code).Msg("verification code issued")
	return nil
}

// Check compares the submitted code with the stored one. A match consumes the
// code; a mismatch leaves it in place for another attempt until the TTL runs
// out.
func (s *VerificationService) Check(ctx context.Context, phone, code string) (bool, error) {
	stored, err := s.codes.Get(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("load code: %w", err)
	}
	if stored == "" {
		return false, nil
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.codes.Delete(ctx, phone); err != nil {
		s.log.Warn().Err(err).Str("phone", phone).Msg("failed to consume verification code")
	}
	return true, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
