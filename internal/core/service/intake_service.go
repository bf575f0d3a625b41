package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// IntakeService handles the public contact form and the newsletter list.
type IntakeService struct {
	contacts   ports.ContactRepository
	newsletter ports.NewsletterRepository
	log        zerolog.Logger
}

func NewIntakeService(contacts ports.ContactRepository, newsletter ports.NewsletterRepository, log zerolog.Logger) *IntakeService {
	return &IntakeService{contacts: contacts, newsletter: newsletter, log: log}
}

func (s *IntakeService) SubmitContact(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.CreatedAt = time.Now().UTC()
	created, err := s.contacts.Insert(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	s.log.Info().Str("email", msg.Email).Msg("contact message received")
	return created, nil
}

func (s *IntakeService) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// Subscribe adds the address to the mailing list. Re-subscribing an existing
// address is a no-op success; a previously unsubscribed address is restored.
func (s *IntakeService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.newsletter.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.Unsubscribed {
			return nil
		}
		return s.newsletter.SetUnsubscribed(ctx, email, false)
	case errors.Is(err, domain.ErrNotFound):
		now := time.Now().UTC()
		_, err = s.newsletter.Insert(ctx, &domain.NewsletterSubscriber{
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
		s.log.Info().Str("email", email).Msg("newsletter subscription added")
		return nil
	default:
		return fmt.Errorf("subscribe: %w", err)
	}
}

// Unsubscribe marks the address as unsubscribed. Unknown addresses are a
// no-op success so the endpoint leaks nothing about list membership.
func (s *IntakeService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.newsletter.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return s.newsletter.SetUnsubscribed(ctx, email, true)
}

func (s *IntakeService) ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	return s.newsletter.List(ctx)
}
