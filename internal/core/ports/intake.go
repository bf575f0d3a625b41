package ports

import (
	"context"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

// NewsletterRepository persists mailing list membership. FindByEmail returns
// domain.ErrNotFound for unknown addresses.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Insert(ctx context.Context, sub *domain.NewsletterSubscriber) (*domain.NewsletterSubscriber, error)
	SetUnsubscribed(ctx context.Context, email string, unsubscribed bool) error
	List(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

// SettingsRepository persists the site settings singleton. Get on a fresh
// database returns defaults, not an error.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Put(ctx context.Context, settings *domain.SiteSettings) error
}

// StatsRepository aggregates collection counts for the dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (*domain.DashboardStats, error)
}

// SiteService exposes the settings singleton and dashboard counts to the
// transport layer.
type SiteService interface {
	GetSettings(ctx context.Context) (*domain.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// IntakeService handles public form submissions and the admin views over them.
type IntakeService interface {
	SubmitContact(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}
