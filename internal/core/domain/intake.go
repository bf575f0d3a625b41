package domain

import "time"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsletterSubscriber is an email address on the mailing list. Unsubscribing
// keeps the record with Unsubscribed set so a later re-subscribe restores it.
type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Unsubscribed bool      `json:"unsubscribed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SiteSettings is the singleton site configuration edited in the admin area.
type SiteSettings struct {
	SiteName     string            `json:"site_name"`
	Tagline      string            `json:"tagline,omitempty"`
	ContactEmail string            `json:"contact_email,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DashboardStats aggregates collection counts for the admin dashboard.
type DashboardStats struct {
	Posts       int64 `json:"posts"`
	Talents     int64 `json:"talents"`
	Projects    int64 `json:"projects"`
	Contacts    int64 `json:"contacts"`
	Subscribers int64 `json:"subscribers"`
}
