package domain

import "time"

// EventType is the closed set of analytics event kinds the recorder accepts.
// Construct from external input via ParseEventType.
type EventType string

const (
	EventPageView            EventType = "PAGE_VIEW"
	EventBlogRead            EventType = "BLOG_READ"
	EventContactSubmit       EventType = "CONTACT_SUBMIT"
	EventNewsletterSubscribe EventType = "NEWSLETTER_SUBSCRIBE"
	EventTalentApply         EventType = "TALENT_APPLY"
	EventSignIn              EventType = "SIGN_IN"
)

var validEventTypes = map[EventType]bool{
	EventPageView:            true,
	EventBlogRead:            true,
	EventContactSubmit:       true,
	EventNewsletterSubscribe: true,
	EventTalentApply:         true,
	EventSignIn:              true,
}

// ParseEventType validates external input against the event type set.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !validEventTypes[t] {
		return "", ErrInvalidEventType
	}
	return t, nil
}

func (t EventType) String() string { return string(t) }

// AnalyticsEvent is a single tracked action. Events are append-only: created
// once, never updated, read only by reporting paths.
type AnalyticsEvent struct {
	Type      EventType         `json:"type"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"timestamp"`
}
