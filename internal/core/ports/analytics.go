package ports

import (
	"context"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// EventRepository persists analytics events to the durable store.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.AnalyticsEvent) error
}

// EventFallbackStore is the durability fallback used when the durable store
// is unavailable. Implementations must tolerate concurrent appends.
type EventFallbackStore interface {
	Append(event *domain.AnalyticsEvent) error
}

// AnalyticsRecorder records tracked actions.
type AnalyticsRecorder interface {
	// Record stores the event. The returned fallback flag is true when the
	// event landed in the fallback store instead of the database. An error
	// means both stores failed and the event was dropped.
	Record(ctx context.Context, eventType domain.EventType, meta map[string]string) (fallback bool, err error)
}
