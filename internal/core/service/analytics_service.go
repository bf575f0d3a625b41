package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/api/metrics"
	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// AnalyticsService records tracked actions: database first, per-day fallback
// file when the database write fails. Storage failure on this path is
// expected and recoverable, never surfaced to the site visitor.
type AnalyticsService struct {
	events   ports.EventRepository
	fallback ports.EventFallbackStore
	log      zerolog.Logger
}

func NewAnalyticsService(events ports.EventRepository, fallback ports.EventFallbackStore, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{events: events, fallback: fallback, log: log}
}

// Record stores the event with the current timestamp. The returned flag is
// true when the event landed in the fallback file. When both writes fail the
// event is dropped: the failure is logged and returned, with no retry or
// queueing.
func (s *AnalyticsService) Record(ctx context.Context, eventType domain.EventType, meta map[string]string) (bool, error) {
	event := &domain.AnalyticsEvent{
		Type:      eventType,
		Meta:      meta,
		CreatedAt: time.Now().UTC(),
	}

	dbErr := s.events.Insert(ctx, event)
	if dbErr == nil {
		metrics.AnalyticsRecordedTotal.WithLabelValues(eventType.String()).Inc()
		return false, nil
	}

	s.log.Warn().Err(dbErr).Str("type", eventType.String()).Msg("analytics insert failed, using file fallback")

	if fileErr := s.fallback.Append(event); fileErr != nil {
		metrics.AnalyticsDroppedTotal.Inc()
		s.log.Error().Err(fileErr).AnErr("db_error", dbErr).Str("type", eventType.String()).Msg("analytics event dropped")
		return false, fmt.Errorf("record event: db: %v; fallback: %w", dbErr, fileErr)
	}

	metrics.AnalyticsFallbackTotal.Inc()
	return true, nil
}
