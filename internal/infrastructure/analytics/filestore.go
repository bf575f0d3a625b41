// Package analytics holds the file-based durability fallback for analytics
// events. It is deliberately dependency-free: it exists for the moments when
// external infrastructure is down, so it can rely on nothing but the local
// filesystem.
package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// FileStore appends events to one JSON array file per day under the data
// directory: events-<YYYY-MM-DD>.json. A mutex serialises the
// read-modify-write so concurrent fallback writes cannot drop each other's
// events.
type FileStore struct {
	dir string
	log zerolog.Logger

	mu sync.Mutex
}

func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

type fileEvent struct {
	Type      string            `json:"type"`
	Meta      map[string]string `json:"meta,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Append adds the event to today's file, creating directory and file as
// needed. A missing or unparseable file is treated as an empty array rather
// than an error, so one corrupt day never blocks new events.
func (s *FileStore) Append(event *domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create fallback dir: %w", err)
	}

	path := s.pathFor(event.CreatedAt)
	events := s.readAll(path)
	events = append(events, fileEvent{
		Type:      event.Type.String(),
		Meta:      event.Meta,
		Timestamp: event.CreatedAt,
	})

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fallback events: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fallback file: %w", err)
	}
	return nil
}

// ReadDay returns the events recorded in the fallback file for the given day,
// in append order. Used by reporting/export paths.
func (s *FileStore) ReadDay(day time.Time) ([]domain.AnalyticsEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.readAll(s.pathFor(day))
	events := make([]domain.AnalyticsEvent, 0, len(stored))
	for _, e := range stored {
		events = append(events, domain.AnalyticsEvent{
			Type:      domain.EventType(e.Type),
			Meta:      e.Meta,
			CreatedAt: e.Timestamp,
		})
	}
	return events, nil
}

func (s *FileStore) pathFor(t time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("events-%s.json", t.UTC().Format("2006-01-02")))
}

// readAll parses the file as a JSON array. Missing file or parse failure
// yields an empty slice; a parse failure is logged since it means earlier
// events are being abandoned.
func (s *FileStore) readAll(path string) []fileEvent {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var events []fileEvent
	if err := json.Unmarshal(data, &events); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("fallback file unreadable, starting fresh")
		return nil
	}
	return events
}
