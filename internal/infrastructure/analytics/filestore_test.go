package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
)

func TestFileStore_AppendCreatesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "analytics")
	store := NewFileStore(dir, zerolog.Nop())

	at := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	err := store.Append(&domain.AnalyticsEvent{
		Type:      domain.EventPageView,
		Meta:      map[string]string{"path": "/about"},
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	path := filepath.Join(dir, "events-2026-09-01.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected fallback file at %s: %v", path, err)
	}

	var events []map[string]any
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("fallback file is not a JSON array: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0]["type"] != "PAGE_VIEW" {
		t.Fatalf("unexpected event type: %v", events[0]["type"])
	}
}

func TestFileStore_AppendPreservesOrder(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	types := []domain.EventType{domain.EventPageView, domain.EventBlogRead, domain.EventSignIn}
	for i, et := range types {
		err := store.Append(&domain.AnalyticsEvent{
			Type:      et,
			CreatedAt: day.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Append #%d returned error: %v", i+1, err)
		}
	}

	events, err := store.ReadDay(day)
	if err != nil {
		t.Fatalf("ReadDay returned error: %v", err)
	}
	if len(events) != len(types) {
		t.Fatalf("expected %d events, got %d", len(types), len(events))
	}
	for i, et := range types {
		if events[i].Type != et {
			t.Fatalf("event %d out of order: got %s, want %s", i, events[i].Type, et)
		}
	}
}

func TestFileStore_SplitsByDay(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())

	day1 := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)
	for _, at := range []time.Time{day1, day2} {
		if err := store.Append(&domain.AnalyticsEvent{Type: domain.EventPageView, CreatedAt: at}); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	for _, day := range []time.Time{day1, day2} {
		events, err := store.ReadDay(day)
		if err != nil {
			t.Fatalf("ReadDay returned error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event on %s, got %d", day.Format("2006-01-02"), len(events))
		}
	}
}

func TestFileStore_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(dir, "events-2026-09-01.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store := NewFileStore(dir, zerolog.Nop())
	if err := store.Append(&domain.AnalyticsEvent{Type: domain.EventSignIn, CreatedAt: day}); err != nil {
		t.Fatalf("Append over corrupt file returned error: %v", err)
	}

	events, err := store.ReadDay(day)
	if err != nil {
		t.Fatalf("ReadDay returned error: %v", err)
	}
	if len(events) != 1 || events[0].Type != domain.EventSignIn {
		t.Fatalf("unexpected contents after corrupt file: %+v", events)
	}
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())
	day := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = store.Append(&domain.AnalyticsEvent{Type: domain.EventPageView, CreatedAt: day})
		}()
	}
	wg.Wait()

	events, err := store.ReadDay(day)
	if err != nil {
		t.Fatalf("ReadDay returned error: %v", err)
	}
	if len(events) != n {
		t.Fatalf("lost events under concurrency: got %d, want %d", len(events), n)
	}
}
