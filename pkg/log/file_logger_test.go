package log

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devsim.cborlog")

	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fl.Log(Event{Timestamp: base, Category: CategoryDebug, Source: SourceSimulator, Message: "instance created"})
	fl.Log(Event{Timestamp: base.Add(time.Second), Category: CategoryWarning, Source: SourceLoader,
		Field: "size", Override: &OverrideEvent{OldValue: 100, NewValue: 200}, Message: "heap size raised"})
	fl.Log(Event{Timestamp: base.Add(2 * time.Second), Category: CategoryError, Source: SourceLoader,
		File: "missing.json", Message: "failed to open file"})

	if err := fl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Log after close is a silent no-op.
	fl.Log(Event{Message: "dropped"})
	if err := fl.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	t.Run("ReadAll", func(t *testing.T) {
		events, err := ReadFile(path, nil)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		if events[1].Override == nil || events[1].Override.NewValue != 200 {
			t.Errorf("override payload lost: %+v", events[1].Override)
		}
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		warn := CategoryWarning
		events, err := ReadFile(path, &Filter{Category: &warn})
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(events) != 1 || events[0].Field != "size" {
			t.Fatalf("expected 1 warning event for field size, got %+v", events)
		}
	})

	t.Run("FilterByTime", func(t *testing.T) {
		start := base.Add(500 * time.Millisecond)
		end := base.Add(1500 * time.Millisecond)
		events, err := ReadFile(path, &Filter{TimeStart: &start, TimeEnd: &end})
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(events) != 1 || events[0].Category != CategoryWarning {
			t.Fatalf("expected the middle event only, got %+v", events)
		}
	})

	t.Run("FilterBySource", func(t *testing.T) {
		src := SourceLoader
		events, err := ReadFile(path, &Filter{Source: &src})
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 loader events, got %d", len(events))
		}
	})
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devsim.cborlog")

	for i := 0; i < 2; i++ {
		fl, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		fl.Log(Event{Timestamp: time.Now(), Message: "run"})
		if err := fl.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	events, err := ReadFile(path, nil)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 appended events, got %d", len(events))
	}
}
