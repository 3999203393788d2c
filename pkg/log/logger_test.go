package log

import (
	"testing"
	"time"
)

func TestNoopLogger(t *testing.T) {
	// Must not panic and must satisfy the interface via the zero value.
	var l Logger = NoopLogger{}
	l.Log(Event{Message: "ignored"})
}

func TestLevelLogger(t *testing.T) {
	collect := NewCollectLogger()
	l := NewLevelLogger(CategoryWarning, collect)

	l.Log(Event{Category: CategoryDebug, Message: "trace"})
	l.Log(Event{Category: CategoryWarning, Message: "warn"})
	l.Log(Event{Category: CategoryError, Message: "err"})

	events := collect.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events past filter, got %d", len(events))
	}
	if events[0].Category != CategoryWarning || events[1].Category != CategoryError {
		t.Errorf("unexpected categories: %v, %v", events[0].Category, events[1].Category)
	}
}

func TestMultiLogger(t *testing.T) {
	a := NewCollectLogger()
	b := NewCollectLogger()
	m := NewMultiLogger(a, b)

	m.Log(Event{Category: CategoryDebug, Message: "fan-out"})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Errorf("expected both loggers to receive the event, got %d and %d",
			len(a.Events()), len(b.Events()))
	}
}

func TestStrictLogger(t *testing.T) {
	t.Run("ErrorEscalates", func(t *testing.T) {
		collect := NewCollectLogger()
		exitCode := -1
		strict := NewStrictLogger(collect)
		strict.Exit = func(code int) { exitCode = code }

		strict.Log(Event{Category: CategoryError, Message: "bad schema"})

		if exitCode != 1 {
			t.Errorf("expected exit code 1, got %d", exitCode)
		}
		if len(collect.Events()) != 1 {
			t.Errorf("expected event forwarded before exit, got %d", len(collect.Events()))
		}
	})

	t.Run("WarningPassesThrough", func(t *testing.T) {
		collect := NewCollectLogger()
		exited := false
		strict := NewStrictLogger(collect)
		strict.Exit = func(int) { exited = true }

		strict.Log(Event{Category: CategoryWarning, Message: "raised limit"})
		strict.Log(Event{Category: CategoryDebug, Message: "trace"})

		if exited {
			t.Error("warnings and debug events must not escalate")
		}
		if len(collect.Events()) != 2 {
			t.Errorf("expected 2 forwarded events, got %d", len(collect.Events()))
		}
	})
}

func TestCollectLogger(t *testing.T) {
	collect := NewCollectLogger()
	collect.Log(Event{Category: CategoryWarning})
	collect.Log(Event{Category: CategoryWarning})
	collect.Log(Event{Category: CategoryError})

	if got := collect.CountCategory(CategoryWarning); got != 2 {
		t.Errorf("expected 2 warnings, got %d", got)
	}
	if got := collect.CountCategory(CategoryError); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}

	collect.Reset()
	if len(collect.Events()) != 0 {
		t.Error("expected no events after Reset")
	}
}

func TestCategoryAndSourceStrings(t *testing.T) {
	if CategoryWarning.String() != "WARNING" {
		t.Errorf("unexpected category string %q", CategoryWarning.String())
	}
	if Category(9).String() != "UNKNOWN" {
		t.Errorf("unexpected fallback %q", Category(9).String())
	}
	if SourceLoader.String() != "loader" {
		t.Errorf("unexpected source string %q", SourceLoader.String())
	}
	if Source(9).String() != "unknown" {
		t.Errorf("unexpected fallback %q", Source(9).String())
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp:      time.Now().UTC(),
		Category:       CategoryWarning,
		Source:         SourceLoader,
		Message:        "value is greater than existing value",
		PhysicalDevice: 0x1001,
		Field:          "maxBoundDescriptorSets",
		Override:       &OverrideEvent{OldValue: 4, NewValue: 8},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Message != event.Message {
		t.Errorf("message mismatch: %q", decoded.Message)
	}
	if decoded.Field != event.Field {
		t.Errorf("field mismatch: %q", decoded.Field)
	}
	if decoded.Override == nil || decoded.Override.NewValue != 8 {
		t.Errorf("override payload mismatch: %+v", decoded.Override)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp mismatch: %v vs %v", decoded.Timestamp, event.Timestamp)
	}
}
