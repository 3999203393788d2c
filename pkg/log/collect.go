package log

import "sync"

// CollectLogger accumulates events in memory. It backs the profile
// validation tooling and tests that assert on diagnostic counts.
// It is safe for concurrent use.
type CollectLogger struct {
	mu     sync.Mutex
	events []Event
}

// NewCollectLogger creates an empty CollectLogger.
func NewCollectLogger() *CollectLogger {
	return &CollectLogger{}
}

// Log appends the event.
func (l *CollectLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns a copy of all collected events.
func (l *CollectLogger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// CountCategory returns the number of collected events with the given category.
func (l *CollectLogger) CountCategory(c Category) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Category == c {
			n++
		}
	}
	return n
}

// Reset discards all collected events.
func (l *CollectLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}

// Compile-time interface satisfaction check.
var _ Logger = (*CollectLogger)(nil)
