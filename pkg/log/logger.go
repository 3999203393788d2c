package log

// Logger is the interface components implement to receive diagnostic events.
// Pass nil-safe NoopLogger to disable logging.
type Logger interface {
	// Log records a diagnostic event. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// LevelLogger forwards only events at or above a minimum category.
// Wrap a logger with CategoryWarning minimum to suppress debug traces.
type LevelLogger struct {
	// Min is the lowest category that is forwarded.
	Min Category

	// Next receives the events that pass the filter.
	Next Logger
}

// NewLevelLogger creates a LevelLogger forwarding events of category min
// or higher to next.
func NewLevelLogger(min Category, next Logger) *LevelLogger {
	return &LevelLogger{Min: min, Next: next}
}

// Log forwards the event if its category is at or above the minimum.
func (l *LevelLogger) Log(event Event) {
	if event.Category < l.Min {
		return
	}
	l.Next.Log(event)
}

// Compile-time interface satisfaction check.
var _ Logger = (*LevelLogger)(nil)
