package log

import "os"

// StrictLogger escalates error-class events to process termination after
// forwarding them, for CI-style validation where any configuration failure
// should abort immediately. Warnings and debug traces pass through
// unescalated.
type StrictLogger struct {
	// Next receives every event before escalation.
	Next Logger

	// Exit is called with status 1 on the first error-class event.
	// Defaults to os.Exit; tests replace it.
	Exit func(code int)
}

// NewStrictLogger creates a StrictLogger wrapping next.
func NewStrictLogger(next Logger) *StrictLogger {
	return &StrictLogger{Next: next, Exit: os.Exit}
}

// Log forwards the event and terminates the process if it is error-class.
func (l *StrictLogger) Log(event Event) {
	l.Next.Log(event)
	if event.Category == CategoryError {
		l.Exit(1)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*StrictLogger)(nil)
