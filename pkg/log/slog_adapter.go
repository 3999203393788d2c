package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
// Useful when applications want simulation diagnostics in console output.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Warnings and errors map to
// their slog levels; everything else is logged at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("source", event.Source.String()),
	}

	if event.PhysicalDevice != 0 {
		attrs = append(attrs, slog.Uint64("physical_device", event.PhysicalDevice))
	}
	if event.File != "" {
		attrs = append(attrs, slog.String("file", event.File))
	}
	if event.Field != "" {
		attrs = append(attrs, slog.String("field", event.Field))
	}
	if event.Override != nil {
		attrs = append(attrs,
			slog.Uint64("old_value", event.Override.OldValue),
			slog.Uint64("new_value", event.Override.NewValue),
		)
	}

	level := slog.LevelDebug
	switch event.Category {
	case CategoryWarning:
		level = slog.LevelWarn
	case CategoryError:
		level = slog.LevelError
	}

	a.logger.LogAttrs(context.Background(), level, event.Message, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
