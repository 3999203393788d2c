package log

import "time"

// Event represents one diagnostic event from the simulation layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Category classifies the severity of the event.
	Category Category `cbor:"2,keyasint"`

	// Source identifies the component that reported the event.
	Source Source `cbor:"3,keyasint"`

	// Message is the human-readable description.
	Message string `cbor:"4,keyasint"`

	// PhysicalDevice is the handle of the device the event concerns,
	// zero when the event is not device-specific.
	PhysicalDevice uint64 `cbor:"5,keyasint,omitempty"`

	// File is the configuration document path, when relevant.
	File string `cbor:"6,keyasint,omitempty"`

	// Field is the capability field name, when relevant.
	Field string `cbor:"7,keyasint,omitempty"`

	// Override carries old/new values for override warnings.
	Override *OverrideEvent `cbor:"8,keyasint,omitempty"`
}

// OverrideEvent carries the values involved in an override diagnostic,
// such as a monotonicity warning.
type OverrideEvent struct {
	// OldValue is the value before the override.
	OldValue uint64 `cbor:"1,keyasint"`

	// NewValue is the value from the configuration document.
	NewValue uint64 `cbor:"2,keyasint"`
}

// Category classifies the severity of an event.
type Category uint8

const (
	// CategoryDebug is verbose tracing, suppressed unless debug output
	// is enabled.
	CategoryDebug Category = 0

	// CategoryWarning is a non-fatal diagnostic: the override was still
	// applied.
	CategoryWarning Category = 1

	// CategoryError is a failure that caused an override pass to be
	// skipped. StrictLogger escalates these to process exit.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDebug:
		return "DEBUG"
	case CategoryWarning:
		return "WARNING"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Source identifies the component that reported an event.
type Source uint8

const (
	// SourceLoader is the configuration document loader and override engine.
	SourceLoader Source = 0

	// SourceRegistry is the physical-device registry.
	SourceRegistry Source = 1

	// SourceSimulator is the instance-level orchestration.
	SourceSimulator Source = 2
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceLoader:
		return "loader"
	case SourceRegistry:
		return "registry"
	case SourceSimulator:
		return "simulator"
	default:
		return "unknown"
	}
}
