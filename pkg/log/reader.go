package log

import (
	"io"
	"os"
	"time"
)

// Filter specifies criteria for filtering captured events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// Category filters by event category.
	Category *Category

	// Source filters by reporting component.
	Source *Source

	// PhysicalDevice filters by device handle.
	PhysicalDevice uint64

	// Field filters by exact capability field name.
	Field string

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// matches returns true if the event matches all filter criteria.
func (f *Filter) matches(event Event) bool {
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Source != nil && event.Source != *f.Source {
		return false
	}
	if f.PhysicalDevice != 0 && event.PhysicalDevice != f.PhysicalDevice {
		return false
	}
	if f.Field != "" && event.Field != f.Field {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// ReadFile reads all events from a CBOR capture file written by FileLogger.
// A nil filter returns every event.
func ReadFile(path string, filter *Filter) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadAll(f, filter)
}

// ReadAll reads events from r until EOF, returning those that match filter.
// A nil filter returns every event.
func ReadAll(r io.Reader, filter *Filter) ([]Event, error) {
	dec := NewDecoder(r)

	var events []Event
	for {
		var event Event
		if err := dec.Decode(&event); err != nil {
			if err == io.EOF {
				break
			}
			return events, err
		}
		if filter == nil || filter.matches(event) {
			events = append(events, event)
		}
	}
	return events, nil
}
