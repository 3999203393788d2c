// Package log provides the diagnostic event model for the device
// simulation layer.
//
// The override engine and the simulator report everything they notice as
// structured Event values through a small Logger interface: debug traces,
// non-fatal warnings (monotonicity violations, heap cross-reference
// inconsistencies) and error-class failures (unreadable or malformed
// configuration documents, unrecognized schemas).
//
// Implementations include a console adapter built on log/slog, a CBOR
// event capture file with a matching Reader, a fan-out MultiLogger, a
// CollectLogger for capturing events in memory, and a StrictLogger that
// escalates error-class events to process exit for CI-style validation.
package log
