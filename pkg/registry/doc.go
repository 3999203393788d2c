// Package registry associates opaque physical-device handles with their
// mutable capability records.
//
// One Registry serves all instances of a process. Entries are created when
// an instance is created, looked up on every capability query, and swept
// when the owning instance is destroyed. A lookup miss is the expected
// signal that a device is not managed by the simulation layer; callers
// fall back to the wrapped implementation in that case.
package registry
