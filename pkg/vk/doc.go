// Package vk defines the Vulkan core-1.0 physical-device capability
// structures in pure Go: properties, limits, sparse properties, features,
// memory properties, and queue family properties, together with the opaque
// handle types and flag bits they reference.
//
// The structs mirror the fixed layout of the Vulkan API structures field
// for field. Every field carries a json tag with its exact Vulkan name;
// these tags are the schema vocabulary of devsim configuration documents
// and drive the override engine in pkg/profile.
//
// No cgo is involved. Handles are opaque integers supplied by whatever
// driver implementation backs the simulator.
package vk
