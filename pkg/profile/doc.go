// Package profile loads devsim configuration documents and applies them
// to physical-device capability records.
//
// A document is a JSON object whose "$schema" field names the document
// format. For a recognized schema the loader walks the capability
// sub-blocks (properties/limits/sparse, features, memory layout, queue
// families) and overwrites only the fields the document names: absent
// fields and fields with an incompatible JSON type keep the record's
// current value.
//
// The field mapping is driven by the json tags on the pkg/vk structs.
// A fixed allowlist of descriptor limits and the memory heap size get a
// non-fatal warning when a document raises them above the seeded value;
// raising other limits is silent.
//
// Documents may contain comments and trailing commas; they are stripped
// before parsing, and strict JSON passes through untouched.
package profile
