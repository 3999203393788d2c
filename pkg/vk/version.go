package vk

import "fmt"

// Version is a packed API or driver version number
// (10-bit major, 10-bit minor, 12-bit patch).
type Version uint32

// MakeVersion packs major, minor, and patch into a Version.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// Major returns the major version component.
func (v Version) Major() uint32 { return uint32(v) >> 22 }

// Minor returns the minor version component.
func (v Version) Minor() uint32 { return (uint32(v) >> 12) & 0x3FF }

// Patch returns the patch version component.
func (v Version) Patch() uint32 { return uint32(v) & 0xFFF }

// String returns the version in dotted "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
