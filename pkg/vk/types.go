package vk

// PhysicalDevice is an opaque handle identifying one physical device.
// The zero value is the null handle.
type PhysicalDevice uint64

// Instance is an opaque handle identifying one API instance.
// The zero value is the null handle.
type Instance uint64

// NullHandle is the zero value for all handle types.
const NullHandle = 0

// Array bounds fixed by the capability structure layout.
const (
	// MaxPhysicalDeviceNameSize is the capacity of the DeviceName array,
	// including the NUL terminator.
	MaxPhysicalDeviceNameSize = 256

	// UUIDSize is the byte length of a pipeline cache UUID.
	UUIDSize = 16

	// MaxMemoryTypes is the capacity of the MemoryTypes array.
	MaxMemoryTypes = 32

	// MaxMemoryHeaps is the capacity of the MemoryHeaps array.
	MaxMemoryHeaps = 16
)

// Bool32 is the 32-bit boolean used throughout the capability structures.
// Any non-zero value is true.
type Bool32 = uint32

// Boolean values for Bool32 fields.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// DeviceSize is a device memory size or offset in bytes.
type DeviceSize = uint64

// PhysicalDeviceType classifies a physical device.
type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGPU PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGPU    PhysicalDeviceType = 3
	PhysicalDeviceTypeCPU           PhysicalDeviceType = 4
)

// String returns the device type name.
func (t PhysicalDeviceType) String() string {
	switch t {
	case PhysicalDeviceTypeOther:
		return "OTHER"
	case PhysicalDeviceTypeIntegratedGPU:
		return "INTEGRATED_GPU"
	case PhysicalDeviceTypeDiscreteGPU:
		return "DISCRETE_GPU"
	case PhysicalDeviceTypeVirtualGPU:
		return "VIRTUAL_GPU"
	case PhysicalDeviceTypeCPU:
		return "CPU"
	default:
		return "UNKNOWN"
	}
}

// SampleCountFlags is a bitmask of supported sample counts.
type SampleCountFlags = uint32

// Sample count bits.
const (
	SampleCount1Bit  SampleCountFlags = 0x00000001
	SampleCount2Bit  SampleCountFlags = 0x00000002
	SampleCount4Bit  SampleCountFlags = 0x00000004
	SampleCount8Bit  SampleCountFlags = 0x00000008
	SampleCount16Bit SampleCountFlags = 0x00000010
	SampleCount32Bit SampleCountFlags = 0x00000020
	SampleCount64Bit SampleCountFlags = 0x00000040
)

// QueueFlags is a bitmask of queue capabilities.
type QueueFlags = uint32

// Queue capability bits.
const (
	QueueGraphicsBit      QueueFlags = 0x00000001
	QueueComputeBit       QueueFlags = 0x00000002
	QueueTransferBit      QueueFlags = 0x00000004
	QueueSparseBindingBit QueueFlags = 0x00000008
)

// MemoryPropertyFlags is a bitmask of memory type properties.
type MemoryPropertyFlags = uint32

// Memory property bits.
const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x00000001
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x00000002
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x00000004
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x00000010
)

// MemoryHeapFlags is a bitmask of memory heap attributes.
type MemoryHeapFlags = uint32

// Memory heap bits.
const (
	MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x00000001
)

// Extent3D is a three-dimensional extent.
type Extent3D struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Depth  uint32 `json:"depth"`
}
