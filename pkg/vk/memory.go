package vk

// MemoryType describes one memory type: its property flags and the heap
// it allocates from.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags `json:"propertyFlags"`
	HeapIndex     uint32              `json:"heapIndex"`
}

// MemoryHeap describes one memory heap: its size in bytes and attributes.
type MemoryHeap struct {
	Size  DeviceSize      `json:"size"`
	Flags MemoryHeapFlags `json:"flags"`
}

// PhysicalDeviceMemoryProperties describes the memory layout of a physical
// device. Only the first MemoryTypeCount types and MemoryHeapCount heaps
// are meaningful.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32                     `json:"memoryTypeCount"`
	MemoryTypes     [MaxMemoryTypes]MemoryType `json:"memoryTypes"`
	MemoryHeapCount uint32                     `json:"memoryHeapCount"`
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap `json:"memoryHeaps"`
}

// Heaps returns the meaningful prefix of the heap array.
func (m *PhysicalDeviceMemoryProperties) Heaps() []MemoryHeap {
	n := m.MemoryHeapCount
	if n > MaxMemoryHeaps {
		n = MaxMemoryHeaps
	}
	return m.MemoryHeaps[:n]
}

// Types returns the meaningful prefix of the type array.
func (m *PhysicalDeviceMemoryProperties) Types() []MemoryType {
	n := m.MemoryTypeCount
	if n > MaxMemoryTypes {
		n = MaxMemoryTypes
	}
	return m.MemoryTypes[:n]
}

// QueueFamilyProperties describes one queue family. Queue families are
// identified by their position in the enumeration order.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags `json:"queueFlags"`
	QueueCount                  uint32     `json:"queueCount"`
	TimestampValidBits          uint32     `json:"timestampValidBits"`
	MinImageTransferGranularity Extent3D   `json:"minImageTransferGranularity"`
}
