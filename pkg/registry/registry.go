package registry

import (
	"fmt"
	"sync"

	"github.com/devsim-project/devsim-go/pkg/vk"
)

// DeviceData is the capability record for one physical device. It is
// seeded from the wrapped implementation's values and then selectively
// overwritten by the override engine. After the override pass completes
// the record is read-only by convention: the simulator only reads it and
// configuration is not hot-reloaded.
type DeviceData struct {
	// PhysicalDevice is the handle this record belongs to. Immutable.
	PhysicalDevice vk.PhysicalDevice

	// Instance is the instance that owns this record. Immutable.
	Instance vk.Instance

	// Properties is the identity and limits block.
	Properties vk.PhysicalDeviceProperties

	// Features is the feature flag block.
	Features vk.PhysicalDeviceFeatures

	// Memory is the heap and type layout block.
	Memory vk.PhysicalDeviceMemoryProperties

	// QueueFamilies is the ordered queue family list. Order identifies
	// the family and is preserved verbatim from its source.
	QueueFamilies []vk.QueueFamilyProperties
}

// Registry maps physical-device handles to their capability records.
// All operations are serialized under one mutex because device discovery
// and capability queries may run on caller-managed threads concurrently.
// The zero value is not usable; call New.
type Registry struct {
	mu      sync.Mutex
	devices map[vk.PhysicalDevice]*DeviceData
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{devices: make(map[vk.PhysicalDevice]*DeviceData)}
}

// Create inserts a zero-initialized record for pd owned by instance and
// returns it. The returned pointer is stable for the lifetime of the
// entry. Creating a record for a handle that already has one is a
// contract violation by the calling framework, not malformed input, and
// panics.
func (r *Registry) Create(pd vk.PhysicalDevice, instance vk.Instance) *DeviceData {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[pd]; exists {
		panic(fmt.Sprintf("registry: duplicate create for physical device %#x", uint64(pd)))
	}

	data := &DeviceData{
		PhysicalDevice: pd,
		Instance:       instance,
	}
	r.devices[pd] = data
	return data
}

// Find returns the record for pd, or false if the device is not managed.
func (r *Registry) Find(pd vk.PhysicalDevice) (*DeviceData, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.devices[pd]
	return data, ok
}

// RemoveInstance deletes every record owned by instance and returns the
// number removed. Called when the owning instance is destroyed.
func (r *Registry) RemoveInstance(instance vk.Instance) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for pd, data := range r.devices {
		if data.Instance == instance {
			delete(r.devices, pd)
			removed++
		}
	}
	return removed
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devices)
}
