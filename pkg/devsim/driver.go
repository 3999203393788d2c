package devsim

import (
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// Driver is the capability surface of the wrapped implementation. A
// Simulator snapshots these answers at instance creation and serves
// queries from the snapshots; anything it has not snapshotted is
// answered by the Driver directly.
type Driver interface {
	// EnumeratePhysicalDevices lists the physical devices belonging to
	// the instance.
	EnumeratePhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error)

	GetPhysicalDeviceProperties(device vk.PhysicalDevice) vk.PhysicalDeviceProperties
	GetPhysicalDeviceFeatures(device vk.PhysicalDevice) vk.PhysicalDeviceFeatures
	GetPhysicalDeviceMemoryProperties(device vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties
	GetPhysicalDeviceQueueFamilyProperties(device vk.PhysicalDevice) []vk.QueueFamilyProperties
}
