package profile

import (
	"reflect"

	"github.com/devsim-project/devsim-go/pkg/vk"
)

// warnOnIncrease lists the fields that report a diagnostic when a
// document raises them above the seeded value: the per-stage and
// per-set descriptor limits plus the memory heap size. Other limits,
// the image dimensions included, raise silently.
var warnOnIncrease = map[reflect.Type]map[string]bool{
	reflect.TypeOf(vk.PhysicalDeviceLimits{}): {
		"maxBoundDescriptorSets":                true,
		"maxPerStageDescriptorSamplers":         true,
		"maxPerStageDescriptorUniformBuffers":   true,
		"maxPerStageDescriptorStorageBuffers":   true,
		"maxPerStageDescriptorSampledImages":    true,
		"maxPerStageDescriptorStorageImages":    true,
		"maxPerStageDescriptorInputAttachments": true,
		"maxPerStageResources":                  true,
		"maxDescriptorSetSamplers":              true,
		"maxDescriptorSetUniformBuffers":        true,
		"maxDescriptorSetUniformBuffersDynamic": true,
		"maxDescriptorSetStorageBuffers":        true,
		"maxDescriptorSetStorageBuffersDynamic": true,
		"maxDescriptorSetSampledImages":         true,
		"maxDescriptorSetStorageImages":         true,
		"maxDescriptorSetInputAttachments":      true,
	},
	reflect.TypeOf(vk.MemoryHeap{}): {
		"size": true,
	},
}
