package devsim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/devsim-project/devsim-go/pkg/vk"
)

// SimDriver is a self-contained Driver with deterministic capabilities,
// for running the simulator without a real implementation underneath.
// Device n's identity, including its pipeline cache UUID, is derived
// from its index, so two SimDrivers of the same size agree exactly.
type SimDriver struct {
	devices []vk.PhysicalDevice
	data    map[vk.PhysicalDevice]simDevice
}

type simDevice struct {
	properties    vk.PhysicalDeviceProperties
	features      vk.PhysicalDeviceFeatures
	memory        vk.PhysicalDeviceMemoryProperties
	queueFamilies []vk.QueueFamilyProperties
}

// NewSimDriver creates a driver exposing count devices with handles
// 1..count.
func NewSimDriver(count int) *SimDriver {
	d := &SimDriver{data: make(map[vk.PhysicalDevice]simDevice, count)}
	for i := 0; i < count; i++ {
		handle := vk.PhysicalDevice(i + 1)
		d.devices = append(d.devices, handle)
		d.data[handle] = makeSimDevice(i)
	}
	return d
}

func makeSimDevice(index int) simDevice {
	var dev simDevice

	p := &dev.properties
	p.APIVersion = uint32(vk.MakeVersion(1, 0, 68))
	p.DriverVersion = uint32(vk.MakeVersion(0, 1, 0))
	p.VendorID = 0x10005
	p.DeviceID = uint32(0x1000 + index)
	p.DeviceType = vk.PhysicalDeviceTypeDiscreteGPU
	if index%2 == 1 {
		p.DeviceType = vk.PhysicalDeviceTypeIntegratedGPU
	}
	p.SetDeviceName(fmt.Sprintf("SimDriver Device %d", index))
	id := uuid.NewSHA1(uuid.NameSpaceOID, p.DeviceName[:])
	copy(p.PipelineCacheUUID[:], id[:])

	l := &p.Limits
	l.MaxImageDimension1D = 16384
	l.MaxImageDimension2D = 16384
	l.MaxImageDimension3D = 2048
	l.MaxImageDimensionCube = 16384
	l.MaxImageArrayLayers = 2048
	l.MaxUniformBufferRange = 65536
	l.MaxStorageBufferRange = 1 << 27
	l.MaxPushConstantsSize = 128
	l.MaxMemoryAllocationCount = 4096
	l.MaxSamplerAllocationCount = 4000
	l.BufferImageGranularity = 1024
	l.SparseAddressSpaceSize = 1 << 40
	l.MaxBoundDescriptorSets = 8
	l.MaxPerStageDescriptorSamplers = 16
	l.MaxPerStageDescriptorUniformBuffers = 12
	l.MaxPerStageDescriptorStorageBuffers = 8
	l.MaxPerStageDescriptorSampledImages = 16
	l.MaxPerStageDescriptorStorageImages = 8
	l.MaxPerStageDescriptorInputAttachments = 8
	l.MaxPerStageResources = 128
	l.MaxDescriptorSetSamplers = 96
	l.MaxDescriptorSetUniformBuffers = 72
	l.MaxDescriptorSetUniformBuffersDynamic = 8
	l.MaxDescriptorSetStorageBuffers = 24
	l.MaxDescriptorSetStorageBuffersDynamic = 4
	l.MaxDescriptorSetSampledImages = 96
	l.MaxDescriptorSetStorageImages = 24
	l.MaxDescriptorSetInputAttachments = 8
	l.MaxComputeWorkGroupCount = [3]uint32{65535, 65535, 65535}
	l.MaxComputeWorkGroupInvocations = 1024
	l.MaxComputeWorkGroupSize = [3]uint32{1024, 1024, 64}
	l.MaxViewports = 16
	l.MaxViewportDimensions = [2]uint32{16384, 16384}
	l.ViewportBoundsRange = [2]float32{-32768, 32767}
	l.MinMemoryMapAlignment = 64
	l.MinTexelBufferOffsetAlignment = 16
	l.MinUniformBufferOffsetAlignment = 256
	l.MinStorageBufferOffsetAlignment = 32
	l.MinTexelOffset = -8
	l.MaxTexelOffset = 7
	l.MaxSamplerLodBias = 15
	l.MaxSamplerAnisotropy = 16
	l.FramebufferColorSampleCounts = vk.SampleCount1Bit | vk.SampleCount4Bit
	l.FramebufferDepthSampleCounts = vk.SampleCount1Bit | vk.SampleCount4Bit
	l.SampledImageColorSampleCounts = vk.SampleCount1Bit | vk.SampleCount4Bit
	l.TimestampPeriod = 1
	l.PointSizeRange = [2]float32{1, 64}
	l.LineWidthRange = [2]float32{1, 8}
	l.PointSizeGranularity = 0.125
	l.LineWidthGranularity = 0.125
	l.NonCoherentAtomSize = 64

	p.SparseProperties.ResidencyNonResidentStrict = vk.True

	f := &dev.features
	f.RobustBufferAccess = vk.True
	f.FullDrawIndexUint32 = vk.True
	f.ImageCubeArray = vk.True
	f.IndependentBlend = vk.True
	f.GeometryShader = vk.True
	f.TessellationShader = vk.True
	f.SamplerAnisotropy = vk.True
	f.TextureCompressionBC = vk.True
	f.ShaderClipDistance = vk.True

	m := &dev.memory
	m.MemoryHeapCount = 2
	m.MemoryHeaps[0] = vk.MemoryHeap{Size: vk.DeviceSize(4+4*index) << 30, Flags: vk.MemoryHeapDeviceLocalBit}
	m.MemoryHeaps[1] = vk.MemoryHeap{Size: 16 << 30}
	m.MemoryTypeCount = 3
	m.MemoryTypes[0] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0}
	m.MemoryTypes[1] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit, HeapIndex: 1}
	m.MemoryTypes[2] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCachedBit, HeapIndex: 1}

	dev.queueFamilies = []vk.QueueFamilyProperties{
		{
			QueueFlags:                  vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit | vk.QueueSparseBindingBit,
			QueueCount:                  16,
			TimestampValidBits:          64,
			MinImageTransferGranularity: vk.Extent3D{Width: 1, Height: 1, Depth: 1},
		},
		{
			QueueFlags:                  vk.QueueTransferBit,
			QueueCount:                  2,
			TimestampValidBits:          64,
			MinImageTransferGranularity: vk.Extent3D{Width: 8, Height: 8, Depth: 8},
		},
	}

	return dev
}

// EnumeratePhysicalDevices lists every device regardless of instance.
func (d *SimDriver) EnumeratePhysicalDevices(vk.Instance) ([]vk.PhysicalDevice, error) {
	return append([]vk.PhysicalDevice(nil), d.devices...), nil
}

func (d *SimDriver) GetPhysicalDeviceProperties(device vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	return d.data[device].properties
}

func (d *SimDriver) GetPhysicalDeviceFeatures(device vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	return d.data[device].features
}

func (d *SimDriver) GetPhysicalDeviceMemoryProperties(device vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	return d.data[device].memory
}

func (d *SimDriver) GetPhysicalDeviceQueueFamilyProperties(device vk.PhysicalDevice) []vk.QueueFamilyProperties {
	return append([]vk.QueueFamilyProperties(nil), d.data[device].queueFamilies...)
}

var _ Driver = (*SimDriver)(nil)
