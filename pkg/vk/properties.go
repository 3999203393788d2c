package vk

import "bytes"

// PhysicalDeviceProperties describes the identity and limits of one
// physical device.
type PhysicalDeviceProperties struct {
	APIVersion        uint32                          `json:"apiVersion"`
	DriverVersion     uint32                          `json:"driverVersion"`
	VendorID          uint32                          `json:"vendorID"`
	DeviceID          uint32                          `json:"deviceID"`
	DeviceType        PhysicalDeviceType              `json:"deviceType"`
	DeviceName        [MaxPhysicalDeviceNameSize]byte `json:"deviceName"`
	PipelineCacheUUID [UUIDSize]byte                  `json:"pipelineCacheUUID"`
	Limits            PhysicalDeviceLimits            `json:"limits"`
	SparseProperties  PhysicalDeviceSparseProperties  `json:"sparseProperties"`
}

// DeviceNameString returns the device name as a Go string,
// truncated at the first NUL byte.
func (p *PhysicalDeviceProperties) DeviceNameString() string {
	if i := bytes.IndexByte(p.DeviceName[:], 0); i >= 0 {
		return string(p.DeviceName[:i])
	}
	return string(p.DeviceName[:])
}

// SetDeviceName copies name into the fixed DeviceName array with a NUL
// terminator, truncating if name exceeds the array capacity.
func (p *PhysicalDeviceProperties) SetDeviceName(name string) {
	p.DeviceName = [MaxPhysicalDeviceNameSize]byte{}
	n := copy(p.DeviceName[:MaxPhysicalDeviceNameSize-1], name)
	p.DeviceName[n] = 0
}

// PhysicalDeviceSparseProperties describes sparse-resource residency
// guarantees.
type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape            Bool32 `json:"residencyStandard2DBlockShape"`
	ResidencyStandard2DMultisampleBlockShape Bool32 `json:"residencyStandard2DMultisampleBlockShape"`
	ResidencyStandard3DBlockShape            Bool32 `json:"residencyStandard3DBlockShape"`
	ResidencyAlignedMipSize                  Bool32 `json:"residencyAlignedMipSize"`
	ResidencyNonResidentStrict               Bool32 `json:"residencyNonResidentStrict"`
}

// PhysicalDeviceLimits is the full core-1.0 limit block, in structure
// declaration order.
type PhysicalDeviceLimits struct {
	MaxImageDimension1D                             uint32           `json:"maxImageDimension1D"`
	MaxImageDimension2D                             uint32           `json:"maxImageDimension2D"`
	MaxImageDimension3D                             uint32           `json:"maxImageDimension3D"`
	MaxImageDimensionCube                           uint32           `json:"maxImageDimensionCube"`
	MaxImageArrayLayers                             uint32           `json:"maxImageArrayLayers"`
	MaxTexelBufferElements                          uint32           `json:"maxTexelBufferElements"`
	MaxUniformBufferRange                           uint32           `json:"maxUniformBufferRange"`
	MaxStorageBufferRange                           uint32           `json:"maxStorageBufferRange"`
	MaxPushConstantsSize                            uint32           `json:"maxPushConstantsSize"`
	MaxMemoryAllocationCount                        uint32           `json:"maxMemoryAllocationCount"`
	MaxSamplerAllocationCount                       uint32           `json:"maxSamplerAllocationCount"`
	BufferImageGranularity                          DeviceSize       `json:"bufferImageGranularity"`
	SparseAddressSpaceSize                          DeviceSize       `json:"sparseAddressSpaceSize"`
	MaxBoundDescriptorSets                          uint32           `json:"maxBoundDescriptorSets"`
	MaxPerStageDescriptorSamplers                   uint32           `json:"maxPerStageDescriptorSamplers"`
	MaxPerStageDescriptorUniformBuffers             uint32           `json:"maxPerStageDescriptorUniformBuffers"`
	MaxPerStageDescriptorStorageBuffers             uint32           `json:"maxPerStageDescriptorStorageBuffers"`
	MaxPerStageDescriptorSampledImages              uint32           `json:"maxPerStageDescriptorSampledImages"`
	MaxPerStageDescriptorStorageImages              uint32           `json:"maxPerStageDescriptorStorageImages"`
	MaxPerStageDescriptorInputAttachments           uint32           `json:"maxPerStageDescriptorInputAttachments"`
	MaxPerStageResources                            uint32           `json:"maxPerStageResources"`
	MaxDescriptorSetSamplers                        uint32           `json:"maxDescriptorSetSamplers"`
	MaxDescriptorSetUniformBuffers                  uint32           `json:"maxDescriptorSetUniformBuffers"`
	MaxDescriptorSetUniformBuffersDynamic           uint32           `json:"maxDescriptorSetUniformBuffersDynamic"`
	MaxDescriptorSetStorageBuffers                  uint32           `json:"maxDescriptorSetStorageBuffers"`
	MaxDescriptorSetStorageBuffersDynamic           uint32           `json:"maxDescriptorSetStorageBuffersDynamic"`
	MaxDescriptorSetSampledImages                   uint32           `json:"maxDescriptorSetSampledImages"`
	MaxDescriptorSetStorageImages                   uint32           `json:"maxDescriptorSetStorageImages"`
	MaxDescriptorSetInputAttachments                uint32           `json:"maxDescriptorSetInputAttachments"`
	MaxVertexInputAttributes                        uint32           `json:"maxVertexInputAttributes"`
	MaxVertexInputBindings                          uint32           `json:"maxVertexInputBindings"`
	MaxVertexInputAttributeOffset                   uint32           `json:"maxVertexInputAttributeOffset"`
	MaxVertexInputBindingStride                     uint32           `json:"maxVertexInputBindingStride"`
	MaxVertexOutputComponents                       uint32           `json:"maxVertexOutputComponents"`
	MaxTessellationGenerationLevel                  uint32           `json:"maxTessellationGenerationLevel"`
	MaxTessellationPatchSize                        uint32           `json:"maxTessellationPatchSize"`
	MaxTessellationControlPerVertexInputComponents  uint32           `json:"maxTessellationControlPerVertexInputComponents"`
	MaxTessellationControlPerVertexOutputComponents uint32           `json:"maxTessellationControlPerVertexOutputComponents"`
	MaxTessellationControlPerPatchOutputComponents  uint32           `json:"maxTessellationControlPerPatchOutputComponents"`
	MaxTessellationControlTotalOutputComponents     uint32           `json:"maxTessellationControlTotalOutputComponents"`
	MaxTessellationEvaluationInputComponents        uint32           `json:"maxTessellationEvaluationInputComponents"`
	MaxTessellationEvaluationOutputComponents       uint32           `json:"maxTessellationEvaluationOutputComponents"`
	MaxGeometryShaderInvocations                    uint32           `json:"maxGeometryShaderInvocations"`
	MaxGeometryInputComponents                      uint32           `json:"maxGeometryInputComponents"`
	MaxGeometryOutputComponents                     uint32           `json:"maxGeometryOutputComponents"`
	MaxGeometryOutputVertices                       uint32           `json:"maxGeometryOutputVertices"`
	MaxGeometryTotalOutputComponents                uint32           `json:"maxGeometryTotalOutputComponents"`
	MaxFragmentInputComponents                      uint32           `json:"maxFragmentInputComponents"`
	MaxFragmentOutputAttachments                    uint32           `json:"maxFragmentOutputAttachments"`
	MaxFragmentDualSrcAttachments                   uint32           `json:"maxFragmentDualSrcAttachments"`
	MaxFragmentCombinedOutputResources              uint32           `json:"maxFragmentCombinedOutputResources"`
	MaxComputeSharedMemorySize                      uint32           `json:"maxComputeSharedMemorySize"`
	MaxComputeWorkGroupCount                        [3]uint32        `json:"maxComputeWorkGroupCount"`
	MaxComputeWorkGroupInvocations                  uint32           `json:"maxComputeWorkGroupInvocations"`
	MaxComputeWorkGroupSize                         [3]uint32        `json:"maxComputeWorkGroupSize"`
	SubPixelPrecisionBits                           uint32           `json:"subPixelPrecisionBits"`
	SubTexelPrecisionBits                           uint32           `json:"subTexelPrecisionBits"`
	MipmapPrecisionBits                             uint32           `json:"mipmapPrecisionBits"`
	MaxDrawIndexedIndexValue                        uint32           `json:"maxDrawIndexedIndexValue"`
	MaxDrawIndirectCount                            uint32           `json:"maxDrawIndirectCount"`
	MaxSamplerLodBias                               float32          `json:"maxSamplerLodBias"`
	MaxSamplerAnisotropy                            float32          `json:"maxSamplerAnisotropy"`
	MaxViewports                                    uint32           `json:"maxViewports"`
	MaxViewportDimensions                           [2]uint32        `json:"maxViewportDimensions"`
	ViewportBoundsRange                             [2]float32       `json:"viewportBoundsRange"`
	ViewportSubPixelBits                            uint32           `json:"viewportSubPixelBits"`
	MinMemoryMapAlignment                           uint64           `json:"minMemoryMapAlignment"`
	MinTexelBufferOffsetAlignment                   DeviceSize       `json:"minTexelBufferOffsetAlignment"`
	MinUniformBufferOffsetAlignment                 DeviceSize       `json:"minUniformBufferOffsetAlignment"`
	MinStorageBufferOffsetAlignment                 DeviceSize       `json:"minStorageBufferOffsetAlignment"`
	MinTexelOffset                                  int32            `json:"minTexelOffset"`
	MaxTexelOffset                                  uint32           `json:"maxTexelOffset"`
	MinTexelGatherOffset                            int32            `json:"minTexelGatherOffset"`
	MaxTexelGatherOffset                            uint32           `json:"maxTexelGatherOffset"`
	MinInterpolationOffset                          float32          `json:"minInterpolationOffset"`
	MaxInterpolationOffset                          float32          `json:"maxInterpolationOffset"`
	SubPixelInterpolationOffsetBits                 uint32           `json:"subPixelInterpolationOffsetBits"`
	MaxFramebufferWidth                             uint32           `json:"maxFramebufferWidth"`
	MaxFramebufferHeight                            uint32           `json:"maxFramebufferHeight"`
	MaxFramebufferLayers                            uint32           `json:"maxFramebufferLayers"`
	FramebufferColorSampleCounts                    SampleCountFlags `json:"framebufferColorSampleCounts"`
	FramebufferDepthSampleCounts                    SampleCountFlags `json:"framebufferDepthSampleCounts"`
	FramebufferStencilSampleCounts                  SampleCountFlags `json:"framebufferStencilSampleCounts"`
	FramebufferNoAttachmentsSampleCounts            SampleCountFlags `json:"framebufferNoAttachmentsSampleCounts"`
	MaxColorAttachments                             uint32           `json:"maxColorAttachments"`
	SampledImageColorSampleCounts                   SampleCountFlags `json:"sampledImageColorSampleCounts"`
	SampledImageIntegerSampleCounts                 SampleCountFlags `json:"sampledImageIntegerSampleCounts"`
	SampledImageDepthSampleCounts                   SampleCountFlags `json:"sampledImageDepthSampleCounts"`
	SampledImageStencilSampleCounts                 SampleCountFlags `json:"sampledImageStencilSampleCounts"`
	StorageImageSampleCounts                        SampleCountFlags `json:"storageImageSampleCounts"`
	MaxSampleMaskWords                              uint32           `json:"maxSampleMaskWords"`
	TimestampComputeAndGraphics                     Bool32           `json:"timestampComputeAndGraphics"`
	TimestampPeriod                                 float32          `json:"timestampPeriod"`
	MaxClipDistances                                uint32           `json:"maxClipDistances"`
	MaxCullDistances                                uint32           `json:"maxCullDistances"`
	MaxCombinedClipAndCullDistances                 uint32           `json:"maxCombinedClipAndCullDistances"`
	DiscreteQueuePriorities                         uint32           `json:"discreteQueuePriorities"`
	PointSizeRange                                  [2]float32       `json:"pointSizeRange"`
	LineWidthRange                                  [2]float32       `json:"lineWidthRange"`
	PointSizeGranularity                            float32          `json:"pointSizeGranularity"`
	LineWidthGranularity                            float32          `json:"lineWidthGranularity"`
	StrictLines                                     Bool32           `json:"strictLines"`
	StandardSampleLocations                         Bool32           `json:"standardSampleLocations"`
	OptimalBufferCopyOffsetAlignment                DeviceSize       `json:"optimalBufferCopyOffsetAlignment"`
	OptimalBufferCopyRowPitchAlignment              DeviceSize       `json:"optimalBufferCopyRowPitchAlignment"`
	NonCoherentAtomSize                             DeviceSize       `json:"nonCoherentAtomSize"`
}
