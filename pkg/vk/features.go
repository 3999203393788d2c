package vk

// PhysicalDeviceFeatures is the core-1.0 feature flag block, in structure
// declaration order. Each flag is independent of the others.
type PhysicalDeviceFeatures struct {
	RobustBufferAccess                      Bool32 `json:"robustBufferAccess"`
	FullDrawIndexUint32                     Bool32 `json:"fullDrawIndexUint32"`
	ImageCubeArray                          Bool32 `json:"imageCubeArray"`
	IndependentBlend                        Bool32 `json:"independentBlend"`
	GeometryShader                          Bool32 `json:"geometryShader"`
	TessellationShader                      Bool32 `json:"tessellationShader"`
	SampleRateShading                       Bool32 `json:"sampleRateShading"`
	DualSrcBlend                            Bool32 `json:"dualSrcBlend"`
	LogicOp                                 Bool32 `json:"logicOp"`
	MultiDrawIndirect                       Bool32 `json:"multiDrawIndirect"`
	DrawIndirectFirstInstance               Bool32 `json:"drawIndirectFirstInstance"`
	DepthClamp                              Bool32 `json:"depthClamp"`
	DepthBiasClamp                          Bool32 `json:"depthBiasClamp"`
	FillModeNonSolid                        Bool32 `json:"fillModeNonSolid"`
	DepthBounds                             Bool32 `json:"depthBounds"`
	WideLines                               Bool32 `json:"wideLines"`
	LargePoints                             Bool32 `json:"largePoints"`
	AlphaToOne                              Bool32 `json:"alphaToOne"`
	MultiViewport                           Bool32 `json:"multiViewport"`
	SamplerAnisotropy                       Bool32 `json:"samplerAnisotropy"`
	TextureCompressionETC2                  Bool32 `json:"textureCompressionETC2"`
	TextureCompressionASTC_LDR              Bool32 `json:"textureCompressionASTC_LDR"`
	TextureCompressionBC                    Bool32 `json:"textureCompressionBC"`
	OcclusionQueryPrecise                   Bool32 `json:"occlusionQueryPrecise"`
	PipelineStatisticsQuery                 Bool32 `json:"pipelineStatisticsQuery"`
	VertexPipelineStoresAndAtomics          Bool32 `json:"vertexPipelineStoresAndAtomics"`
	FragmentStoresAndAtomics                Bool32 `json:"fragmentStoresAndAtomics"`
	ShaderTessellationAndGeometryPointSize  Bool32 `json:"shaderTessellationAndGeometryPointSize"`
	ShaderImageGatherExtended               Bool32 `json:"shaderImageGatherExtended"`
	ShaderStorageImageExtendedFormats       Bool32 `json:"shaderStorageImageExtendedFormats"`
	ShaderStorageImageMultisample           Bool32 `json:"shaderStorageImageMultisample"`
	ShaderStorageImageReadWithoutFormat     Bool32 `json:"shaderStorageImageReadWithoutFormat"`
	ShaderStorageImageWriteWithoutFormat    Bool32 `json:"shaderStorageImageWriteWithoutFormat"`
	ShaderUniformBufferArrayDynamicIndexing Bool32 `json:"shaderUniformBufferArrayDynamicIndexing"`
	ShaderSampledImageArrayDynamicIndexing  Bool32 `json:"shaderSampledImageArrayDynamicIndexing"`
	ShaderStorageBufferArrayDynamicIndexing Bool32 `json:"shaderStorageBufferArrayDynamicIndexing"`
	ShaderStorageImageArrayDynamicIndexing  Bool32 `json:"shaderStorageImageArrayDynamicIndexing"`
	ShaderClipDistance                      Bool32 `json:"shaderClipDistance"`
	ShaderCullDistance                      Bool32 `json:"shaderCullDistance"`
	ShaderFloat64                           Bool32 `json:"shaderFloat64"`
	ShaderInt64                             Bool32 `json:"shaderInt64"`
	ShaderInt16                             Bool32 `json:"shaderInt16"`
	ShaderResourceResidency                 Bool32 `json:"shaderResourceResidency"`
	ShaderResourceMinLod                    Bool32 `json:"shaderResourceMinLod"`
	SparseBinding                           Bool32 `json:"sparseBinding"`
	SparseResidencyBuffer                   Bool32 `json:"sparseResidencyBuffer"`
	SparseResidencyImage2D                  Bool32 `json:"sparseResidencyImage2D"`
	SparseResidencyImage3D                  Bool32 `json:"sparseResidencyImage3D"`
	SparseResidency2Samples                 Bool32 `json:"sparseResidency2Samples"`
	SparseResidency4Samples                 Bool32 `json:"sparseResidency4Samples"`
	SparseResidency8Samples                 Bool32 `json:"sparseResidency8Samples"`
	SparseResidency16Samples                Bool32 `json:"sparseResidency16Samples"`
	SparseResidencyAliased                  Bool32 `json:"sparseResidencyAliased"`
	VariableMultisampleRate                 Bool32 `json:"variableMultisampleRate"`
	InheritedQueries                        Bool32 `json:"inheritedQueries"`
}
