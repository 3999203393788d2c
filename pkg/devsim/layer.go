package devsim

import "github.com/devsim-project/devsim-go/pkg/vk"

// Layer identity, reported alongside every instance the simulator
// participates in.
const (
	LayerName        = "VK_LAYER_DEVSIM_go"
	LayerDescription = "Device capability simulation layer"

	// VersionMajor and friends identify this implementation, not the
	// capability schema it consumes.
	VersionMajor = 1
	VersionMinor = 1
	VersionPatch = 0
)

// LayerProperties describes the simulator to enumeration queries.
type LayerProperties struct {
	LayerName             string     `json:"layerName"`
	SpecVersion           vk.Version `json:"specVersion"`
	ImplementationVersion uint32     `json:"implementationVersion"`
	Description           string     `json:"description"`
}

// Properties returns the simulator's layer identity.
func Properties() LayerProperties {
	return LayerProperties{
		LayerName:             LayerName,
		SpecVersion:           vk.MakeVersion(1, 0, 68),
		ImplementationVersion: uint32(vk.MakeVersion(VersionMajor, VersionMinor, VersionPatch)),
		Description:           LayerDescription,
	}
}
