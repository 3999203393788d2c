package profile

import "github.com/devsim-project/devsim-go/pkg/registry"

// SchemaID identifies a recognized document format.
type SchemaID int

const (
	// SchemaUnknown is any schema this loader does not recognize.
	SchemaUnknown SchemaID = iota

	// SchemaDevsim100 is the devsim 1.0.0 document format.
	SchemaDevsim100
)

// SchemaDevsim100URI is the schema identifier for devsim 1.0.0 documents.
const SchemaDevsim100URI = "https://schema.khronos.org/vulkan/devsim_1_0_0.json#"

// String returns the schema name.
func (s SchemaID) String() string {
	switch s {
	case SchemaDevsim100:
		return "devsim-1.0.0"
	default:
		return "unknown"
	}
}

// schemaEntry binds a schema identifier string to its apply function.
type schemaEntry struct {
	id    SchemaID
	apply func(p *pass, root map[string]any, data *registry.DeviceData)
}

var schemaTable = map[string]schemaEntry{
	SchemaDevsim100URI: {id: SchemaDevsim100, apply: (*pass).applyDevsim100},
}

// IdentifySchema returns the SchemaID for a document's "$schema" value.
func IdentifySchema(value any) SchemaID {
	s, ok := value.(string)
	if !ok {
		return SchemaUnknown
	}
	entry, ok := schemaTable[s]
	if !ok {
		return SchemaUnknown
	}
	return entry.id
}
