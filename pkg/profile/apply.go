package profile

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/devsim-project/devsim-go/pkg/registry"
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// applyDevsim100 walks the four capability sub-blocks of a devsim 1.0.0
// document. Absent sub-blocks leave the corresponding record block
// unchanged.
func (p *pass) applyDevsim100(root map[string]any, data *registry.DeviceData) {
	p.applyObject(root, "VkPhysicalDeviceProperties", &data.Properties)
	p.applyObject(root, "VkPhysicalDeviceFeatures", &data.Features)
	p.applyMemoryProperties(root, "VkPhysicalDeviceMemoryProperties", &data.Memory)
	p.applyQueueFamilies(root, "ArrayOfVkQueueFamilyProperties", &data.QueueFamilies)
}

// deviceNameType is the one byte array populated from a JSON string
// rather than an element array. Distinguished by its length, which
// differs from the UUID array's.
var deviceNameType = reflect.TypeOf([vk.MaxPhysicalDeviceNameSize]byte{})

// applyObject applies the object at root[name] to the struct dest points
// to. A missing key or a non-object value leaves dest untouched.
func (p *pass) applyObject(root map[string]any, name string, dest any) {
	obj, ok := root[name].(map[string]any)
	if !ok {
		return
	}
	p.debugf("applying %s", name)
	p.applyStruct(obj, reflect.ValueOf(dest).Elem())
}

// applyStruct overwrites the fields of dest that are present in obj with
// a compatible JSON type, matching by the fields' json tags. Fields on
// the struct's warn allowlist report a diagnostic when the document
// raises their value; the override is applied either way.
func (p *pass) applyStruct(obj map[string]any, dest reflect.Value) {
	t := dest.Type()
	warn := warnOnIncrease[t]

	for i := 0; i < t.NumField(); i++ {
		name := jsonTagName(t.Field(i))
		if name == "" {
			continue
		}
		raw, ok := obj[name]
		if !ok {
			continue
		}
		p.applyField(name, raw, dest.Field(i), warn[name])
	}
}

// applyField converts raw to the field's representation and overwrites
// it. An incompatible JSON type silently keeps the current value; this
// is the partial-override contract, not an error.
func (p *pass) applyField(name string, raw any, dest reflect.Value, warn bool) {
	switch dest.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		u, ok := asUint(raw, dest.Type().Bits())
		if !ok {
			return
		}
		if warn && u > dest.Uint() {
			p.warnIncrease(name, dest.Uint(), u)
		}
		dest.SetUint(u)

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		i, ok := asInt(raw, dest.Type().Bits())
		if !ok {
			return
		}
		dest.SetInt(i)

	case reflect.Float32, reflect.Float64:
		f, ok := asFloat(raw)
		if !ok {
			return
		}
		dest.SetFloat(f)

	case reflect.Array:
		p.applyArray(name, raw, dest)

	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return
		}
		p.applyStruct(obj, dest)
	}
}

// applyArray populates a bounded array field element-wise up to the
// document array's length. The device name array instead accepts a JSON
// string, copied with a NUL terminator. Documents are trusted to respect
// the destination capacity; elements beyond it are dropped.
func (p *pass) applyArray(name string, raw any, dest reflect.Value) {
	if dest.Type() == deviceNameType {
		s, ok := raw.(string)
		if !ok {
			return
		}
		n := len(s)
		if n > dest.Len()-1 {
			n = dest.Len() - 1
		}
		for i := 0; i < n; i++ {
			dest.Index(i).SetUint(uint64(s[i]))
		}
		dest.Index(n).SetUint(0)
		return
	}

	arr, ok := raw.([]any)
	if !ok {
		return
	}
	n := len(arr)
	if n > dest.Len() {
		n = dest.Len()
	}
	for i := 0; i < n; i++ {
		p.applyField(name, arr[i], dest.Index(i), false)
	}
}

// applyMemoryProperties rebuilds the heap and type lists from the
// document. A present list replaces the count wholesale and populates
// entries element-wise into the existing array slots; an absent list is
// retained unchanged. After populating types, every entry whose heap
// index is not less than the heap count gets one diagnostic; the value
// is kept verbatim.
func (p *pass) applyMemoryProperties(root map[string]any, name string, dest *vk.PhysicalDeviceMemoryProperties) {
	obj, ok := root[name].(map[string]any)
	if !ok {
		return
	}
	p.debugf("applying %s", name)

	if arr, ok := obj["memoryHeaps"].([]any); ok {
		n := len(arr)
		if n > vk.MaxMemoryHeaps {
			n = vk.MaxMemoryHeaps
		}
		for i := 0; i < n; i++ {
			if entry, ok := arr[i].(map[string]any); ok {
				p.applyStruct(entry, reflect.ValueOf(&dest.MemoryHeaps[i]).Elem())
			}
		}
		dest.MemoryHeapCount = uint32(n)
	}

	if arr, ok := obj["memoryTypes"].([]any); ok {
		n := len(arr)
		if n > vk.MaxMemoryTypes {
			n = vk.MaxMemoryTypes
		}
		for i := 0; i < n; i++ {
			if entry, ok := arr[i].(map[string]any); ok {
				p.applyStruct(entry, reflect.ValueOf(&dest.MemoryTypes[i]).Elem())
			}
		}
		dest.MemoryTypeCount = uint32(n)

		for i := 0; i < n; i++ {
			if dest.MemoryTypes[i].HeapIndex >= dest.MemoryHeapCount {
				p.warnHeapIndex(i, dest.MemoryTypes[i].HeapIndex, dest.MemoryHeapCount)
			}
		}
	}
}

// applyQueueFamilies rebuilds the queue family list from scratch when
// the document supplies one: replacement, not merge, with document order
// preserved. Non-object entries become zero-valued families, keeping
// positions aligned with the document.
func (p *pass) applyQueueFamilies(root map[string]any, name string, dest *[]vk.QueueFamilyProperties) {
	arr, ok := root[name].([]any)
	if !ok {
		return
	}
	p.debugf("applying %s", name)

	families := make([]vk.QueueFamilyProperties, 0, len(arr))
	for _, raw := range arr {
		var qf vk.QueueFamilyProperties
		if entry, ok := raw.(map[string]any); ok {
			p.applyStruct(entry, reflect.ValueOf(&qf).Elem())
		}
		families = append(families, qf)
	}
	*dest = families
}

// jsonTagName returns the field's json tag name, or "" for untagged and
// suppressed fields.
func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// asUint converts a JSON number to an unsigned integer of the given
// width. Non-numbers, negative values, fractional values, and values out
// of range are rejected.
func asUint(raw any, bits int) (uint64, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	if u, err := strconv.ParseUint(n.String(), 10, bits); err == nil {
		return u, true
	}
	// Scientific notation and trailing ".0" still count as integral.
	f, err := n.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	if f >= float64(math.MaxUint64) {
		return 0, false
	}
	if bits < 64 && f > float64((uint64(1)<<uint(bits))-1) {
		return 0, false
	}
	return uint64(f), true
}

// asInt converts a JSON number to a signed integer of the given width.
func asInt(raw any, bits int) (int64, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.String(), 10, bits); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	limit := math.Ldexp(1, bits-1)
	if f >= limit || f < -limit {
		return 0, false
	}
	return int64(f), true
}

// asFloat converts any JSON number to a float.
func asFloat(raw any) (float64, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
