package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/devsim-project/devsim-go/pkg/profile"
	"github.com/devsim-project/devsim-go/pkg/registry"
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format string // text, json, yaml
	File   string
}

// RunShow applies a profile to the reference device and displays the
// resulting capabilities.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printShowUsage(stderr)
		return exitCommandError
	}

	data := referenceDevice()
	if err := profile.NewLoader(nil).LoadFile(opts.File, data); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	document := capabilityDocument(data)

	switch opts.Format {
	case "json":
		out, _ := json.MarshalIndent(document, "", "  ")
		fmt.Fprintln(stdout, string(out))
	case "yaml":
		out, _ := yaml.Marshal(document)
		fmt.Fprint(stdout, string(out))
	default:
		printShowText(stdout, data)
	}

	return exitSuccess
}

// capabilityDocument renders a capability record as a generic document
// in the profile's own vocabulary, with the byte arrays replaced by
// their readable forms.
func capabilityDocument(data *registry.DeviceData) map[string]any {
	properties := toDocument(&data.Properties)
	properties["deviceName"] = data.Properties.DeviceNameString()
	properties["deviceType"] = data.Properties.DeviceType.String()
	properties["apiVersion"] = vk.Version(data.Properties.APIVersion).String()

	uuid := make([]any, len(data.Properties.PipelineCacheUUID))
	for i, b := range data.Properties.PipelineCacheUUID {
		uuid[i] = b
	}
	properties["pipelineCacheUUID"] = uuid

	memory := toDocument(&data.Memory)
	memory["memoryHeaps"] = truncateList(memory["memoryHeaps"], int(data.Memory.MemoryHeapCount))
	memory["memoryTypes"] = truncateList(memory["memoryTypes"], int(data.Memory.MemoryTypeCount))

	return map[string]any{
		"$schema":                          profile.SchemaDevsim100URI,
		"VkPhysicalDeviceProperties":       properties,
		"VkPhysicalDeviceFeatures":         toDocument(&data.Features),
		"VkPhysicalDeviceMemoryProperties": memory,
		"ArrayOfVkQueueFamilyProperties":   toDocumentList(data.QueueFamilies),
	}
}

func toDocument(v any) map[string]any {
	raw, _ := json.Marshal(v)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return out
}

func toDocumentList[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = toDocument(&items[i])
	}
	return out
}

func truncateList(v any, n int) any {
	list, ok := v.([]any)
	if !ok || n > len(list) {
		return v
	}
	return list[:n]
}

func printShowText(w io.Writer, data *registry.DeviceData) {
	p := &data.Properties
	fmt.Fprintf(w, "Device:      %s (%s)\n", p.DeviceNameString(), p.DeviceType)
	fmt.Fprintf(w, "API version: %s\n", vk.Version(p.APIVersion))
	fmt.Fprintf(w, "Vendor:      %#04x  Device: %#04x\n", p.VendorID, p.DeviceID)

	fmt.Fprintf(w, "Memory:      %d heaps, %d types\n", data.Memory.MemoryHeapCount, data.Memory.MemoryTypeCount)
	for i, heap := range data.Memory.Heaps() {
		fmt.Fprintf(w, "  heap %d: %d MiB (flags %#x)\n", i, heap.Size>>20, heap.Flags)
	}

	fmt.Fprintf(w, "Queues:      %d families\n", len(data.QueueFamilies))
	for i, family := range data.QueueFamilies {
		fmt.Fprintf(w, "  family %d: flags %#x, count %d\n", i, family.QueueFlags, family.QueueCount)
	}

	fmt.Fprintf(w, "Features:    %d enabled\n", enabledFeatures(&data.Features))
	fmt.Fprintf(w, "Limits:      maxImageDimension2D=%d maxBoundDescriptorSets=%d\n",
		p.Limits.MaxImageDimension2D, p.Limits.MaxBoundDescriptorSets)
}

func enabledFeatures(f *vk.PhysicalDeviceFeatures) int {
	n := 0
	for _, v := range toDocument(f) {
		if num, ok := v.(float64); ok && num != 0 {
			n++
		}
	}
	return n
}

func parseShowArgs(args []string) (ShowOptions, error) {
	var opts ShowOptions
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Format, "format", "text", "output format: text, json, yaml")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: devsim-profile show [options] <file.json>

Options:
  -format  Output format: text, json, yaml (default text)`)
}
