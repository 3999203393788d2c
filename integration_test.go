package devsim_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/devsim-project/devsim-go/pkg/devsim"
	"github.com/devsim-project/devsim-go/pkg/log"
	"github.com/devsim-project/devsim-go/pkg/profile"
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// TestE2E_EnvironmentToQueries exercises the full path: settings from
// the environment, instance creation over a simulated driver, profile
// application, capability queries, event capture, and teardown.
func TestE2E_EnvironmentToQueries(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	capturePath := filepath.Join(dir, "events.cbor")

	document := fmt.Sprintf(`{
		"$schema": %q,
		// Constrain the device to a single small heap.
		"VkPhysicalDeviceProperties": {
			"deviceName": "E2E Simulated",
			"limits": {
				"maxImageDimension2D": 2048,
				"maxBoundDescriptorSets": 32
			}
		},
		"VkPhysicalDeviceFeatures": {"geometryShader": 0},
		"VkPhysicalDeviceMemoryProperties": {
			"memoryHeaps": [{"size": 536870912, "flags": 1}],
			"memoryTypes": [{"propertyFlags": 1, "heapIndex": 0}]
		}
	}`, profile.SchemaDevsim100URI)
	if err := os.WriteFile(profilePath, []byte(document), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(devsim.EnvFilename, profilePath)
	t.Setenv(devsim.EnvDebugEnable, "1")
	t.Setenv(devsim.EnvExitOnError, "0")
	t.Setenv(devsim.EnvLogFilename, capturePath)

	settings := devsim.SettingsFromEnv()
	if settings.Filename != profilePath || !settings.DebugEnable || settings.ExitOnError {
		t.Fatalf("unexpected settings: %+v", settings)
	}

	driver := devsim.NewSimDriver(2)
	sim, err := devsim.NewSimulator(driver, settings, nil)
	if err != nil {
		t.Fatal(err)
	}

	const instance = vk.Instance(1)
	if err := sim.CreateInstance(instance); err != nil {
		t.Fatalf("create instance: %v", err)
	}

	// Overridden values are visible on every tracked device.
	for _, device := range []vk.PhysicalDevice{1, 2} {
		props := sim.GetPhysicalDeviceProperties(device)
		if got := props.DeviceNameString(); got != "E2E Simulated" {
			t.Errorf("device %d: name = %q, want %q", device, got, "E2E Simulated")
		}
		if props.Limits.MaxImageDimension2D != 2048 {
			t.Errorf("device %d: maxImageDimension2D = %d, want 2048", device, props.Limits.MaxImageDimension2D)
		}
		if sim.GetPhysicalDeviceFeatures(device).GeometryShader != vk.False {
			t.Errorf("device %d: geometryShader still enabled", device)
		}

		memory := sim.GetPhysicalDeviceMemoryProperties(device)
		if memory.MemoryHeapCount != 1 || memory.MemoryHeaps[0].Size != 1<<29 {
			t.Errorf("device %d: memory heaps = %d/%d", device, memory.MemoryHeapCount, memory.MemoryHeaps[0].Size)
		}

		// Untouched blocks keep driver values.
		families := sim.GetPhysicalDeviceQueueFamilyProperties(device)
		if len(families) != 2 {
			t.Errorf("device %d: queue families = %d, want 2", device, len(families))
		}
	}

	// Raising maxBoundDescriptorSets above the driver's 8 produced one
	// warning per device.
	if err := sim.Close(); err != nil {
		t.Fatal(err)
	}
	warnings, err := log.ReadFile(capturePath, &log.Filter{Field: "maxBoundDescriptorSets"})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 2 {
		t.Fatalf("captured %d monotonicity warnings, want 2", len(warnings))
	}
	for _, event := range warnings {
		if event.Category != log.CategoryWarning || event.Override == nil {
			t.Errorf("unexpected event: %+v", event)
			continue
		}
		if event.Override.OldValue != 8 || event.Override.NewValue != 32 {
			t.Errorf("override = %d -> %d, want 8 -> 32", event.Override.OldValue, event.Override.NewValue)
		}
	}

	// Teardown restores driver answers.
	if n := sim.DestroyInstance(instance); n != 2 {
		t.Fatalf("destroyed %d devices, want 2", n)
	}
	restored := sim.GetPhysicalDeviceProperties(1)
	if got := restored.DeviceNameString(); got != "SimDriver Device 0" {
		t.Errorf("after teardown: name = %q, want driver name", got)
	}
}

// TestE2E_ProfileErrorKeepsDevicesUsable confirms that a broken profile
// leaves every device registered with its driver capabilities.
func TestE2E_ProfileErrorKeepsDevicesUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"$schema": "https://example.com/nope#"}`), 0644); err != nil {
		t.Fatal(err)
	}

	driver := devsim.NewSimDriver(1)
	sim, err := devsim.NewSimulator(driver, devsim.Settings{Filename: path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer sim.Close()

	if err := sim.CreateInstance(1); err == nil {
		t.Fatal("expected an error from the unsupported schema")
	}

	want := driver.GetPhysicalDeviceProperties(1)
	if got := sim.GetPhysicalDeviceProperties(1); got != want {
		t.Errorf("device capabilities diverged from the driver after a failed profile")
	}
	if n := sim.DestroyInstance(1); n != 1 {
		t.Errorf("destroyed %d devices, want 1", n)
	}
}
