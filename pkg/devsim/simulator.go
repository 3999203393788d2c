package devsim

import (
	"fmt"
	"time"

	"github.com/devsim-project/devsim-go/pkg/log"
	"github.com/devsim-project/devsim-go/pkg/profile"
	"github.com/devsim-project/devsim-go/pkg/registry"
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// Simulator answers capability queries from profile-modified snapshots.
type Simulator struct {
	driver   Driver
	settings Settings
	logger   log.Logger
	registry *registry.Registry
	loader   *profile.Loader
	capture  *log.FileLogger
}

// NewSimulator wraps driver. The logger receives the simulator's
// events, filtered and escalated per the settings; nil means discard.
func NewSimulator(driver Driver, settings Settings, logger log.Logger) (*Simulator, error) {
	if logger == nil {
		logger = log.NoopLogger{}
	}

	s := &Simulator{
		driver:   driver,
		settings: settings,
		registry: registry.New(),
	}

	if settings.LogFilename != "" {
		capture, err := log.NewFileLogger(settings.LogFilename)
		if err != nil {
			return nil, fmt.Errorf("open event capture: %w", err)
		}
		s.capture = capture
		logger = log.NewMultiLogger(logger, capture)
	}
	if !settings.DebugEnable {
		logger = log.NewLevelLogger(log.CategoryWarning, logger)
	}
	if settings.ExitOnError {
		logger = log.NewStrictLogger(logger)
	}

	s.logger = logger
	s.loader = profile.NewLoader(logger)
	return s, nil
}

// Close releases the event capture file, if one is open.
func (s *Simulator) Close() error {
	if s.capture != nil {
		return s.capture.Close()
	}
	return nil
}

// CreateInstance snapshots every physical device of the instance and
// applies the configured profile to each snapshot. A profile failure on
// one device does not stop the others: every device stays registered
// with whatever capabilities it ended up with, and the first failure is
// returned.
func (s *Simulator) CreateInstance(instance vk.Instance) error {
	s.debugf("%s version %d.%d.%d", LayerName, VersionMajor, VersionMinor, VersionPatch)

	devices, err := s.driver.EnumeratePhysicalDevices(instance)
	if err != nil {
		return fmt.Errorf("enumerate physical devices: %w", err)
	}

	var firstErr error
	for _, pd := range devices {
		data := s.registry.Create(pd, instance)
		data.Properties = s.driver.GetPhysicalDeviceProperties(pd)
		data.Features = s.driver.GetPhysicalDeviceFeatures(pd)
		data.Memory = s.driver.GetPhysicalDeviceMemoryProperties(pd)
		data.QueueFamilies = append([]vk.QueueFamilyProperties(nil),
			s.driver.GetPhysicalDeviceQueueFamilyProperties(pd)...)

		if err := s.loader.LoadFile(s.settings.Filename, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.debugf("instance %#x tracking %d devices", uint64(instance), len(devices))
	return firstErr
}

// DestroyInstance drops every device registered under the instance and
// returns how many there were.
func (s *Simulator) DestroyInstance(instance vk.Instance) int {
	n := s.registry.RemoveInstance(instance)
	s.debugf("instance %#x released %d devices", uint64(instance), n)
	return n
}

// GetPhysicalDeviceProperties returns the simulated properties, or the
// driver's answer for a device the simulator is not tracking.
func (s *Simulator) GetPhysicalDeviceProperties(device vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	if data, ok := s.registry.Find(device); ok {
		return data.Properties
	}
	return s.driver.GetPhysicalDeviceProperties(device)
}

// GetPhysicalDeviceFeatures returns the simulated feature set, or the
// driver's answer for an untracked device.
func (s *Simulator) GetPhysicalDeviceFeatures(device vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	if data, ok := s.registry.Find(device); ok {
		return data.Features
	}
	return s.driver.GetPhysicalDeviceFeatures(device)
}

// GetPhysicalDeviceMemoryProperties returns the simulated memory
// layout, or the driver's answer for an untracked device.
func (s *Simulator) GetPhysicalDeviceMemoryProperties(device vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	if data, ok := s.registry.Find(device); ok {
		return data.Memory
	}
	return s.driver.GetPhysicalDeviceMemoryProperties(device)
}

// GetPhysicalDeviceQueueFamilyProperties returns a copy of the
// simulated queue family list, or the driver's answer for an untracked
// device.
func (s *Simulator) GetPhysicalDeviceQueueFamilyProperties(device vk.PhysicalDevice) []vk.QueueFamilyProperties {
	if data, ok := s.registry.Find(device); ok {
		return append([]vk.QueueFamilyProperties(nil), data.QueueFamilies...)
	}
	return s.driver.GetPhysicalDeviceQueueFamilyProperties(device)
}

func (s *Simulator) debugf(format string, args ...any) {
	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Category:  log.CategoryDebug,
		Source:    log.SourceSimulator,
		Message:   fmt.Sprintf(format, args...),
		File:      s.settings.Filename,
	})
}
