// Package interactive provides a readline shell for exploring profiles
// against simulated devices.
package interactive

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/devsim-project/devsim-go/pkg/devsim"
	"github.com/devsim-project/devsim-go/pkg/log"
	"github.com/devsim-project/devsim-go/pkg/vk"
)

// Session holds the shell state: the simulated driver, the current
// simulator, and the profile it was built with.
type Session struct {
	driver  *devsim.SimDriver
	sim     *devsim.Simulator
	collect *log.CollectLogger
	echo    log.Logger
	profile string
	strict  bool
	out     io.Writer
}

const instance = vk.Instance(1)

// Run starts the interactive shell and blocks until exit.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	count := fs.Int("devices", 2, "number of simulated devices")
	profilePath := fs.String("profile", "", "profile to load at startup")
	verbose := fs.Bool("verbose", false, "echo diagnostics to stderr as they happen")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "devsim> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer rl.Close()

	s := &Session{
		driver: devsim.NewSimDriver(*count),
		out:    rl.Stdout(),
	}
	if *verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		s.echo = log.NewSlogAdapter(slog.New(handler))
	}
	if err := s.reload(*profilePath); err != nil {
		fmt.Fprintf(rl.Stdout(), "Profile not loaded: %v\n", err)
	}

	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return 0
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		cmdArgs := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "devices", "d":
			s.cmdDevices()

		case "show", "s":
			s.cmdShow(cmdArgs)

		case "get", "g":
			s.cmdGet(cmdArgs)

		case "strict":
			s.cmdStrict(cmdArgs)

		case "load", "l":
			s.cmdLoad(cmdArgs)

		case "reset":
			s.cmdLoad(nil)

		case "diag":
			s.cmdDiag()

		case "exit", "quit", "q":
			fmt.Fprintln(s.out, "Exiting...")
			return 0

		default:
			fmt.Fprintf(s.out, "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

// reload builds a fresh simulator over the driver, applying path when
// it is non-empty.
func (s *Session) reload(path string) error {
	if s.sim != nil {
		s.sim.DestroyInstance(instance)
		s.sim.Close()
	}

	s.collect = log.NewCollectLogger()
	s.profile = path

	var logger log.Logger = s.collect
	if s.echo != nil {
		logger = log.NewMultiLogger(s.collect, s.echo)
	}

	sim, err := devsim.NewSimulator(s.driver, devsim.Settings{
		Filename:    path,
		DebugEnable: s.echo != nil,
		ExitOnError: s.strict,
	}, logger)
	if err != nil {
		return err
	}
	s.sim = sim

	if path == "" {
		// Snapshot without a profile; the empty-path diagnostic is
		// expected here, so discard it.
		s.sim.CreateInstance(instance)
		s.collect.Reset()
		return nil
	}
	return s.sim.CreateInstance(instance)
}

func (s *Session) cmdDevices() {
	devices, _ := s.driver.EnumeratePhysicalDevices(instance)
	for _, device := range devices {
		props := s.sim.GetPhysicalDeviceProperties(device)
		fmt.Fprintf(s.out, "  %d: %s (%s)\n", uint64(device), props.DeviceNameString(), props.DeviceType)
	}
	if s.profile != "" {
		fmt.Fprintf(s.out, "profile: %s\n", s.profile)
	} else {
		fmt.Fprintln(s.out, "profile: none")
	}
}

func (s *Session) cmdShow(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: show <device> [properties|features|memory|queues]")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Bad device handle: %s\n", args[0])
		return
	}
	device := vk.PhysicalDevice(id)

	block := "properties"
	if len(args) > 1 {
		block = strings.ToLower(args[1])
	}

	switch block {
	case "properties", "props", "p":
		props := s.sim.GetPhysicalDeviceProperties(device)
		fmt.Fprintf(s.out, "name:    %s\n", props.DeviceNameString())
		fmt.Fprintf(s.out, "type:    %s\n", props.DeviceType)
		fmt.Fprintf(s.out, "api:     %s\n", vk.Version(props.APIVersion))
		fmt.Fprintf(s.out, "vendor:  %#04x  device: %#04x\n", props.VendorID, props.DeviceID)
		fmt.Fprintf(s.out, "maxImageDimension2D:    %d\n", props.Limits.MaxImageDimension2D)
		fmt.Fprintf(s.out, "maxBoundDescriptorSets: %d\n", props.Limits.MaxBoundDescriptorSets)

	case "features", "f":
		features := s.sim.GetPhysicalDeviceFeatures(device)
		fmt.Fprintf(s.out, "geometryShader:     %d\n", features.GeometryShader)
		fmt.Fprintf(s.out, "tessellationShader: %d\n", features.TessellationShader)
		fmt.Fprintf(s.out, "samplerAnisotropy:  %d\n", features.SamplerAnisotropy)
		fmt.Fprintf(s.out, "robustBufferAccess: %d\n", features.RobustBufferAccess)

	case "memory", "m":
		memory := s.sim.GetPhysicalDeviceMemoryProperties(device)
		for i, heap := range memory.Heaps() {
			fmt.Fprintf(s.out, "heap %d: %d MiB (flags %#x)\n", i, heap.Size>>20, heap.Flags)
		}
		for i, mt := range memory.Types() {
			fmt.Fprintf(s.out, "type %d: flags %#x heap %d\n", i, mt.PropertyFlags, mt.HeapIndex)
		}

	case "queues", "q":
		for i, family := range s.sim.GetPhysicalDeviceQueueFamilyProperties(device) {
			fmt.Fprintf(s.out, "family %d: flags %#x count %d timestampBits %d\n",
				i, family.QueueFlags, family.QueueCount, family.TimestampValidBits)
		}

	default:
		fmt.Fprintf(s.out, "Unknown block: %s\n", block)
	}
}

// cmdGet prints one capability field, addressed by a dotted path rooted
// at a block name, e.g. "properties.limits.maxImageDimension2D".
func (s *Session) cmdGet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: get <device> <block.field[.field]>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Bad device handle: %s\n", args[0])
		return
	}
	device := vk.PhysicalDevice(id)

	segments := strings.Split(args[1], ".")
	var block any
	switch segments[0] {
	case "properties":
		v := s.sim.GetPhysicalDeviceProperties(device)
		block = &v
	case "features":
		v := s.sim.GetPhysicalDeviceFeatures(device)
		block = &v
	case "memory":
		v := s.sim.GetPhysicalDeviceMemoryProperties(device)
		block = &v
	default:
		fmt.Fprintf(s.out, "Unknown block: %s (properties, features, memory)\n", segments[0])
		return
	}

	value, ok := lookupField(block, segments[1:])
	if !ok {
		fmt.Fprintf(s.out, "No such field: %s\n", args[1])
		return
	}
	fmt.Fprintf(s.out, "%s = %v\n", args[1], value)
}

// lookupField walks a dotted path through a block's document form.
func lookupField(block any, segments []string) (any, bool) {
	raw, err := json.Marshal(block)
	if err != nil {
		return nil, false
	}
	var node any
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, false
	}
	for _, segment := range segments {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// cmdStrict toggles exit-on-error for subsequent loads. With strict on,
// a profile error terminates the process.
func (s *Session) cmdStrict(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(s.out, "strict is %s\n", onOff(s.strict))
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		s.strict = true
	case "off":
		s.strict = false
	default:
		fmt.Fprintln(s.out, "Usage: strict [on|off]")
		return
	}
	fmt.Fprintf(s.out, "strict %s (takes effect on the next load)\n", onOff(s.strict))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (s *Session) cmdLoad(args []string) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if err := s.reload(path); err != nil {
		fmt.Fprintf(s.out, "Load failed: %v\n", err)
		return
	}
	if path == "" {
		fmt.Fprintln(s.out, "Profile cleared; devices report driver capabilities.")
		return
	}
	fmt.Fprintf(s.out, "Loaded %s (%d warnings)\n", path, s.collect.CountCategory(log.CategoryWarning))
}

func (s *Session) cmdDiag() {
	events := s.collect.Events()
	if len(events) == 0 {
		fmt.Fprintln(s.out, "No diagnostics.")
		return
	}
	for _, event := range events {
		fmt.Fprintf(s.out, "[%s] %s\n", event.Category, event.Message)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  devices             List simulated devices
  show <n> [block]    Show a device's properties, features, memory, or queues
  get <n> <path>      Show one field, e.g. get 1 properties.limits.maxViewports
  load <file>         Apply a profile to all devices
  reset               Drop the profile
  strict [on|off]     Exit on profile errors during load
  diag                Show diagnostics from the last load
  help                Show this help
  exit                Leave the shell`)
}
