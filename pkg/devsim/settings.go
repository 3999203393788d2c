package devsim

import (
	"os"
	"strconv"
)

// Environment variables read by SettingsFromEnv.
const (
	EnvFilename    = "VK_DEVSIM_FILENAME"
	EnvDebugEnable = "VK_DEVSIM_DEBUG_ENABLE"
	EnvExitOnError = "VK_DEVSIM_EXIT_ON_ERROR"
	EnvLogFilename = "VK_DEVSIM_LOG_FILENAME"
)

// Settings configures a Simulator.
type Settings struct {
	// Filename is the path of the capability profile to apply. Empty
	// means no profile: devices keep their driver capabilities, and
	// instance creation reports a configuration error.
	Filename string

	// DebugEnable forwards debug events to the logger. When false only
	// warnings and errors get through.
	DebugEnable bool

	// ExitOnError terminates the process after the first error event.
	ExitOnError bool

	// LogFilename appends events to a capture file when non-empty.
	LogFilename string
}

// SettingsFromEnv reads the settings from the process environment.
// The boolean variables follow the integer convention: any value that
// parses to a non-zero integer enables them, everything else disables.
func SettingsFromEnv() Settings {
	return Settings{
		Filename:    os.Getenv(EnvFilename),
		DebugEnable: envBool(EnvDebugEnable),
		ExitOnError: envBool(EnvExitOnError),
		LogFilename: os.Getenv(EnvLogFilename),
	}
}

func envBool(key string) bool {
	n, err := strconv.Atoi(os.Getenv(key))
	return err == nil && n != 0
}
