package devsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(EnvFilename, "")
		t.Setenv(EnvDebugEnable, "")
		t.Setenv(EnvExitOnError, "")
		t.Setenv(EnvLogFilename, "")

		assert.Equal(t, Settings{}, SettingsFromEnv())
	})

	t.Run("AllSet", func(t *testing.T) {
		t.Setenv(EnvFilename, "/tmp/profile.json")
		t.Setenv(EnvDebugEnable, "1")
		t.Setenv(EnvExitOnError, "2")
		t.Setenv(EnvLogFilename, "/tmp/events.cbor")

		assert.Equal(t, Settings{
			Filename:    "/tmp/profile.json",
			DebugEnable: true,
			ExitOnError: true,
			LogFilename: "/tmp/events.cbor",
		}, SettingsFromEnv())
	})

	t.Run("BooleanEncoding", func(t *testing.T) {
		tests := []struct {
			value string
			want  bool
		}{
			{"0", false},
			{"1", true},
			{"-1", true},
			{"true", false},
			{"yes", false},
			{"", false},
		}
		for _, tc := range tests {
			t.Setenv(EnvDebugEnable, tc.value)
			assert.Equal(t, tc.want, SettingsFromEnv().DebugEnable, "value %q", tc.value)
		}
	})
}
