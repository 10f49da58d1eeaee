/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colpetto.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(New(""))
	if err != nil || cfg.Seat != "seat0" {
		// A system wide /etc/colpetto/colpetto.toml takes part in the search.
		if _, statErr := os.Stat("/etc/colpetto/colpetto.toml"); statErr == nil {
			t.Skip("system config present")
		}
	}
	require.NoError(t, err)
	assert.Equal(t, "seat0", cfg.Seat)
	assert.Equal(t, BackendUdev, cfg.Backend)
	assert.Empty(t, cfg.Devices)
	assert.Equal(t, libinput.LogError, cfg.Priority())
	assert.False(t, cfg.Log.Native)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend = "path"
devices = ["/dev/input/event3", "/dev/input/event4"]

[log]
level = "debug"
native = true
priority = "info"
`)
	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, BackendPath, cfg.Backend)
	assert.Equal(t, []string{"/dev/input/event3", "/dev/input/event4"}, cfg.Devices)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Native)
	assert.Equal(t, libinput.LogInfo, cfg.Priority())
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `seat = "seat1"`)
	t.Setenv("COLPETTO_SEAT", "seat2")
	t.Setenv("COLPETTO_LOG_PRIORITY", "debug")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "seat2", cfg.Seat)
	assert.Equal(t, libinput.LogDebug, cfg.Priority())
}

func TestInvalidConfig(t *testing.T) {
	tests := map[string]string{
		"backend":  `backend = "evdev"`,
		"priority": "[log]\npriority = \"loud\"",
		"seat":     `seat = ""`,
		"syntax":   `[log`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(New(writeConfig(t, body)))
			assert.Error(t, err)
		})
	}
}
