/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package config loads the colpetto command configuration using Viper.
//
// Values come from, in increasing priority: defaults, colpetto.toml found
// in /etc/colpetto, $XDG_CONFIG_HOME/colpetto or the working directory,
// COLPETTO_* environment variables (COLPETTO_LOG_LEVEL for log.level) and
// command line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

// Config is the command configuration.
type Config struct {
	Seat    string    `mapstructure:"seat"`
	Backend string    `mapstructure:"backend"` // udev or path
	Devices []string  `mapstructure:"devices"` // device nodes for the path backend
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"` // overrides LOG_LEVEL
	// Native forwards libinput's own messages to the logger.
	Native   bool   `mapstructure:"native"`
	Priority string `mapstructure:"priority"` // debug, info or error
}

const (
	BackendUdev = "udev"
	BackendPath = "path"
)

// DefaultConfig provides the defaults.
var DefaultConfig = Config{
	Seat:    "seat0",
	Backend: BackendUdev,
	Devices: []string{},
	Log: LogConfig{
		Native:   false,
		Priority: "error",
	},
}

// New returns a Viper instance with defaults, search paths and environment
// binding set up. path, when not empty, is the only config file read.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("colpetto")
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("/etc/colpetto")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "colpetto"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("colpetto")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("seat", DefaultConfig.Seat)
	v.SetDefault("backend", DefaultConfig.Backend)
	v.SetDefault("devices", DefaultConfig.Devices)
	v.SetDefault("log.level", DefaultConfig.Log.Level)
	v.SetDefault("log.native", DefaultConfig.Log.Native)
	v.SetDefault("log.priority", DefaultConfig.Log.Priority)
	return v
}

// Load reads the config file if there is one and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{BackendUdev, BackendPath}, c.Backend) {
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Backend == BackendUdev && c.Seat == "" {
		return errors.New("config: udev backend requires a seat")
	}
	if _, err := ParsePriority(c.Log.Priority); err != nil {
		return err
	}
	return nil
}

// Priority returns the configured libinput log priority.
func (c *Config) Priority() libinput.LogPriority {
	p, _ := ParsePriority(c.Log.Priority)
	return p
}

// ParsePriority maps a priority name to a libinput log priority.
func ParsePriority(name string) (libinput.LogPriority, error) {
	switch strings.ToLower(name) {
	case "debug":
		return libinput.LogDebug, nil
	case "info":
		return libinput.LogInfo, nil
	case "", "error":
		return libinput.LogError, nil
	}
	return 0, fmt.Errorf("config: unknown log priority %q", name)
}
