// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the percolation-stats command:
// grid size, trial count, seed and log level. Values come from DefaultConfig,
// optionally overlaid by a YAML file, then by command-line input.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Validate.
var (
	ErrGridSize = errors.New("config: grid_size must be >= 1")
	ErrTrials   = errors.New("config: trials must be >= 1")
	ErrLogLevel = errors.New("config: log_level must be one of debug, info, warn, error")
)

// Config is the full run configuration.
type Config struct {
	GridSize int    `yaml:"grid_size"`
	Trials   int    `yaml:"trials"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the defaults. GridSize and Trials are left at zero and
// must be supplied by a file or the command line.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// LoadFile reads path and overlays it on DefaultConfig. Unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.GridSize < 1 {
		return ErrGridSize
	}
	if c.Trials < 1 {
		return ErrTrials
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level for c.LogLevel, defaulting to warn when unset.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
// The empty string means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrLogLevel, s)
	}
}
