// Package config holds the riskpath command configuration: YAML file,
// environment overrides and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/gridgraph"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all riskpath settings.
type Config struct {
	// Tiles is the tile factor along each axis of the full map.
	Tiles int `yaml:"tiles"`

	// Algorithm selects the search strategy: linear or heap.
	Algorithm string `yaml:"algorithm"`

	// ProgressEvery logs search progress every N rounds; 0 disables it.
	ProgressEvery int `yaml:"progress_every"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Tiles:         gridgraph.DefaultTiles,
		Algorithm:     dijkstra.SelectLinearScan.String(),
		ProgressEvery: 1000,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file on top of DefaultConfig.
// An empty path yields the defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies RISKPATH_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("RISKPATH_TILES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: RISKPATH_TILES=%q", ErrInvalid, v)
		}
		c.Tiles = n
	}
	if v := os.Getenv("RISKPATH_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("RISKPATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Tiles < 1 {
		return fmt.Errorf("%w: tiles=%d, must be at least 1", ErrInvalid, c.Tiles)
	}
	if _, err := c.Selection(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every=%d, must not be negative", ErrInvalid, c.ProgressEvery)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format=%q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// Selection returns the search strategy named by Algorithm.
func (c *Config) Selection() (dijkstra.Selection, error) {
	return dijkstra.ParseSelection(c.Algorithm)
}

// ZapLevel parses Level into a zap level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}
