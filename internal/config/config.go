// Package config holds the engine configuration: ayanamsa and house
// conventions, the default divisional-chart set, dasha horizon and
// logging. Values load from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"jyotish/internal/varga"
)

// Config holds all jyotish configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Chart     ChartConfig     `yaml:"chart"`
	Dasha     DashaConfig     `yaml:"dasha"`
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ChartConfig sets the computation conventions.
type ChartConfig struct {
	Ayanamsa      string `yaml:"ayanamsa"`       // lahiri
	HouseSystem   string `yaml:"house_system"`   // whole_sign
	DefaultVargas []int  `yaml:"default_vargas"` // harmonics computed when none requested
}

// DashaConfig bounds the Vimshottari tree.
type DashaConfig struct {
	Depth int `yaml:"depth"` // 1 maha, 2 antar, 3 pratyantar
}

// EphemerisConfig selects the position source.
type EphemerisConfig struct {
	SnapshotPath string `yaml:"snapshot_path"` // YAML snapshot file, if any
	CachePath    string `yaml:"cache_path"`    // sqlite cache, empty disables
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "jyotish",
		Version: "1.0.0",

		Chart: ChartConfig{
			Ayanamsa:      "lahiri",
			HouseSystem:   "whole_sign",
			DefaultVargas: []int{1, 9, 10},
		},

		Dasha: DashaConfig{
			Depth: 3,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JYOTISH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("JYOTISH_SNAPSHOT"); v != "" {
		c.Ephemeris.SnapshotPath = v
	}
	if v := os.Getenv("JYOTISH_CACHE"); v != "" {
		c.Ephemeris.CachePath = v
	}
	if v := os.Getenv("JYOTISH_DASHA_DEPTH"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			c.Dasha.Depth = d
		}
	}
}

// Validate checks invariants the engine depends on.
func (c *Config) Validate() error {
	if c.Chart.Ayanamsa != "lahiri" {
		return fmt.Errorf("unsupported ayanamsa %q", c.Chart.Ayanamsa)
	}
	if c.Chart.HouseSystem != "whole_sign" {
		return fmt.Errorf("unsupported house system %q", c.Chart.HouseSystem)
	}
	for _, n := range c.Chart.DefaultVargas {
		if !varga.IsSupported(n) {
			return fmt.Errorf("unsupported varga D%d in default set", n)
		}
	}
	if c.Dasha.Depth < 1 || c.Dasha.Depth > 3 {
		return fmt.Errorf("dasha depth %d out of range 1..3", c.Dasha.Depth)
	}
	return nil
}
