// Package config loads the SmoothLife configuration from embedded YAML
// defaults overlaid with an optional user file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"smoothlife/internal/smoothlife"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Kernel    KernelConfig    `yaml:"kernel"`
	Run       RunConfig       `yaml:"run"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the simulation resolution.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // Window pixels per cell
}

// KernelConfig holds the neighbourhood radii.
type KernelConfig struct {
	OuterRadius int `yaml:"outer_radius"`
	InnerRadius int `yaml:"inner_radius"` // 0 = outer_radius / 3
}

// RunConfig holds scheduling and execution settings.
type RunConfig struct {
	TPS      int    `yaml:"tps"`
	Seed     int64  `yaml:"seed"`
	MaxTicks int    `yaml:"max_ticks"` // 0 = unlimited
	Workers  int    `yaml:"workers"`   // 0 = GOMAXPROCS
	Backend  string `yaml:"backend"`   // direct | fft
}

// RenderConfig selects how cell values become colours.
type RenderConfig struct {
	Palette string `yaml:"palette"` // grey | hue
}

// TelemetryConfig controls stats logging and CSV output.
type TelemetryConfig struct {
	StatsEvery int    `yaml:"stats_every"` // Ticks between stats records; 0 disables
	LogFPS     bool   `yaml:"log_fps"`
	OutputDir  string `yaml:"output_dir"` // Empty disables file output
}

// DerivedConfig holds values resolved from the raw settings.
type DerivedConfig struct {
	InnerRadius int
	Workers     int
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()
	return cfg, nil
}

// ComputeDerived resolves defaults that depend on other fields. Call it
// again after changing the raw values.
func (c *Config) ComputeDerived() {
	c.Derived.InnerRadius = c.Kernel.InnerRadius
	if c.Derived.InnerRadius == 0 {
		c.Derived.InnerRadius = smoothlife.DefaultInnerRadius(c.Kernel.OuterRadius)
	}
	c.Derived.Workers = c.Run.Workers
	if c.Derived.Workers <= 0 {
		c.Derived.Workers = runtime.GOMAXPROCS(0)
	}
}

// Sim converts the configuration into simulation parameters.
func (c *Config) Sim() smoothlife.Config {
	return smoothlife.Config{
		Width:       c.World.Width,
		Height:      c.World.Height,
		OuterRadius: c.Kernel.OuterRadius,
		InnerRadius: c.Derived.InnerRadius,
		Seed:        c.Run.Seed,
		Workers:     c.Derived.Workers,
		Backend:     smoothlife.Backend(c.Run.Backend),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
