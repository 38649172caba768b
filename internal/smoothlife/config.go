package smoothlife

import "strconv"

// Backend selects the execution strategy of a step.
type Backend string

const (
	// BackendDirect samples every kernel offset per cell.
	BackendDirect Backend = "direct"
	// BackendFFT convolves in the frequency domain.
	BackendFFT Backend = "fft"
)

// DefaultOuterRadius is the outer kernel radius used when none is given.
const DefaultOuterRadius = 12

// Config controls the SmoothLife simulation.
type Config struct {
	Width  int
	Height int

	OuterRadius int
	InnerRadius int

	Seed int64

	// Workers bounds the goroutines used by the direct backend.
	Workers int
	Backend Backend
}

// DefaultInnerRadius derives the inner radius from ra.
func DefaultInnerRadius(ra int) int { return ra / 3 }

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      256,
		OuterRadius: DefaultOuterRadius,
		InnerRadius: DefaultInnerRadius(DefaultOuterRadius),
		Seed:        42,
		Workers:     1,
		Backend:     BackendDirect,
	}
}

// Validate reports the first construction parameter that is out of range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	case c.OuterRadius <= 0:
		return &ConfigError{Field: "ra", Value: c.OuterRadius, Reason: "outer radius must be positive"}
	case c.InnerRadius <= 0 || c.InnerRadius >= c.OuterRadius:
		return &ConfigError{Field: "ri", Value: c.InnerRadius, Reason: "inner radius must satisfy 0 < ri < ra"}
	}
	switch c.Backend {
	case BackendDirect, BackendFFT, "":
	default:
		return &ConfigError{Field: "backend", Value: strconv.Quote(string(c.Backend)), Reason: "unknown backend"}
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// When ra is given without ri, ri is derived from ra.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ra"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.OuterRadius = parsed
			c.InnerRadius = DefaultInnerRadius(parsed)
		}
	}
	if v, ok := cfg["ri"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InnerRadius = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["backend"]; ok {
		c.Backend = Backend(v)
	}
	return c
}
