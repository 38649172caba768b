package app

import (
	"flag"
	"fmt"

	"smoothlife/internal/config"
)

// Flags represents the command-line parameters for the application. Values
// only override the YAML configuration when the flag was given explicitly.
type Flags struct {
	ConfigPath string

	Width  int
	Height int
	Ra     int
	Ri     int
	Scale  int

	TPS      int
	Seed     int64
	Workers  int
	Backend  string
	MaxTicks int
	Realtime bool

	Palette    string
	StatsEvery int
	OutputDir  string
}

// NewFlags returns Flags whose defaults mirror the embedded configuration.
func NewFlags() *Flags {
	return &Flags{Width: 256, Height: 256, Ra: 12, Scale: 3, TPS: 30, Seed: 42, Backend: "direct", Palette: "grey", StatsEvery: 30}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to config.yaml (empty = use defaults)")
	fs.IntVar(&f.Width, "w", f.Width, "grid width in cells")
	fs.IntVar(&f.Height, "h", f.Height, "grid height in cells")
	fs.IntVar(&f.Ra, "ra", f.Ra, "outer kernel radius")
	fs.IntVar(&f.Ri, "ri", f.Ri, "inner kernel radius (0 = ra/3)")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for simulation reset")
	fs.IntVar(&f.Workers, "workers", f.Workers, "goroutines for the direct backend (0 = GOMAXPROCS)")
	fs.StringVar(&f.Backend, "backend", f.Backend, "step backend: direct or fft")
	fs.IntVar(&f.MaxTicks, "max-ticks", f.MaxTicks, "stop after N ticks (0 = unlimited)")
	fs.BoolVar(&f.Realtime, "realtime", f.Realtime, "pace headless runs at -tps instead of running flat out")
	fs.StringVar(&f.Palette, "palette", f.Palette, "colour palette: grey or hue")
	fs.IntVar(&f.StatsEvery, "stats-every", f.StatsEvery, "ticks between stats records (0 = off)")
	fs.StringVar(&f.OutputDir, "output-dir", f.OutputDir, "directory for stats.csv and config snapshot")
}

// Load reads the configuration file and applies the flags set on fs.
func (f *Flags) Load(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "w":
			cfg.World.Width = f.Width
		case "h":
			cfg.World.Height = f.Height
		case "ra":
			cfg.Kernel.OuterRadius = f.Ra
		case "ri":
			cfg.Kernel.InnerRadius = f.Ri
		case "scale":
			cfg.World.Scale = f.Scale
		case "tps":
			cfg.Run.TPS = f.TPS
		case "seed":
			cfg.Run.Seed = f.Seed
		case "workers":
			cfg.Run.Workers = f.Workers
		case "backend":
			cfg.Run.Backend = f.Backend
		case "max-ticks":
			cfg.Run.MaxTicks = f.MaxTicks
		case "palette":
			cfg.Render.Palette = f.Palette
		case "stats-every":
			cfg.Telemetry.StatsEvery = f.StatsEvery
		case "output-dir":
			cfg.Telemetry.OutputDir = f.OutputDir
		}
	})
	cfg.ComputeDerived()
	return cfg, nil
}
