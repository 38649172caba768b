package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smoothlife/internal/config"
	"smoothlife/internal/smoothlife"
	"smoothlife/internal/telemetry"
)

// Runner advances a simulation without a window. It owns the cadence and
// cancellation; the simulation only ever sees Step calls.
type Runner struct {
	sim    *smoothlife.Life
	cfg    *config.Config
	out    *telemetry.OutputManager
	fps    *telemetry.FPSCounter
	logger *slog.Logger

	// Realtime paces steps at cfg.Run.TPS; otherwise steps run back to back.
	Realtime bool
}

// NewRunner builds the simulation described by cfg and opens its output.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	sim, err := smoothlife.NewWithConfig(cfg.Sim())
	if err != nil {
		return nil, err
	}
	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	r := &Runner{sim: sim, cfg: cfg, out: out, logger: logger}
	if cfg.Telemetry.LogFPS {
		r.fps = telemetry.NewFPSCounter(logger)
	}
	return r, nil
}

// Sim exposes the simulation being run.
func (r *Runner) Sim() *smoothlife.Life { return r.sim }

// Run seeds the simulation and steps it until max ticks is reached or ctx
// is cancelled, in which case ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context) error {
	r.sim.Reset(r.cfg.Run.Seed)
	r.logger.Info("starting headless simulation",
		"width", r.cfg.World.Width,
		"height", r.cfg.World.Height,
		"ra", r.sim.Kernel().Ra,
		"ri", r.sim.Kernel().Ri,
		"backend", r.sim.Config().Backend,
		"workers", r.sim.Config().Workers,
		"seed", r.cfg.Run.Seed,
		"max_ticks", r.cfg.Run.MaxTicks,
	)

	var pace <-chan time.Time
	if r.Realtime && r.cfg.Run.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.cfg.Run.TPS))
		defer ticker.Stop()
		pace = ticker.C
	}

	maxTicks := uint64(max(r.cfg.Run.MaxTicks, 0))
	for maxTicks == 0 || r.sim.Tick() < maxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		r.sim.Step()
		elapsed := time.Since(start)
		if r.fps != nil {
			r.fps.Frame()
		}
		if err := r.record(elapsed); err != nil {
			return err
		}
	}

	r.logger.Info("max ticks reached", "tick", r.sim.Tick())
	return nil
}

func (r *Runner) record(elapsed time.Duration) error {
	every := uint64(r.cfg.Telemetry.StatsEvery)
	if every == 0 || r.sim.Tick()%every != 0 {
		return nil
	}
	stats := telemetry.ComputeStats(r.sim.Tick(), r.sim.Cells())
	stats.StepUS = elapsed.Microseconds()
	r.logger.Info("stats",
		"tick", stats.Tick,
		"mean", stats.Mean,
		"std_dev", stats.StdDev,
		"live", stats.Live,
		"step_us", stats.StepUS,
	)
	return r.out.WriteStats(stats)
}

// Close releases the output files.
func (r *Runner) Close() error { return r.out.Close() }
