//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"smoothlife/internal/config"
	"smoothlife/internal/core"
	"smoothlife/internal/render"
	"smoothlife/internal/smoothlife"
	"smoothlife/internal/telemetry"
	"smoothlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// UITPS is the rate at which ebiten calls Update. Simulation steps are paced
// separately by a FixedStep so input stays responsive at low step rates.
const UITPS = 60

// Game adapts the simulation to the ebiten.Game interface. Update issues at
// most one Step per call, when the FixedStep says one is due.
type Game struct {
	sim     *smoothlife.Life
	timer   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	fps     *telemetry.FPSCounter
	logger  *slog.Logger

	statsEvery uint64
	stats      telemetry.Stats

	tps      int
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *smoothlife.Life, cfg *config.Config, logger *slog.Logger) (*Game, error) {
	palette, err := render.Palette(cfg.Render.Palette)
	if err != nil {
		return nil, err
	}
	size := sim.Size()
	g := &Game{
		sim:        sim,
		timer:      core.NewFixedStep(cfg.Run.TPS),
		tps:        cfg.Run.TPS,
		painter:    render.NewGridPainter(size.W, size.H, palette),
		hud:        ui.NewHUD(sim, ui.PanelWidth),
		logger:     logger,
		statsEvery: uint64(max(cfg.Telemetry.StatsEvery, 0)),
		scale:      max(cfg.World.Scale, 1),
		seed:       cfg.Run.Seed,
	}
	if cfg.Telemetry.LogFPS {
		g.fps = telemetry.NewFPSCounter(logger)
	}
	g.Reset(g.seed)
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.stats = telemetry.ComputeStats(0, g.sim.Cells())
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps + 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps - 5)
	}

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		start := time.Now()
		g.sim.Step()
		elapsed := time.Since(start)
		g.tickOnce = false
		if g.fps != nil {
			g.fps.Frame()
		}
		if g.statsEvery > 0 && g.sim.Tick()%g.statsEvery == 0 {
			g.stats = telemetry.ComputeStats(g.sim.Tick(), g.sim.Cells())
			g.stats.StepUS = elapsed.Microseconds()
			g.logger.Debug("stats", "tick", g.stats.Tick, "mean", g.stats.Mean, "live", g.stats.Live)
		}
	}
	return nil
}

func (g *Game) setTPS(tps int) {
	g.tps = min(max(tps, 1), UITPS)
	g.timer.SetTPS(g.tps)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	if g.hud != nil {
		s := g.sim.Size()
		g.hud.Draw(screen, s.W*g.scale, g.stats, float64(g.tps), g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
