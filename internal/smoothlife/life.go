package smoothlife

import (
	"math"

	"smoothlife/internal/core"
)

// seedLevels quantises seeded values to the 8-bit grey range a display
// would show.
const seedLevels = 255

// Life is the SmoothLife driver. It owns the kernel, the stepper and the
// double buffer; only Seed, Reset and Step write to the grids.
type Life struct {
	cfg     Config
	kernel  *Kernel
	stepper Stepper
	buf     *Buffer
	tick    uint64
}

// New returns a simulation of the given size and kernel radii using the
// direct backend on a single goroutine.
func New(w, h, ra, ri int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.OuterRadius = ra
	cfg.InnerRadius = ri
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and allocates the simulation. Nothing is
// allocated when the configuration is rejected.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendDirect
	}
	kernel, err := BuildKernel(cfg.OuterRadius, cfg.InnerRadius)
	if err != nil {
		return nil, err
	}

	var stepper Stepper
	switch cfg.Backend {
	case BackendFFT:
		stepper = NewFFTStepper(kernel, cfg.Width, cfg.Height)
	default:
		stepper = NewDirectStepper(kernel, cfg.Workers)
	}

	return &Life{
		cfg:     cfg,
		kernel:  kernel,
		stepper: stepper,
		buf:     NewBuffer(cfg.Width, cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "smoothlife" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Kernel exposes the sampling stencil.
func (l *Life) Kernel() *Kernel { return l.kernel }

// Current returns the active grid. It must not be modified.
func (l *Life) Current() *core.Grid { return l.buf.Active() }

// Cells exposes the active grid values in row-major order.
func (l *Life) Cells() []float64 { return l.buf.Active().Cells() }

// Tick reports the number of generations computed since the last seed.
func (l *Life) Tick() uint64 { return l.tick }

// Reset seeds the grid from a deterministic RNG. A zero seed falls back to
// the configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.Seed(core.NewRNG(seed))
}

// Seed clears the active grid and fills its top-left quarter-size block with
// random grey levels drawn from src, row by row.
func (l *Life) Seed(src core.Float64Source) {
	g := l.buf.Active()
	g.Clear()
	cells := g.Cells()
	qw, qh := g.W/4, g.H/4
	for y := 0; y < qh; y++ {
		for x := 0; x < qw; x++ {
			cells[g.Index(x, y)] = math.Floor(src.Float64()*seedLevels) / seedLevels
		}
	}
	l.tick = 0
}

// Step advances the simulation by exactly one generation.
func (l *Life) Step() {
	l.buf.Advance(l.stepper)
	l.tick++
}

func init() {
	core.Register("smoothlife", func(cfg map[string]string) (core.Sim, error) {
		life, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return life, nil
	})
}
