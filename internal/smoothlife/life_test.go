package smoothlife

import (
	"errors"
	"math"
	"slices"
	"testing"

	"smoothlife/internal/core"
)

// sequence replays fixed values and then repeats the last one.
type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func assertSeedContained(t *testing.T, g *core.Grid) {
	t.Helper()
	qw, qh := g.W/4, g.H/4
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if x < qw && y < qh {
				if v < 0 || v > 1 {
					t.Fatalf("seeded cell (%d,%d) = %v outside [0,1]", x, y, v)
				}
				continue
			}
			if v != 0 {
				t.Fatalf("cell (%d,%d) = %v outside seed block, expected 0", x, y, v)
			}
		}
	}
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	cases := []struct {
		name          string
		w, h, ra, ri  int
		expectedField string
	}{
		{"zero width", 0, 8, 3, 1, "width"},
		{"negative height", 8, -1, 3, 1, "height"},
		{"zero outer radius", 8, 8, 0, 1, "ra"},
		{"zero inner radius", 8, 8, 2, 0, "ri"},
		{"inner equals outer", 8, 8, 3, 3, "ri"},
		{"inner exceeds outer", 8, 8, 3, 5, "ri"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			life, err := New(tc.w, tc.h, tc.ra, tc.ri)
			if life != nil {
				t.Fatal("no simulation may be returned on a configuration error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error %v does not match ErrInvalidConfig", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tc.expectedField {
				t.Fatalf("error %v, expected field %q", err, tc.expectedField)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Backend = "gpu"
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown backend accepted: %v", err)
	}
}

func TestSeedContainment(t *testing.T) {
	life, err := New(10, 9, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(&sequence{vals: []float64{0.5, 0.999, 0.0, 0.25}})
	g := life.Current()
	assertSeedContained(t, g)

	want := []float64{127.0 / 255, 254.0 / 255, 0, 63.0 / 255}
	got := []float64{g.At(0, 0), g.At(1, 0), g.At(0, 1), g.At(1, 1)}
	if !slices.Equal(want, got) {
		t.Fatalf("seed block = %v, expected %v", got, want)
	}
}

func TestSeedTooSmallForBlock(t *testing.T) {
	life, err := New(3, 7, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(&sequence{vals: []float64{0.9}})
	for i, v := range life.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %v, a 3-wide grid has an empty seed block", i, v)
		}
	}
}

func TestReseedOverwrites(t *testing.T) {
	life, err := New(16, 12, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(&sequence{vals: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}})
	first := slices.Clone(life.Cells())
	assertSeedContained(t, life.Current())

	life.Step()
	life.Step()

	life.Seed(&sequence{vals: []float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.4}})
	second := slices.Clone(life.Cells())
	assertSeedContained(t, life.Current())

	if slices.Equal(first, second) {
		t.Fatal("re-seeding with a different sequence produced the same grid")
	}
	if life.Tick() != 0 {
		t.Fatalf("Tick() = %d after re-seed, expected 0", life.Tick())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 20
	cfg.OuterRadius, cfg.InnerRadius = 5, 1
	cfg.Seed = 99
	life, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	life.Reset(0)
	initial := slices.Clone(life.Cells())
	life.Step()
	life.Reset(0)
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	life.Reset(777)
	explicit := slices.Clone(life.Cells())
	life.Reset(777)
	if !slices.Equal(explicit, life.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, explicit) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestStepBeforeSeed(t *testing.T) {
	life, err := New(6, 6, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	life.Step()
	want := Transition(0, 0)
	for i, v := range life.Cells() {
		if v != want {
			t.Fatalf("cell %d = %v, expected %v", i, v, want)
		}
	}
	if life.Tick() != 1 {
		t.Fatalf("Tick() = %d, expected 1", life.Tick())
	}
}

// referenceStep recomputes one generation straight from the formulas,
// sharing no code with the package.
func referenceStep(cells []float64, w, h, ra, ri int) []float64 {
	ramp := func(x, a float64) float64 { return math.Min(math.Max(x-a+0.5, 0), 1) }
	logistic := func(x, a, alpha float64) float64 { return 1 / (1 + math.Exp(-(x-a)*4/alpha)) }
	mix := func(x, y, m float64) float64 {
		s := logistic(m, 0.5, 0.147)
		return x*(1-s) + y*s
	}
	fra, fri := float64(ra), float64(ri)

	next := make([]float64, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var inner, outer float64
			for dy := -ra; dy <= ra; dy++ {
				for dx := -ra; dx <= ra; dx++ {
					d := math.Sqrt(float64(dx*dx + dy*dy))
					sx := ((x+dx)%w + w) % w
					sy := ((y+dy)%h + h) % h
					v := cells[sy*w+sx]
					inner += v * ramp(-d, -fri)
					outer += v * ramp(-d, -fra) * ramp(d, fri)
				}
			}
			n := outer / (math.Pi * (fra*fra - fri*fri))
			m := inner / (math.Pi * fri * fri)
			lo, hi := mix(0.278, 0.267, m), mix(0.365, 0.445, m)
			next[y*w+x] = logistic(n, lo, 0.028) * (1 - logistic(n, hi, 0.028))
		}
	}
	return next
}

func TestEndToEndSingleStep(t *testing.T) {
	const w, h, ra, ri = 8, 8, 3, 1
	life, err := New(w, h, ra, ri)
	if err != nil {
		t.Fatal(err)
	}
	life.Seed(&sequence{vals: []float64{0.9, 0.7, 0.8, 1.0}})

	seeded := make([]float64, w*h)
	seeded[0] = 229.0 / 255
	seeded[1] = 178.0 / 255
	seeded[w] = 204.0 / 255
	seeded[w+1] = 1
	if !slices.Equal(seeded, life.Cells()) {
		t.Fatalf("seeded grid = %v, expected %v", life.Cells(), seeded)
	}

	life.Step()
	want := referenceStep(seeded, w, h, ra, ri)
	got := life.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("cell (%d,%d) = %v, expected %v", x, y, got[i], want[i])
			}
		}
	}

	// (5,5) is beyond the outer radius of every seeded cell.
	if got[5*w+5] != Transition(0, 0) {
		t.Fatalf("cell (5,5) = %v, expected the empty-neighbourhood value %v", got[5*w+5], Transition(0, 0))
	}
	if got[0] == Transition(0, 0) {
		t.Fatal("cell (0,0) did not see its seeded neighbourhood")
	}
}

func TestBackendsAgreeOverSeveralSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	cfg.OuterRadius, cfg.InnerRadius = 6, 2
	cfg.Seed = 5

	direct, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Backend = BackendFFT
	fft, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Backend = BackendDirect
	cfg.Workers = 4
	parallel, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, l := range []*Life{direct, fft, parallel} {
		l.Reset(0)
		l.Step()
		l.Step()
		l.Step()
	}
	if !slices.Equal(direct.Cells(), parallel.Cells()) {
		t.Fatal("parallel direct backend diverged from serial")
	}
	for i := range direct.Cells() {
		if d := math.Abs(direct.Cells()[i] - fft.Cells()[i]); d > 1e-6 {
			t.Fatalf("cell %d: direct %v vs fft %v", i, direct.Cells()[i], fft.Cells()[i])
		}
	}
}

func TestFromMapAndRegistry(t *testing.T) {
	c := FromMap(map[string]string{"w": "16", "h": "12", "ra": "7", "seed": "5", "backend": "fft", "workers": "bad"})
	if c.Width != 16 || c.Height != 12 || c.OuterRadius != 7 || c.InnerRadius != 2 || c.Seed != 5 {
		t.Fatalf("FromMap = %+v", c)
	}
	if c.Backend != BackendFFT || c.Workers != 1 {
		t.Fatalf("FromMap backend/workers = %q/%d", c.Backend, c.Workers)
	}

	factory, ok := core.Sims()["smoothlife"]
	if !ok {
		t.Fatal("smoothlife not registered")
	}
	sim, err := factory(map[string]string{"w": "20", "h": "10", "ra": "6", "ri": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "smoothlife" || sim.Size() != (core.Size{W: 20, H: 10}) {
		t.Fatalf("factory built %s %+v", sim.Name(), sim.Size())
	}
	life := sim.(*Life)
	if life.Kernel().Ra != 6 || life.Kernel().Ri != 3 {
		t.Fatalf("kernel radii %d/%d", life.Kernel().Ra, life.Kernel().Ri)
	}

	var found bool
	for _, group := range life.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key == "ra" && p.Value == "6" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("parameter snapshot missing ra")
	}
}
