package smoothlife

import (
	"sync"

	"smoothlife/internal/core"
)

// Stepper computes one generation from src into dst. Implementations read
// only from src and write only to dst.
type Stepper interface {
	Step(src, dst *core.Grid)
}

// minRowsPerWorker keeps bands large enough that goroutine setup stays small
// next to the convolution itself.
const minRowsPerWorker = 4

// DirectStepper evaluates the kernel cell by cell. With more than one worker
// the rows are split into contiguous bands computed concurrently; every cell
// uses the same summation order, so the output does not depend on the
// worker count.
type DirectStepper struct {
	kernel  *Kernel
	workers int
}

// NewDirectStepper returns a stepper for k using up to workers goroutines.
func NewDirectStepper(k *Kernel, workers int) *DirectStepper {
	if workers < 1 {
		workers = 1
	}
	return &DirectStepper{kernel: k, workers: workers}
}

// Step advances src by one generation into dst.
func (s *DirectStepper) Step(src, dst *core.Grid) {
	checkGrids(src, dst)
	h := src.H
	workers := min(s.workers, h/minRowsPerWorker)
	if workers <= 1 {
		s.stepRows(src, dst, 0, h)
		return
	}

	band := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			s.stepRows(src, dst, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// stepRows fills dst rows [y0, y1).
func (s *DirectStepper) stepRows(src, dst *core.Grid, y0, y1 int) {
	w, h := src.W, src.H
	cells := src.Cells()
	out := dst.Cells()
	entries := s.kernel.Entries
	maxInner, maxOuter := s.kernel.MaxInner, s.kernel.MaxOuter

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			var inner, outer float64
			for _, e := range entries {
				nx := wrap(x+e.DX, w)
				ny := wrap(y+e.DY, h)
				v := cells[ny*w+nx]
				outer += v * e.Outer
				inner += v * e.Inner
			}
			out[y*w+x] = Transition(outer/maxOuter, inner/maxInner)
		}
	}
}

// wrap maps i onto [0, n) for any integer i, including offsets larger than n.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func checkGrids(src, dst *core.Grid) {
	if src == nil || dst == nil {
		invariant("nil grid")
	}
	if src == dst {
		invariant("step would read and write the same grid")
	}
	if !src.SameShape(dst) {
		invariant("grid shapes differ: %dx%d vs %dx%d", src.W, src.H, dst.W, dst.H)
	}
}
