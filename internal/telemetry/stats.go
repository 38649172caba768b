// Package telemetry summarises simulation generations and writes them out.
package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LiveThreshold is the cell value above which a cell counts as alive.
const LiveThreshold = 0.5

// Stats summarises one generation of the grid.
type Stats struct {
	Tick   uint64  `csv:"tick"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"std_dev"`
	Min    float64 `csv:"min"`
	Max    float64 `csv:"max"`
	Live   float64 `csv:"live_fraction"`
	StepUS int64   `csv:"step_us"`
}

// ComputeStats summarises cells. An empty slice yields zero stats.
func ComputeStats(tick uint64, cells []float64) Stats {
	s := Stats{Tick: tick}
	if len(cells) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(cells, nil)
	s.Min = floats.Min(cells)
	s.Max = floats.Max(cells)

	live := 0
	for _, v := range cells {
		if v > LiveThreshold {
			live++
		}
	}
	s.Live = float64(live) / float64(len(cells))
	return s
}
