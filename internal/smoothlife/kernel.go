package smoothlife

import "math"

// KernelEntry is one sampled neighbourhood offset and the weights it
// contributes to the inner disk and the outer ring.
type KernelEntry struct {
	DX, DY int
	Inner  float64
	Outer  float64
}

// Kernel is the immutable sampling stencil shared by every cell.
//
// MaxInner and MaxOuter are the analytic areas of the disk and the ring, not
// the sums of the entry weights. The two differ slightly at the antialiased
// edges and callers must not assume they match.
type Kernel struct {
	Ra, Ri   int
	Entries  []KernelEntry
	MaxInner float64
	MaxOuter float64
}

// BuildKernel computes the stencil for outer radius ra and inner radius ri.
// Every offset in [-ra, ra]² is kept, including those whose weights are zero,
// ordered row by row (dy outer, dx inner).
func BuildKernel(ra, ri int) (*Kernel, error) {
	if ra <= 0 {
		return nil, &ConfigError{Field: "ra", Value: ra, Reason: "outer radius must be positive"}
	}
	if ri < 0 || ri >= ra {
		return nil, &ConfigError{Field: "ri", Value: ri, Reason: "inner radius must satisfy 0 <= ri < ra"}
	}

	fra, fri := float64(ra), float64(ri)
	side := 2*ra + 1
	entries := make([]KernelEntry, 0, side*side)
	for dy := -ra; dy <= ra; dy++ {
		for dx := -ra; dx <= ra; dx++ {
			distance := math.Sqrt(float64(dx*dx + dy*dy))
			entries = append(entries, KernelEntry{
				DX:    dx,
				DY:    dy,
				Inner: rampStep(-distance, -fri, 1.0),
				Outer: rampStep(-distance, -fra, 1.0) * rampStep(distance, fri, 1.0),
			})
		}
	}

	return &Kernel{
		Ra:       ra,
		Ri:       ri,
		Entries:  entries,
		MaxInner: math.Pi * fri * fri,
		MaxOuter: math.Pi * (fra*fra - fri*fri),
	}, nil
}

// rampStep is a linear ramp of width ea centred on a, clamped to [0, 1].
func rampStep(x, a, ea float64) float64 {
	return min(max((x-a)/ea+0.5, 0), 1)
}
