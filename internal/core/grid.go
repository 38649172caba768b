package core

// Grid stores a 2D grid of scalar cell values in row-major order. Both axes
// wrap, so any integer coordinate addresses a cell.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at (x, y) after wrapping.
func (g *Grid) At(x, y int) float64 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y) after wrapping.
func (g *Grid) Set(x, y int, v float64) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// SameShape reports whether o has the same dimensions as g.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	clear(g.data)
}
