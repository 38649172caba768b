package smoothlife

import "smoothlife/internal/core"

// Buffer owns two equally sized grids and tracks which one is current.
// Swapping flips an index; storage is allocated once.
type Buffer struct {
	grids  [2]*core.Grid
	active int
}

// NewBuffer allocates both grids.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{grids: [2]*core.Grid{core.NewGrid(w, h), core.NewGrid(w, h)}}
}

// Active returns the readable grid.
func (b *Buffer) Active() *core.Grid { return b.grids[b.active] }

// Inactive returns the write target of the next step.
func (b *Buffer) Inactive() *core.Grid { return b.grids[1-b.active] }

// Swap exchanges the active and inactive roles.
func (b *Buffer) Swap() { b.active = 1 - b.active }

// Advance runs s from the active grid into the inactive one, then swaps.
func (b *Buffer) Advance(s Stepper) {
	s.Step(b.Active(), b.Inactive())
	b.Swap()
}
