//go:build ebiten

package ui

import (
	"image/color"

	"smoothlife/internal/core"
	"smoothlife/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

var (
	panelColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width}
}

// Draw paints the panel at horizontal offset x.
func (h *HUD) Draw(screen *ebiten.Image, x int, stats telemetry.Stats, tps float64, paused bool) {
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	var snapshot core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snapshot = provider.Parameters()
	}
	for i, line := range Lines(snapshot, stats, tps, paused) {
		y := (i + 1) * lineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, 6, y, textColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	screen.DrawImage(h.panel, op)
}
