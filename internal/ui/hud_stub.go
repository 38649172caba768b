//go:build !ebiten

package ui

import (
	"smoothlife/internal/core"
	"smoothlife/internal/telemetry"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, telemetry.Stats, float64, bool) {}
