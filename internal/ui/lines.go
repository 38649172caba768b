// Package ui draws the parameter and statistics panel beside the grid.
package ui

import (
	"fmt"

	"smoothlife/internal/core"
	"smoothlife/internal/telemetry"
)

// PanelWidth is the width in pixels of the HUD panel.
const PanelWidth = 200

// Lines formats the panel text: live status first, then every parameter
// group of the snapshot.
func Lines(snapshot core.ParameterSnapshot, stats telemetry.Stats, tps float64, paused bool) []string {
	status := "running"
	if paused {
		status = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  %.1f tps", status, tps),
		fmt.Sprintf("tick   %d", stats.Tick),
		fmt.Sprintf("mean   %.4f", stats.Mean),
		fmt.Sprintf("stddev %.4f", stats.StdDev),
		fmt.Sprintf("live   %.2f%%", stats.Live*100),
	}
	for _, group := range snapshot.Groups {
		lines = append(lines, "", "["+group.Name+"]")
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%-12s %s", p.Label, p.Value))
		}
	}
	return lines
}
