package smoothlife

import "smoothlife/internal/core"

// Parameters describes the configuration for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				core.IntParam("ra", "Outer radius", l.kernel.Ra),
				core.IntParam("ri", "Inner radius", l.kernel.Ri),
				core.IntParam("entries", "Entries", len(l.kernel.Entries)),
			},
		},
		{
			Name: "Transition",
			Params: []core.Parameter{
				core.FloatParam("b1", "Birth low", birthLow),
				core.FloatParam("b2", "Birth high", birthHigh),
				core.FloatParam("d1", "Death low", deathLow),
				core.FloatParam("d2", "Death high", deathHigh),
				core.FloatParam("alpha_n", "Ring width", alphaOuter),
				core.FloatParam("alpha_m", "Disk width", alphaInner),
			},
		},
		{
			Name: "Execution",
			Params: []core.Parameter{
				core.StringParam("backend", "Backend", string(l.cfg.Backend)),
				core.IntParam("workers", "Workers", l.cfg.Workers),
			},
		},
	}}
}
