package cloud

import "cloud-gen/internal/core"

// Snapshot groups the parameters for display.
func (p Params) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Raster",
				Params: []core.Parameter{
					core.IntParam("size", "Raster side length", p.Size),
					core.FloatParam("turbulence_scale", "Coarsest turbulence scale", p.TurbulenceScale),
				},
			},
			{
				Name: "Silhouette",
				Params: []core.Parameter{
					core.IntParam("density", "Circle count", p.Density),
					core.FloatParam("spread", "Center spread", p.Spread),
					core.FloatParam("fluffyness_min", "Circle radius min", p.FluffynessMin),
					core.FloatParam("fluffyness_mag", "Circle radius range", p.FluffynessMag),
				},
			},
		},
	}
}
