package cloud

import (
	"strconv"

	"github.com/pkg/errors"
)

// Params holds the tunable constants that shape a cloud.
type Params struct {
	// Size is the side length of the square raster and of the noise field.
	Size int `yaml:"size"`
	// FluffynessMin is the smallest radius a circle may have.
	FluffynessMin float64 `yaml:"fluffyness_min"`
	// FluffynessMag is the random range added on top of FluffynessMin.
	FluffynessMag float64 `yaml:"fluffyness_mag"`
	// Spread bounds how far circle centers stray from the raster midpoint.
	Spread float64 `yaml:"spread"`
	// Density is the number of circles per cloud.
	Density int `yaml:"density"`
	// TurbulenceScale is the coarsest noise scale summed by Turbulence.
	TurbulenceScale float64 `yaml:"turbulence_scale"`
}

// DefaultParams returns the standard cloud shape.
func DefaultParams() Params {
	return Params{
		Size:            500,
		FluffynessMin:   40,
		FluffynessMag:   100,
		Spread:          100,
		Density:         16,
		TurbulenceScale: 64,
	}
}

// Validate reports the first parameter that cannot produce a cloud.
func (p Params) Validate() error {
	switch {
	case p.Size <= 0:
		return errors.Errorf("size must be positive, got %d", p.Size)
	case p.FluffynessMin <= 0:
		return errors.Errorf("fluffyness_min must be positive, got %g", p.FluffynessMin)
	case p.FluffynessMag < 0:
		return errors.Errorf("fluffyness_mag must not be negative, got %g", p.FluffynessMag)
	case p.Spread < 0:
		return errors.Errorf("spread must not be negative, got %g", p.Spread)
	case p.Density < 0:
		return errors.Errorf("density must not be negative, got %d", p.Density)
	case p.TurbulenceScale < 1:
		return errors.Errorf("turbulence_scale must be at least 1, got %g", p.TurbulenceScale)
	}
	return nil
}

// FromMap applies key=value overrides on top of base. Unknown keys and
// unparsable or out-of-range values are ignored.
func FromMap(base Params, cfg map[string]string) Params {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["fluffyness_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.FluffynessMin = parsed
		}
	}
	if v, ok := cfg["fluffyness_mag"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.FluffynessMag = parsed
		}
	}
	if v, ok := cfg["spread"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Spread = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["turbulence_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.TurbulenceScale = parsed
		}
	}
	return c
}
