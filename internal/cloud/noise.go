package cloud

import (
	"math"

	"cloud-gen/internal/core"
	rng "cloud-gen/pkg/core"
)

// NewNoiseField returns a size*size grid of independent uniform values in [0, 1).
func NewNoiseField(size int, r *rng.RNG) *core.Grid {
	field := core.NewGrid(size, size)
	r.Fill(field.Values())
	return field
}

// Sample bilinearly interpolates the field at a fractional coordinate. The
// four cells used are the one containing the point and its predecessors on
// each axis, all addressed modulo the field size.
func Sample(field *core.Grid, x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	tx, ty := x-fx, y-fy

	x1, y1 := field.Wrap(int(fx), int(fy))
	x2, y2 := field.Wrap(x1-1, y1-1)

	v := tx * ty * field.At(x1, y1)
	v += (1 - tx) * ty * field.At(x2, y1)
	v += tx * (1 - ty) * field.At(x1, y2)
	v += (1 - tx) * (1 - ty) * field.At(x2, y2)
	return v
}

// Turbulence sums samples over halving scales, weighting each by its scale,
// and normalizes the result by 128/initialScale.
func Turbulence(field *core.Grid, x, y, initialScale float64) float64 {
	var v float64
	for scale := initialScale; scale >= 1; scale /= 2 {
		v += Sample(field, x/scale, y/scale) * scale
	}
	return 128 * v / initialScale
}
