package cloud

import (
	"math"

	rng "cloud-gen/pkg/core"
)

// Circle is one primitive of a cloud silhouette.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircles draws p.Density circles centered around the raster midpoint.
func NewCircles(p Params, r *rng.RNG) []Circle {
	mid := float64(p.Size) / 2
	circles := make([]Circle, p.Density)
	for i := range circles {
		circles[i] = Circle{
			X:      mid + r.Symmetric()*p.Spread,
			Y:      mid + r.Symmetric()*p.Spread,
			Radius: p.FluffynessMin + r.Float64()*p.FluffynessMag,
		}
	}
	return circles
}

// Depth returns how far (x, y) lies inside c; negative outside.
func (c Circle) Depth(x, y float64) float64 {
	return c.Radius - math.Hypot(x-c.X, y-c.Y)
}

// Density returns the deepest penetration of (x, y) into any circle, or 0
// when the point lies outside all of them.
func Density(circles []Circle, x, y float64) float64 {
	var d float64
	for _, c := range circles {
		if v := c.Depth(x, y); v > d {
			d = v
		}
	}
	return d
}
