package cloud

import (
	"image"
	"math"

	"cloud-gen/internal/core"
	rng "cloud-gen/pkg/core"
)

// ProgressFunc is called after each completed raster row.
type ProgressFunc func(row, rows int)

// Cloud bundles everything needed to rasterize one cloud. All random draws
// happen in Generate, so rendering is a pure function of these fields.
type Cloud struct {
	Params  Params
	Field   *core.Grid
	Circles []Circle
}

// Generate draws a fresh noise field and then a fresh circle set from r.
func Generate(p Params, r *rng.RNG) *Cloud {
	field := NewNoiseField(p.Size, r)
	circles := NewCircles(p, r)
	return &Cloud{Params: p, Field: field, Circles: circles}
}

// Render rasterizes the cloud.
func (c *Cloud) Render(progress ProgressFunc) *image.NRGBA {
	return RenderRows(c.Params.Size, c.Circles, c.Field, c.Params.TurbulenceScale, progress)
}

// Render rasterizes a size*size cloud with the default turbulence scale.
func Render(size int, circles []Circle, field *core.Grid) *image.NRGBA {
	return RenderRows(size, circles, field, DefaultParams().TurbulenceScale, nil)
}

// RenderRows rasterizes a size*size cloud row by row, reporting each finished
// row to progress when it is non-nil.
func RenderRows(size int, circles []Circle, field *core.Grid, scale float64, progress ProgressFunc) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		fy := float64(y)
		for x := 0; x < size; x++ {
			fx := float64(x)
			d := Density(circles, fx, fy)
			t := Turbulence(field, fx, fy, scale)
			i := x * 4
			row[i+0] = 255
			row[i+1] = 255
			row[i+2] = 255
			row[i+3] = Alpha(d, t)
		}
		if progress != nil {
			progress(y+1, size)
		}
	}
	return img
}

// Alpha combines density and turbulence into an 8-bit alpha value. Any
// product outside [0, 255], including NaN, is clamped.
func Alpha(density, turbulence float64) uint8 {
	v := (density / 255) * (turbulence / 255) * 255
	return uint8(clamp(v, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
