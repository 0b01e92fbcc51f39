// Package sheet lays out generated clouds as thumbnails on a single image so a
// batch can be reviewed at a glance.
package sheet

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Sky is the default backdrop; white clouds are invisible on white.
var Sky = color.RGBA{R: 86, G: 140, B: 204, A: 255}

// Layout controls thumbnail size and grid shape.
type Layout struct {
	Thumb   int
	Columns int
	Gap     int
	Back    color.Color
}

// DefaultLayout returns 128px thumbnails, 8 per row.
func DefaultLayout() Layout {
	return Layout{Thumb: 128, Columns: 8, Gap: 4, Back: Sky}
}

// Compose scales every image to a thumbnail and draws it over the backdrop,
// filling rows left to right.
func Compose(images []image.Image, l Layout) *image.RGBA {
	if l.Thumb <= 0 {
		l.Thumb = 1
	}
	if l.Columns <= 0 {
		l.Columns = 1
	}
	cols := l.Columns
	if len(images) < cols {
		cols = len(images)
	}
	rows := (len(images) + l.Columns - 1) / l.Columns
	if cols == 0 {
		cols, rows = 1, 1
	}

	w := cols*l.Thumb + (cols+1)*l.Gap
	h := rows*l.Thumb + (rows+1)*l.Gap
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(l.Back), image.Point{}, draw.Src)

	for i, img := range images {
		col, row := i%l.Columns, i/l.Columns
		x := l.Gap + col*(l.Thumb+l.Gap)
		y := l.Gap + row*(l.Thumb+l.Gap)
		r := image.Rect(x, y, x+l.Thumb, y+l.Thumb)
		draw.CatmullRom.Scale(dst, r, img, img.Bounds(), draw.Over, nil)
	}
	return dst
}

// ComposeFiles loads the images at paths and composes them.
func ComposeFiles(paths []string, l Layout) (*image.RGBA, error) {
	images := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := imgio.Open(p)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", p)
		}
		images = append(images, img)
	}
	return Compose(images, l), nil
}
