//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CloudPainter uploads a cloud raster, composited over a backdrop, into a
// single ebiten image.
type CloudPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCloudPainter allocates a painter for a w*h raster.
func NewCloudPainter(w, h int) *CloudPainter {
	cp := &CloudPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Upload replaces the painter image with src drawn over back.
func (cp *CloudPainter) Upload(src *image.NRGBA, back color.RGBA) {
	if src.Bounds().Dx() != cp.w || src.Bounds().Dy() != cp.h {
		return
	}
	fillOverRGBA(cp.buf, src, back)
	cp.img.WritePixels(cp.buf)
}

// Blit draws the last uploaded raster onto dst.
func (cp *CloudPainter) Blit(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CloudPainter) Size() (int, int) { return cp.w, cp.h }
