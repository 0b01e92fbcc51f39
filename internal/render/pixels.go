package render

import (
	"image"
	"image/color"
)

// fillOverRGBA composites src over an opaque background color and writes the
// result into buf as RGBA bytes. buf must hold 4 bytes per src pixel.
func fillOverRGBA(buf []byte, src *image.NRGBA, back color.RGBA) {
	b := src.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			a := uint32(row[i+3])
			base := (y*w + x) * 4
			buf[base+0] = over(row[i+0], back.R, a)
			buf[base+1] = over(row[i+1], back.G, a)
			buf[base+2] = over(row[i+2], back.B, a)
			buf[base+3] = 255
		}
	}
}

func over(src, dst uint8, a uint32) uint8 {
	return uint8((uint32(src)*a + uint32(dst)*(255-a) + 127) / 255)
}
