package cloud

import "image"

// Stats summarizes the alpha channel of a rendered cloud.
type Stats struct {
	Pixels    int
	Visible   int
	MeanAlpha float64
	MaxAlpha  uint8
}

// Coverage is the fraction of pixels with non-zero alpha.
func (s Stats) Coverage() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Visible) / float64(s.Pixels)
}

// Measure scans the alpha channel of img.
func Measure(img *image.NRGBA) Stats {
	var s Stats
	var sum int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := img.Pix[img.PixOffset(x, y)+3]
			s.Pixels++
			sum += int(a)
			if a > 0 {
				s.Visible++
			}
			if a > s.MaxAlpha {
				s.MaxAlpha = a
			}
		}
	}
	if s.Pixels > 0 {
		s.MeanAlpha = float64(sum) / float64(s.Pixels)
	}
	return s
}
