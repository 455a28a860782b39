package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// AverageColor returns the mean color of img as a CSS hex string
// ("#rrggbb", lowercase).
//
// Every pixel contributes equally and alpha is ignored. The result is
// meant for a background-color placeholder shown while the real image
// loads; it does not try to be perceptually dominant, just cheap and
// stable.
func AverageColor(img image.Image) string {
	bounds := img.Bounds()

	var r, g, b uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
		}
	}

	n := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if n == 0 {
		return "#000000"
	}

	// Components are 16-bit; colorful wants [0,1].
	c := colorful.Color{
		R: float64(r/n) / 65535.0,
		G: float64(g/n) / 65535.0,
		B: float64(b/n) / 65535.0,
	}
	return c.Hex()
}
