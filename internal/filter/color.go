package filter

import "github.com/gogpu/imgedit/internal/image"

// Grayscale luminance weights in percent: 0.30 R + 0.59 G + 0.11 B.
const (
	lumR = 30
	lumG = 59
	lumB = 11
)

// ZeroRed returns a copy of src with the red channel of every pixel set to 0.
func ZeroRed(src *image.Buffer) *image.Buffer {
	return src.Map(func(c image.RGB) image.RGB {
		c.R = 0
		return c
	})
}

// Grayscale returns a copy of src where every pixel is replaced by its
// luminance v = floor(0.3r + 0.59g + 0.11b) on all three channels.
//
// The weighted sum is computed in integer percent so the floor is exact:
// white stays 255 and black stays 0.
func Grayscale(src *image.Buffer) *image.Buffer {
	return src.Map(func(c image.RGB) image.RGB {
		v := (int(c.R)*lumR + int(c.G)*lumG + int(c.B)*lumB) / 100
		return image.Gray(uint8(v))
	})
}

// Invert returns a copy of src with every channel replaced by 255 - value.
func Invert(src *image.Buffer) *image.Buffer {
	return src.Map(func(c image.RGB) image.RGB {
		return image.RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}
