package filter

import (
	"fmt"
	stdimage "image"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/imgedit/internal/image"
)

// Interpolation selects the resampling kernel used by ZoomWith.
type Interpolation uint8

const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// This is the kernel used by Zoom.
	InterpBilinear Interpolation = iota

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest

	// InterpApproxBilinear is a faster bilinear approximation that samples
	// fewer source pixels when shrinking.
	InterpApproxBilinear

	// InterpCatmullRom performs cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpCatmullRom
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpBilinear:
		return "bilinear"
	case InterpNearest:
		return "nearest"
	case InterpApproxBilinear:
		return "approx-bilinear"
	case InterpCatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// ParseInterpolation converts a kernel name (as returned by String) to an
// Interpolation. Matching is case-insensitive.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilinear", "":
		return InterpBilinear, nil
	case "nearest":
		return InterpNearest, nil
	case "approx-bilinear":
		return InterpApproxBilinear, nil
	case "catmull-rom":
		return InterpCatmullRom, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidArgument, s)
	}
}

func (m Interpolation) scaler() xdraw.Scaler {
	switch m {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpApproxBilinear:
		return xdraw.ApproxBiLinear
	case InterpCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// ZoomSize returns the output dimensions of zooming a w x h image by factor:
// round(w*factor) x round(h*factor).
// Returns ErrInvalidArgument if factor is not a positive finite number or
// either dimension rounds to zero.
func ZoomSize(w, h int, factor float64) (int, int, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return 0, 0, fmt.Errorf("%w: zoom factor %v must be positive", ErrInvalidArgument, factor)
	}
	zw := math.Round(float64(w) * factor)
	zh := math.Round(float64(h) * factor)
	if zw < 1 || zh < 1 {
		return 0, 0, fmt.Errorf("%w: zoom factor %v shrinks %dx%d to nothing", ErrInvalidArgument, factor, w, h)
	}
	if zw > math.MaxInt32 || zh > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: zoom factor %v is too large for %dx%d", ErrInvalidArgument, factor, w, h)
	}
	return int(zw), int(zh), nil
}

// Zoom resamples src by factor with bilinear interpolation.
// A factor of exactly 1 returns an identical copy.
func Zoom(src *image.Buffer, factor float64) (*image.Buffer, error) {
	return ZoomWith(src, factor, InterpBilinear)
}

// ZoomWith resamples src by factor using the given kernel.
func ZoomWith(src *image.Buffer, factor float64, mode Interpolation) (*image.Buffer, error) {
	w, h := src.Bounds()
	zw, zh, err := ZoomSize(w, h, factor)
	if err != nil {
		return nil, err
	}
	if zw == w && zh == h {
		return src.Map(func(c image.RGB) image.RGB { return c }), nil
	}

	in := src.ToStdImage()
	out := stdimage.NewNRGBA(stdimage.Rect(0, 0, zw, zh))
	mode.scaler().Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Src, nil)
	return image.FromStdImage(out)
}
