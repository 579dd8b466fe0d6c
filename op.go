package imgedit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/imgedit/internal/filter"
)

// OpKind identifies a transform.
type OpKind uint8

const (
	// OpZeroRed clears the red channel.
	OpZeroRed OpKind = iota

	// OpGrayscale replaces each pixel by its luminance.
	OpGrayscale

	// OpInvert replaces each channel by 255 - value.
	OpInvert

	// OpMirror copies one half of the image onto the other.
	OpMirror

	// OpRotate turns the image a quarter turn.
	OpRotate

	// OpRepeat tiles the image N times.
	OpRepeat

	// OpZoom resamples the image by Factor.
	OpZoom

	opKindCount
)

var opNames = [opKindCount]string{
	OpZeroRed:   "zero-red",
	OpGrayscale: "grayscale",
	OpInvert:    "invert",
	OpMirror:    "mirror",
	OpRotate:    "rotate",
	OpRepeat:    "repeat",
	OpZoom:      "zoom",
}

// String returns the op name used by ParseOp.
func (k OpKind) String() string {
	if k >= opKindCount {
		return "unknown"
	}
	return opNames[k]
}

// Op is one transform request: a kind plus the parameters that kind reads.
// Build Ops with the constructor functions or ParseOp.
type Op struct {
	Kind OpKind

	// MirrorDir is read by OpMirror.
	MirrorDir MirrorDirection

	// RotateDir is read by OpRotate.
	RotateDir RotateDirection

	// RepeatDir and N are read by OpRepeat.
	RepeatDir RepeatDirection
	N         int

	// Factor is read by OpZoom.
	Factor float64
}

// ZeroRed returns an op that clears the red channel.
func ZeroRed() Op { return Op{Kind: OpZeroRed} }

// Grayscale returns an op that converts to grayscale.
func Grayscale() Op { return Op{Kind: OpGrayscale} }

// Invert returns an op that inverts every channel.
func Invert() Op { return Op{Kind: OpInvert} }

// Mirror returns an op that mirrors along dir.
func Mirror(dir MirrorDirection) Op { return Op{Kind: OpMirror, MirrorDir: dir} }

// Rotate returns an op that rotates a quarter turn in dir.
func Rotate(dir RotateDirection) Op { return Op{Kind: OpRotate, RotateDir: dir} }

// Repeat returns an op that tiles the image n times along dir.
func Repeat(n int, dir RepeatDirection) Op { return Op{Kind: OpRepeat, N: n, RepeatDir: dir} }

// Zoom returns an op that resamples by factor.
func Zoom(factor float64) Op { return Op{Kind: OpZoom, Factor: factor} }

// IsZoom reports whether the op is a zoom, which history records without
// moving the zoom base.
func (o Op) IsZoom() bool {
	return o.Kind == OpZoom
}

// String renders the op in the syntax accepted by ParseOp.
func (o Op) String() string {
	switch o.Kind {
	case OpMirror:
		return "mirror:" + o.MirrorDir.String()
	case OpRotate:
		return "rotate:" + o.RotateDir.String()
	case OpRepeat:
		return fmt.Sprintf("repeat:%d:%s", o.N, o.RepeatDir)
	case OpZoom:
		return "zoom:" + strconv.FormatFloat(o.Factor, 'g', -1, 64)
	default:
		return o.Kind.String()
	}
}

// ParseOp parses a textual op:
//
//	zero-red
//	grayscale
//	invert
//	mirror:vertical | mirror:horizontal
//	rotate:cw | rotate:ccw
//	repeat:N[:horizontal|vertical]   (horizontal when omitted)
//	zoom:F
//
// Names are case-insensitive. Errors wrap ErrInvalidArgument.
func ParseOp(s string) (Op, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), ":")
	name, args := parts[0], parts[1:]

	bad := func(msg string) (Op, error) {
		return Op{}, fmt.Errorf("%w: op %q: %s", ErrInvalidArgument, s, msg)
	}
	want := func(n int) bool { return len(args) == n }

	switch name {
	case "zero-red", "zerored":
		if !want(0) {
			return bad("takes no parameters")
		}
		return ZeroRed(), nil
	case "grayscale", "greyscale":
		if !want(0) {
			return bad("takes no parameters")
		}
		return Grayscale(), nil
	case "invert":
		if !want(0) {
			return bad("takes no parameters")
		}
		return Invert(), nil
	case "mirror":
		if !want(1) {
			return bad("want mirror:vertical or mirror:horizontal")
		}
		switch args[0] {
		case "vertical", "v":
			return Mirror(MirrorVertical), nil
		case "horizontal", "h":
			return Mirror(MirrorHorizontal), nil
		}
		return bad("unknown mirror direction")
	case "rotate":
		if !want(1) {
			return bad("want rotate:cw or rotate:ccw")
		}
		switch args[0] {
		case "cw", "clockwise":
			return Rotate(Clockwise), nil
		case "ccw", "counterclockwise":
			return Rotate(Counterclockwise), nil
		}
		return bad("unknown rotate direction")
	case "repeat":
		if len(args) < 1 || len(args) > 2 {
			return bad("want repeat:N[:horizontal|vertical]")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return bad("count is not an integer")
		}
		if n < 1 {
			return bad("count must be at least 1")
		}
		dir := RepeatHorizontal
		if len(args) == 2 {
			switch args[1] {
			case "horizontal", "h":
			case "vertical", "v":
				dir = RepeatVertical
			default:
				return bad("unknown repeat direction")
			}
		}
		return Repeat(n, dir), nil
	case "zoom":
		if !want(1) {
			return bad("want zoom:F")
		}
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return bad("factor is not a number")
		}
		if !(f > 0) || math.IsInf(f, 0) {
			return bad("factor must be a positive finite number")
		}
		return Zoom(f), nil
	}
	return bad("unknown op")
}

// Transform applies op to src and returns the new buffer; src is unchanged.
// Zoom uses bilinear interpolation.
func Transform(src *Buffer, op Op) (*Buffer, error) {
	return transform(src, op, filter.InterpBilinear)
}

func transform(src *Buffer, op Op, interp filter.Interpolation) (*Buffer, error) {
	if src == nil {
		return nil, ErrNotLoaded
	}
	switch op.Kind {
	case OpZeroRed:
		return filter.ZeroRed(src), nil
	case OpGrayscale:
		return filter.Grayscale(src), nil
	case OpInvert:
		return filter.Invert(src), nil
	case OpMirror:
		return filter.Mirror(src, op.MirrorDir), nil
	case OpRotate:
		return filter.Rotate(src, op.RotateDir), nil
	case OpRepeat:
		return filter.Repeat(src, op.N, op.RepeatDir)
	case OpZoom:
		return filter.ZoomWith(src, op.Factor, interp)
	default:
		return nil, fmt.Errorf("%w: unknown op kind %d", ErrInvalidArgument, op.Kind)
	}
}
