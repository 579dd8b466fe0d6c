package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/imgedit/internal/image"
)

// ErrInvalidArgument is returned when a transform parameter is out of range.
var ErrInvalidArgument = errors.New("filter: invalid argument")

// MirrorDirection selects the reflection axis of Mirror.
type MirrorDirection uint8

const (
	// MirrorVertical reflects the left half onto the right half across the
	// vertical center line.
	MirrorVertical MirrorDirection = iota

	// MirrorHorizontal reflects the top half onto the bottom half across the
	// horizontal center line.
	MirrorHorizontal
)

// String returns a string representation of the mirror direction.
func (d MirrorDirection) String() string {
	switch d {
	case MirrorVertical:
		return "vertical"
	case MirrorHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// RotateDirection selects the turn direction of Rotate.
type RotateDirection uint8

const (
	// Clockwise rotates a quarter turn clockwise.
	Clockwise RotateDirection = iota

	// Counterclockwise rotates a quarter turn counterclockwise.
	Counterclockwise
)

// String returns a string representation of the rotate direction.
func (d RotateDirection) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case Counterclockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// RepeatDirection selects the tiling axis of Repeat.
type RepeatDirection uint8

const (
	// RepeatHorizontal tiles copies left to right.
	RepeatHorizontal RepeatDirection = iota

	// RepeatVertical tiles copies top to bottom.
	RepeatVertical
)

// String returns a string representation of the repeat direction.
func (d RepeatDirection) String() string {
	switch d {
	case RepeatHorizontal:
		return "horizontal"
	case RepeatVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Mirror copies the left (MirrorVertical) or top (MirrorHorizontal) half of
// src onto both halves of a same-sized output.
//
// Only the first half of the input is read. For an odd width (or height) the
// center column (row) is never written and stays black, so Mirror is not a
// true flip: applying it twice reproduces the first result, not src.
func Mirror(src *image.Buffer, dir MirrorDirection) *image.Buffer {
	w, h := src.Bounds()
	b, _ := image.NewBuilder(w, h)

	if dir == MirrorVertical {
		for y := range h {
			for x := range w / 2 {
				c, _ := src.At(x, y)
				_ = b.Set(x, y, c)
				_ = b.Set(w-1-x, y, c)
			}
		}
	} else {
		for y := range h / 2 {
			for x := range w {
				c, _ := src.At(x, y)
				_ = b.Set(x, y, c)
				_ = b.Set(x, h-1-y, c)
			}
		}
	}
	return b.Build()
}

// Rotate turns src a quarter turn. The output has width and height swapped.
//
//	Clockwise:        out[h-1-y, x] = in[x, y]
//	Counterclockwise: out[y, w-1-x] = in[x, y]
func Rotate(src *image.Buffer, dir RotateDirection) *image.Buffer {
	w, h := src.Bounds()
	b, _ := image.NewBuilder(h, w)

	src.Each(func(x, y int, c image.RGB) {
		if dir == Clockwise {
			_ = b.Set(h-1-y, x, c)
		} else {
			_ = b.Set(y, w-1-x, c)
		}
	})
	return b.Build()
}

// Repeat tiles src n times along dir. Horizontal output is (w*n) x h,
// vertical output is w x (h*n). Each tile equals src exactly.
// Returns ErrInvalidArgument if n < 1.
func Repeat(src *image.Buffer, n int, dir RepeatDirection) (*image.Buffer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: repeat count %d < 1", ErrInvalidArgument, n)
	}
	w, h := src.Bounds()

	ow, oh := w*n, h
	if dir == RepeatVertical {
		ow, oh = w, h*n
	}
	b, err := image.NewBuilder(ow, oh)
	if err != nil {
		return nil, fmt.Errorf("%w: repeat %d: %w", ErrInvalidArgument, n, err)
	}

	for i := range n {
		src.Each(func(x, y int, c image.RGB) {
			if dir == RepeatHorizontal {
				_ = b.Set(x+i*w, y, c)
			} else {
				_ = b.Set(x, y+i*h, c)
			}
		})
	}
	return b.Build(), nil
}
