// Package image provides the raster buffer and file codecs for imgedit.
//
// A Buffer is an immutable grid of 8-bit RGB pixels. New buffers are produced
// either by a codec (Decode, DecodeBMP) or by filling a Builder and calling
// Build. Nothing mutates a Buffer after construction, so buffers can be kept
// in edit history and shared freely.
package image

import (
	"errors"
	"fmt"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrDataSize is returned when a pixel slice does not hold width*height pixels.
	ErrDataSize = errors.New("image: pixel data does not match dimensions")
)

// bytesPerPixel is the storage size of one RGB pixel.
const bytesPerPixel = 3

// RGB is one 8-bit-per-channel pixel.
type RGB struct {
	R, G, B uint8
}

// Gray returns an RGB with all three channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// String returns the pixel as "(r,g,b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// Buffer is an immutable row-major RGB image.
//
// Thread safety: Buffer has no mutating methods and is safe for concurrent reads.
type Buffer struct {
	data   []byte
	width  int
	height int
}

// New creates a black buffer with the given dimensions.
// Returns ErrInvalidDimensions if width or height is non-positive.
func New(width, height int) (*Buffer, error) {
	b, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// FromPixels creates a buffer from row-major pixels. The slice is copied.
func FromPixels(width, height int, pixels []RGB) (*Buffer, error) {
	b, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: got %d pixels for %dx%d", ErrDataSize, len(pixels), width, height)
	}
	for i, c := range pixels {
		b.setIndex(i, c)
	}
	return b.Build(), nil
}

// Filled creates a buffer with every pixel set to c.
func Filled(width, height int, c RGB) (*Buffer, error) {
	b, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}
	b.Fill(c)
	return b.Build(), nil
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.width * b.height
}

// InBounds reports whether (x, y) addresses a pixel of b.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Buffer) At(x, y int) (RGB, error) {
	if !b.InBounds(x, y) {
		return RGB{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.at(x, y), nil
}

// at reads a pixel without bounds checks. Callers iterate within Bounds.
func (b *Buffer) at(x, y int) RGB {
	i := (y*b.width + x) * bytesPerPixel
	return RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]}
}

// Pixels returns a copy of all pixels in row-major order.
func (b *Buffer) Pixels() []RGB {
	out := make([]RGB, 0, b.Len())
	for i := 0; i < len(b.data); i += bytesPerPixel {
		out = append(out, RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]})
	}
	return out
}

// Equal reports whether b and o have the same dimensions and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Builder assembles the pixels of a new Buffer.
//
// A Builder is single-use: after Build the builder is emptied and further
// calls to Set panic, so the returned Buffer can never change.
type Builder struct {
	data   []byte
	width  int
	height int
}

// NewBuilder creates a builder for a black width x height image.
func NewBuilder(width, height int) (*Builder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Builder{
		data:   make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// Width returns the width of the image being built.
func (b *Builder) Width() int {
	return b.width
}

// Height returns the height of the image being built.
func (b *Builder) Height() int {
	return b.height
}

// Set writes the pixel at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Builder) Set(x, y int, c RGB) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.setIndex(y*b.width+x, c)
	return nil
}

// Fill sets every pixel to c.
func (b *Builder) Fill(c RGB) {
	for i := range b.width * b.height {
		b.setIndex(i, c)
	}
}

func (b *Builder) setIndex(i int, c RGB) {
	off := i * bytesPerPixel
	b.data[off] = c.R
	b.data[off+1] = c.G
	b.data[off+2] = c.B
}

// Build returns the finished Buffer and releases the builder's storage.
func (b *Builder) Build() *Buffer {
	buf := &Buffer{data: b.data, width: b.width, height: b.height}
	b.data = nil
	return buf
}

// Map returns a new buffer of the same size with fn applied to every pixel.
func (b *Buffer) Map(fn func(RGB) RGB) *Buffer {
	out := make([]byte, len(b.data))
	for i := 0; i < len(b.data); i += bytesPerPixel {
		c := fn(RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]})
		out[i] = c.R
		out[i+1] = c.G
		out[i+2] = c.B
	}
	return &Buffer{data: out, width: b.width, height: b.height}
}

// Row returns a copy of the pixels in row y, or nil if y is out of bounds.
func (b *Buffer) Row(y int) []RGB {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]RGB, b.width)
	for x := range b.width {
		row[x] = b.at(x, y)
	}
	return row
}

// Each calls fn for every pixel in row-major order.
func (b *Buffer) Each(fn func(x, y int, c RGB)) {
	for y := range b.height {
		for x := range b.width {
			fn(x, y, b.at(x, y))
		}
	}
}
