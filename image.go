package imgedit

import (
	"io"

	"github.com/gogpu/imgedit/internal/filter"
	intImage "github.com/gogpu/imgedit/internal/image"
)

// Buffer is a public alias for the internal image buffer.
// It is an immutable grid of 8-bit RGB pixels addressed by (x, y) from the
// top-left corner.
type Buffer = intImage.Buffer

// RGB is one 8-bit-per-channel pixel.
type RGB = intImage.RGB

// Builder assembles the pixels of a new Buffer.
type Builder = intImage.Builder

// SyntaxError describes a token of a text image that could not be decoded.
type SyntaxError = intImage.SyntaxError

// FileFormat identifies an on-disk image encoding.
type FileFormat = intImage.FileFormat

// File formats.
const (
	// FormatPPM is the plain-text RGB format.
	FormatPPM = intImage.FormatPPM

	// FormatBMP is an uncompressed 24-bit bitmap.
	FormatBMP = intImage.FormatBMP
)

// MirrorDirection selects the reflection axis of a mirror transform.
type MirrorDirection = filter.MirrorDirection

// Mirror directions.
const (
	// MirrorVertical copies the left half onto the right half.
	MirrorVertical = filter.MirrorVertical

	// MirrorHorizontal copies the top half onto the bottom half.
	MirrorHorizontal = filter.MirrorHorizontal
)

// RotateDirection selects the turn direction of a rotate transform.
type RotateDirection = filter.RotateDirection

// Rotate directions.
const (
	// Clockwise rotates a quarter turn clockwise.
	Clockwise = filter.Clockwise

	// Counterclockwise rotates a quarter turn counterclockwise.
	Counterclockwise = filter.Counterclockwise
)

// RepeatDirection selects the tiling axis of a repeat transform.
type RepeatDirection = filter.RepeatDirection

// Repeat directions.
const (
	// RepeatHorizontal tiles copies left to right.
	RepeatHorizontal = filter.RepeatHorizontal

	// RepeatVertical tiles copies top to bottom.
	RepeatVertical = filter.RepeatVertical
)

// Interpolation selects the resampling kernel used for zoom.
type Interpolation = filter.Interpolation

// Zoom interpolation kernels.
const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	InterpBilinear = filter.InterpBilinear

	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest = filter.InterpNearest

	// InterpApproxBilinear is a faster approximation of bilinear.
	InterpApproxBilinear = filter.InterpApproxBilinear

	// InterpCatmullRom performs cubic interpolation.
	InterpCatmullRom = filter.InterpCatmullRom
)

// NewBuffer creates a black width x height buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	return intImage.New(width, height)
}

// NewBufferFromPixels creates a buffer from row-major pixels.
func NewBufferFromPixels(width, height int, pixels []RGB) (*Buffer, error) {
	return intImage.FromPixels(width, height, pixels)
}

// NewBuilder creates a builder for a black width x height image.
func NewBuilder(width, height int) (*Builder, error) {
	return intImage.NewBuilder(width, height)
}

// Decode reads a plain-text RGB image.
func Decode(r io.Reader) (*Buffer, error) {
	return intImage.Decode(r)
}

// Encode writes b as a plain-text RGB image with the "P3" tag.
func Encode(w io.Writer, b *Buffer) error {
	return intImage.Encode(w, b)
}

// LoadImage reads an image file; ".bmp" paths use the bitmap codec and every
// other path the plain-text codec.
func LoadImage(path string) (*Buffer, error) {
	return intImage.Load(path)
}

// SaveImage writes b to path, choosing the codec like LoadImage.
func SaveImage(path string, b *Buffer) error {
	return intImage.Save(path, b, intImage.DefaultTag)
}
