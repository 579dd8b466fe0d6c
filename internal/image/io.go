package image

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Load reads an image from the given file path, picking the codec from the
// file extension (see FormatForPath).
//
// A missing or unreadable file is reported as ErrIO; undecodable content as
// ErrMalformedInput.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	switch FormatForPath(path) {
	case FormatBMP:
		return DecodeBMP(f)
	default:
		return Decode(f)
	}
}

// Save writes b to path using the codec chosen by FormatForPath. Text output
// uses the given tag (DefaultTag when empty).
//
// The data is written to a temporary file in the same directory and renamed
// over path only after a successful write, so a failed save leaves any
// existing file untouched.
func Save(path string, b *Buffer, tag string) error {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	w := bufio.NewWriter(tmp)
	switch FormatForPath(path) {
	case FormatBMP:
		err = EncodeBMP(w, b)
	default:
		err = EncodeTag(w, b, tag)
	}
	if err == nil {
		if ferr := w.Flush(); ferr != nil {
			err = fmt.Errorf("%w: %w", ErrIO, ferr)
		}
	}
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", ErrIO, cerr)
	}
	if err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// DecodeBMP decodes a BMP image. Any alpha channel is discarded.
func DecodeBMP(r io.Reader) (*Buffer, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: bmp: %w", ErrMalformedInput, err)
	}
	return FromStdImage(img)
}

// EncodeBMP encodes b as an uncompressed 24-bit BMP.
func EncodeBMP(w io.Writer, b *Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("%w: bmp: %w", ErrIO, err)
	}
	return nil
}

// FromStdImage creates a Buffer from a standard library image.Image.
// Colors are converted to non-premultiplied 8-bit RGB and alpha is dropped.
func FromStdImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	b, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := range width {
				off := x * 4
				b.setIndex(y*width+x, RGB{R: row[off], G: row[off+1], B: row[off+2]})
			}
		}
		return b.Build(), nil
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			b.setIndex(y*width+x, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return b.Build(), nil
}

// ToStdImage converts b to an opaque *image.NRGBA.
func (b *Buffer) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		src := b.data[y*b.width*bytesPerPixel:]
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			so := x * bytesPerPixel
			do := x * 4
			dst[do] = src[so]
			dst[do+1] = src[so+1]
			dst[do+2] = src[so+2]
			dst[do+3] = 255 // Opaque
		}
	}
	return nrgba
}
