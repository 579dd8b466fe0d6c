package imgedit

import (
	"github.com/gogpu/imgedit/internal/filter"
	"github.com/gogpu/imgedit/internal/history"
	intImage "github.com/gogpu/imgedit/internal/image"
)

// Errors reported by imgedit. Every failure returned by the package wraps one
// of these; test with errors.Is.
var (
	// ErrInvalidDimension is returned for a non-positive width or height.
	ErrInvalidDimension = intImage.ErrInvalidDimensions

	// ErrOutOfBounds is returned for a pixel coordinate outside the image.
	ErrOutOfBounds = intImage.ErrOutOfBounds

	// ErrInvalidArgument is returned for a bad transform parameter
	// (repeat count < 1, zoom factor <= 0) or an unparseable op.
	ErrInvalidArgument = filter.ErrInvalidArgument

	// ErrMalformedInput is returned when image data cannot be decoded.
	ErrMalformedInput = intImage.ErrMalformedInput

	// ErrNotLoaded is returned by history operations before an image is loaded.
	ErrNotLoaded = history.ErrNotLoaded

	// ErrIO is returned, joined with the underlying error, when reading or
	// writing a file fails.
	ErrIO = intImage.ErrIO
)
