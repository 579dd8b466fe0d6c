// Package imgedit provides the core of an interactive raster-image editor.
//
// # Overview
//
// imgedit loads an 8-bit RGB image, applies a sequence of pixel-level
// transforms to it, and records every step in a linear undo/redo history.
// Window chrome, input handling and on-screen rendering are left to the
// caller; this package is the state machine and the algorithms behind them.
//
// # Quick Start
//
//	ed := imgedit.NewEditor()
//	if err := ed.Load("photo.ppm"); err != nil {
//	    return err
//	}
//	ed.Apply(imgedit.Grayscale())
//	ed.Apply(imgedit.Rotate(imgedit.Clockwise))
//	ed.Undo()
//	ed.Zoom(2.0)
//	if err := ed.Save("out.ppm"); err != nil {
//	    return err
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Editor, Op, Buffer and the transform constructors
//   - Internal: image (buffer and codecs), filter (transforms),
//     history (undo/redo stacks), config (YAML settings)
//
// # Zoom
//
// Zoom results are pushed to the history like any other step, but they do not
// move the zoom base: the next zoom is computed from the last non-zoom image,
// so zooming in and out repeatedly never compounds interpolation error.
//
// # File Format
//
// Images are stored as plain text: a tag line ("P3"), "<width> <height>",
// "255", then one channel value per line, red/green/blue per pixel in
// row-major order. Paths ending in ".bmp" use an uncompressed bitmap instead.
//
// # Concurrency
//
// An Editor is owned by one session and must not be used from multiple
// goroutines at once. Buffers are immutable and may be shared.
package imgedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
