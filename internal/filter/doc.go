// Package filter implements the imgedit transform library.
//
// Every transform is a pure function from one image.Buffer (plus parameters)
// to a newly allocated image.Buffer; the input is never modified:
//   - Color filters: ZeroRed, Grayscale, Invert
//   - Geometry: Mirror, Rotate
//   - Tiling: Repeat
//   - Resampling: Zoom, ZoomWith (golang.org/x/image/draw kernels)
//
// Only Repeat and Zoom take numeric parameters and they are the only
// transforms that can fail (ErrInvalidArgument).
package filter
