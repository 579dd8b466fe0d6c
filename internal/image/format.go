package image

import (
	"path/filepath"
	"strings"
)

// FileFormat identifies an on-disk image encoding.
type FileFormat uint8

const (
	// FormatPPM is the plain-text RGB format (tag line, "W H", max value,
	// one channel value per line).
	FormatPPM FileFormat = iota

	// FormatBMP is an uncompressed 24-bit Windows bitmap.
	FormatBMP
)

// String returns a short lowercase name for the format.
func (f FileFormat) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatForPath picks the file format from the path extension.
// ".bmp" selects FormatBMP; every other extension uses FormatPPM.
func FormatForPath(path string) FileFormat {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return FormatBMP
	}
	return FormatPPM
}
