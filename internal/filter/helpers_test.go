package filter

import (
	"testing"

	"github.com/gogpu/imgedit/internal/image"
)

// Test helper functions shared across filter tests.

// patternBuffer builds a w x h buffer with a distinct color per pixel.
func patternBuffer(t testing.TB, w, h int) *image.Buffer {
	t.Helper()
	b, err := image.NewBuilder(w, h)
	if err != nil {
		t.Fatalf("NewBuilder(%d, %d) error = %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			_ = b.Set(x, y, image.RGB{R: uint8(x*31 + 1), G: uint8(y*29 + 2), B: uint8(x*y + 3)})
		}
	}
	return b.Build()
}

// filledBuffer builds a w x h buffer with every pixel set to c.
func filledBuffer(t *testing.T, w, h int, c image.RGB) *image.Buffer {
	t.Helper()
	b, err := image.Filled(w, h, c)
	if err != nil {
		t.Fatalf("Filled(%d, %d) error = %v", w, h, err)
	}
	return b
}

// mustAt returns the pixel at (x, y) or fails the test.
func mustAt(t *testing.T, b *image.Buffer, x, y int) image.RGB {
	t.Helper()
	c, err := b.At(x, y)
	if err != nil {
		t.Fatalf("At(%d, %d) error = %v", x, y, err)
	}
	return c
}

// assertSize fails the test when b is not w x h.
func assertSize(t *testing.T, b *image.Buffer, w, h int) {
	t.Helper()
	if gw, gh := b.Bounds(); gw != w || gh != h {
		t.Fatalf("Bounds() = %dx%d, want %dx%d", gw, gh, w, h)
	}
}
