package filter

import (
	"fmt"
	"testing"
)

var benchSizes = []struct {
	name string
	w, h int
}{
	{"100x100", 100, 100},
	{"500x500", 500, 500},
	{"1920x1080", 1920, 1080},
}

func BenchmarkGrayscale(b *testing.B) {
	for _, size := range benchSizes {
		src := patternBuffer(b, size.w, size.h)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Grayscale(src)
			}
		})
	}
}

func BenchmarkRotate(b *testing.B) {
	for _, size := range benchSizes {
		src := patternBuffer(b, size.w, size.h)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Rotate(src, Clockwise)
			}
		})
	}
}

func BenchmarkZoom(b *testing.B) {
	src := patternBuffer(b, 500, 500)
	modes := []Interpolation{InterpNearest, InterpApproxBilinear, InterpBilinear, InterpCatmullRom}
	factors := []float64{0.5, 2}

	for _, mode := range modes {
		for _, f := range factors {
			b.Run(fmt.Sprintf("%s/x%g", mode, f), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := ZoomWith(src, f, mode); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
