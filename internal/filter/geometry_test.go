package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/imgedit/internal/image"
)

func TestMirrorVertical(t *testing.T) {
	src := patternBuffer(t, 4, 2)
	out := Mirror(src, MirrorVertical)

	assertSize(t, out, 4, 2)
	for y := range 2 {
		for x := range 2 {
			want := mustAt(t, src, x, y)
			if got := mustAt(t, out, x, y); got != want {
				t.Errorf("out(%d,%d) = %v, want %v", x, y, got, want)
			}
			if got := mustAt(t, out, 3-x, y); got != want {
				t.Errorf("out(%d,%d) = %v, want %v", 3-x, y, got, want)
			}
		}
	}
}

func TestMirrorHorizontal(t *testing.T) {
	src := patternBuffer(t, 3, 4)
	out := Mirror(src, MirrorHorizontal)

	assertSize(t, out, 3, 4)
	for y := range 2 {
		for x := range 3 {
			want := mustAt(t, src, x, y)
			if got := mustAt(t, out, x, 3-y); got != want {
				t.Errorf("out(%d,%d) = %v, want %v", x, 3-y, got, want)
			}
		}
	}
}

func TestMirrorOddCenterUntouched(t *testing.T) {
	src := filledBuffer(t, 3, 3, image.Gray(200))

	v := Mirror(src, MirrorVertical)
	for y := range 3 {
		if got := mustAt(t, v, 1, y); got != (image.RGB{}) {
			t.Errorf("vertical mirror center column (1,%d) = %v, want black", y, got)
		}
		if got := mustAt(t, v, 2, y); got != image.Gray(200) {
			t.Errorf("vertical mirror (2,%d) = %v, want copied left column", y, got)
		}
	}

	h := Mirror(src, MirrorHorizontal)
	for x := range 3 {
		if got := mustAt(t, h, x, 1); got != (image.RGB{}) {
			t.Errorf("horizontal mirror center row (%d,1) = %v, want black", x, got)
		}
	}
}

func TestMirrorIdempotent(t *testing.T) {
	for _, size := range [][2]int{{4, 2}, {5, 3}, {1, 1}} {
		for _, dir := range []MirrorDirection{MirrorVertical, MirrorHorizontal} {
			once := Mirror(patternBuffer(t, size[0], size[1]), dir)
			if !Mirror(once, dir).Equal(once) {
				t.Errorf("Mirror(%v) not idempotent on %dx%d", dir, size[0], size[1])
			}
		}
	}
}

func TestMirrorEvenSymmetricRoundTrip(t *testing.T) {
	// An even-width image whose right half already mirrors its left half
	// is reproduced exactly.
	src := Mirror(patternBuffer(t, 6, 3), MirrorVertical)
	if !Mirror(Mirror(src, MirrorVertical), MirrorVertical).Equal(src) {
		t.Error("double vertical mirror of symmetric even-width image changed it")
	}
}

func TestRotate(t *testing.T) {
	src := patternBuffer(t, 3, 2)

	cw := Rotate(src, Clockwise)
	assertSize(t, cw, 2, 3)
	ccw := Rotate(src, Counterclockwise)
	assertSize(t, ccw, 2, 3)

	src.Each(func(x, y int, c image.RGB) {
		if got := mustAt(t, cw, 2-1-y, x); got != c {
			t.Errorf("cw out(%d,%d) = %v, want %v", 1-y, x, got, c)
		}
		if got := mustAt(t, ccw, y, 3-1-x); got != c {
			t.Errorf("ccw out(%d,%d) = %v, want %v", y, 2-x, got, c)
		}
	})
}

func TestRotateInverse(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 2}, {5, 7}} {
		src := patternBuffer(t, size[0], size[1])
		if !Rotate(Rotate(src, Counterclockwise), Clockwise).Equal(src) {
			t.Errorf("cw(ccw(b)) != b for %dx%d", size[0], size[1])
		}
		if !Rotate(Rotate(src, Clockwise), Counterclockwise).Equal(src) {
			t.Errorf("ccw(cw(b)) != b for %dx%d", size[0], size[1])
		}
		full := src
		for range 4 {
			full = Rotate(full, Clockwise)
		}
		if !full.Equal(src) {
			t.Errorf("four clockwise turns != identity for %dx%d", size[0], size[1])
		}
	}
}

func TestRepeat(t *testing.T) {
	src := patternBuffer(t, 3, 2)

	tests := []struct {
		name  string
		n     int
		dir   RepeatDirection
		w, h  int
		tileX int
		tileY int
	}{
		{"once horizontal", 1, RepeatHorizontal, 3, 2, 0, 0},
		{"three horizontal", 3, RepeatHorizontal, 9, 2, 3, 0},
		{"four vertical", 4, RepeatVertical, 3, 8, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Repeat(src, tt.n, tt.dir)
			if err != nil {
				t.Fatalf("Repeat() error = %v", err)
			}
			assertSize(t, out, tt.w, tt.h)
			for i := range tt.n {
				src.Each(func(x, y int, c image.RGB) {
					ox, oy := x+i*tt.tileX, y+i*tt.tileY
					if got := mustAt(t, out, ox, oy); got != c {
						t.Errorf("tile %d (%d,%d) = %v, want %v", i, ox, oy, got, c)
					}
				})
			}
		})
	}
}

func TestRepeatInvalidCount(t *testing.T) {
	src := patternBuffer(t, 2, 2)
	for _, n := range []int{0, -1, -100} {
		out, err := Repeat(src, n, RepeatHorizontal)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Repeat(n=%d) error = %v, want ErrInvalidArgument", n, err)
		}
		if out != nil {
			t.Errorf("Repeat(n=%d) returned a buffer with an error", n)
		}
	}
}

func TestDirectionStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{MirrorVertical.String(), "vertical"},
		{MirrorHorizontal.String(), "horizontal"},
		{MirrorDirection(9).String(), "unknown"},
		{Clockwise.String(), "cw"},
		{Counterclockwise.String(), "ccw"},
		{RepeatHorizontal.String(), "horizontal"},
		{RepeatVertical.String(), "vertical"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
