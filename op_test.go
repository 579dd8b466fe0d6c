package imgedit

import (
	"errors"
	"testing"

	intImage "github.com/gogpu/imgedit/internal/image"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want Op
	}{
		{"zero-red", ZeroRed()},
		{"ZeroRed", ZeroRed()},
		{"grayscale", Grayscale()},
		{" greyscale ", Grayscale()},
		{"invert", Invert()},
		{"mirror:vertical", Mirror(MirrorVertical)},
		{"mirror:H", Mirror(MirrorHorizontal)},
		{"rotate:cw", Rotate(Clockwise)},
		{"rotate:counterclockwise", Rotate(Counterclockwise)},
		{"repeat:3", Repeat(3, RepeatHorizontal)},
		{"repeat:2:vertical", Repeat(2, RepeatVertical)},
		{"zoom:2", Zoom(2)},
		{"zoom:0.5", Zoom(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOp(tt.in)
			if err != nil {
				t.Fatalf("ParseOp(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOp(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOpInvalid(t *testing.T) {
	inputs := []string{
		"",
		"blur",
		"invert:1",
		"mirror",
		"mirror:diagonal",
		"rotate:180",
		"repeat",
		"repeat:0",
		"repeat:-2",
		"repeat:x",
		"repeat:2:sideways",
		"repeat:2:vertical:3",
		"zoom",
		"zoom:0",
		"zoom:-1",
		"zoom:abc",
		"zoom:NaN",
		"zoom:Inf",
	}
	for _, in := range inputs {
		if _, err := ParseOp(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseOp(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestOpStringRoundTrip(t *testing.T) {
	ops := []Op{
		ZeroRed(), Grayscale(), Invert(),
		Mirror(MirrorVertical), Mirror(MirrorHorizontal),
		Rotate(Clockwise), Rotate(Counterclockwise),
		Repeat(4, RepeatHorizontal), Repeat(2, RepeatVertical),
		Zoom(1.5), Zoom(0.25),
	}
	for _, op := range ops {
		got, err := ParseOp(op.String())
		if err != nil {
			t.Errorf("ParseOp(%q) error = %v", op.String(), err)
			continue
		}
		if got != op {
			t.Errorf("ParseOp(%q) = %+v, want %+v", op.String(), got, op)
		}
	}

	if s := Repeat(3, RepeatVertical).String(); s != "repeat:3:vertical" {
		t.Errorf("Repeat.String() = %q", s)
	}
	if s := OpKind(200).String(); s != "unknown" {
		t.Errorf("OpKind(200).String() = %q", s)
	}
}

func TestTransform(t *testing.T) {
	src, _ := NewBufferFromPixels(2, 1, []RGB{{R: 10, G: 20, B: 30}, {R: 200, G: 100, B: 0}})

	tests := []struct {
		op         Op
		w, h       int
		first      RGB
		wantErr    bool
		errIsInval bool
	}{
		{op: ZeroRed(), w: 2, h: 1, first: RGB{R: 0, G: 20, B: 30}},
		{op: Invert(), w: 2, h: 1, first: RGB{R: 245, G: 235, B: 225}},
		{op: Grayscale(), w: 2, h: 1, first: intImage.Gray((30*10 + 59*20 + 11*30) / 100)},
		{op: Mirror(MirrorVertical), w: 2, h: 1, first: RGB{R: 10, G: 20, B: 30}},
		{op: Rotate(Clockwise), w: 1, h: 2, first: RGB{R: 10, G: 20, B: 30}},
		{op: Rotate(Counterclockwise), w: 1, h: 2, first: RGB{R: 200, G: 100, B: 0}},
		{op: Repeat(3, RepeatHorizontal), w: 6, h: 1, first: RGB{R: 10, G: 20, B: 30}},
		{op: Repeat(2, RepeatVertical), w: 2, h: 2, first: RGB{R: 10, G: 20, B: 30}},
		{op: Zoom(2), w: 4, h: 2, first: RGB{R: 10, G: 20, B: 30}},
		{op: Repeat(0, RepeatVertical), wantErr: true, errIsInval: true},
		{op: Zoom(0), wantErr: true, errIsInval: true},
		{op: Op{Kind: OpKind(99)}, wantErr: true, errIsInval: true},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := Transform(src, tt.op)
			if tt.wantErr {
				if tt.errIsInval && !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Transform() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if got.Width() != tt.w || got.Height() != tt.h {
				t.Fatalf("Transform() size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.w, tt.h)
			}
			if c, _ := got.At(0, 0); c != tt.first {
				t.Errorf("Transform() At(0,0) = %v, want %v", c, tt.first)
			}
		})
	}

	if c, _ := src.At(0, 0); c != (RGB{R: 10, G: 20, B: 30}) {
		t.Error("Transform() modified its input")
	}
	if _, err := Transform(nil, Invert()); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Transform(nil) error = %v, want ErrNotLoaded", err)
	}
}
