package imgedit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/imgedit/internal/filter"
	"github.com/gogpu/imgedit/internal/history"
	intImage "github.com/gogpu/imgedit/internal/image"
)

// Editor is one image editing session: a loaded image, the transforms
// applied to it, and their undo/redo history.
//
// Every operation runs to completion before returning. Failed operations
// leave the session unchanged.
//
// Editor is not safe for concurrent use. Each goroutine should use its own
// Editor.
type Editor struct {
	hist *history.History
	opts editorOptions
}

// NewEditor creates an empty editor. Load an image before applying
// transforms.
//
// Example:
//
//	ed := imgedit.NewEditor(imgedit.WithInterpolation(imgedit.InterpCatmullRom))
//	if err := ed.Load("in.ppm"); err != nil {
//		return err
//	}
//	ed.Apply(imgedit.Grayscale())
//	ed.Zoom(2)
//	ed.Save("out.ppm")
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{hist: history.New(), opts: o}
}

// Load reads an image file and starts a new history with it.
// Paths ending in ".bmp" are read as bitmaps, everything else as text images.
func (e *Editor) Load(path string) error {
	img, err := intImage.Load(path)
	if err != nil {
		Logger().Warn("load failed", "path", path, "err", err)
		return err
	}
	e.reset(img)
	Logger().Info("loaded", "path", path, "width", img.Width(), "height", img.Height())
	return nil
}

// LoadFrom decodes a text image from r and starts a new history with it.
func (e *Editor) LoadFrom(r io.Reader) error {
	img, err := intImage.Decode(r)
	if err != nil {
		Logger().Warn("load failed", "err", err)
		return err
	}
	e.reset(img)
	Logger().Info("loaded", "width", img.Width(), "height", img.Height())
	return nil
}

// LoadBuffer starts a new history with b.
func (e *Editor) LoadBuffer(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	e.reset(b)
	Logger().Debug("loaded buffer", "width", b.Width(), "height", b.Height())
	return nil
}

func (e *Editor) reset(img *Buffer) {
	// Load only fails for a nil image.
	_ = e.hist.Load(img)
}

// Save writes the current image to path. The file is replaced atomically;
// if writing fails, any existing file at path is left as it was.
func (e *Editor) Save(path string) error {
	cur := e.hist.Current()
	if cur == nil {
		return ErrNotLoaded
	}
	if err := intImage.Save(path, cur, e.opts.tag); err != nil {
		Logger().Warn("save failed", "path", path, "err", err)
		return err
	}
	Logger().Info("saved", "path", path, "format", intImage.FormatForPath(path).String(),
		"width", cur.Width(), "height", cur.Height())
	return nil
}

// SaveTo encodes the current image to w as a text image.
func (e *Editor) SaveTo(w io.Writer) error {
	cur := e.hist.Current()
	if cur == nil {
		return ErrNotLoaded
	}
	return intImage.EncodeTag(w, cur, e.opts.tag)
}

// Apply runs op on the current image and makes the result current.
// Zoom ops are forwarded to Zoom.
func (e *Editor) Apply(op Op) (*Buffer, error) {
	if op.IsZoom() {
		return e.Zoom(op.Factor)
	}
	cur := e.hist.Current()
	if cur == nil {
		return nil, ErrNotLoaded
	}
	out, err := transform(cur, op, e.opts.interp)
	if err != nil {
		Logger().Warn("apply rejected", "op", op.String(), "err", err)
		return nil, err
	}
	if err := e.hist.Apply(out, false); err != nil {
		return nil, err
	}
	e.logMove("apply", slog.String("op", op.String()), slog.Int("width", out.Width()), slog.Int("height", out.Height()))
	return out, nil
}

// Zoom resamples the pre-zoom image by factor and makes the result current.
//
// The source is Original, so a sequence of zooms never compounds
// interpolation error: Zoom(2) followed by Zoom(3) yields the base image
// scaled by 3, not 6. When no pre-zoom image is reachable the current image
// is used.
func (e *Editor) Zoom(factor float64) (*Buffer, error) {
	src := e.zoomSource()
	if src == nil {
		return nil, ErrNotLoaded
	}
	out, err := filter.ZoomWith(src, factor, e.opts.interp)
	if err != nil {
		Logger().Warn("zoom rejected", "factor", factor, "err", err)
		return nil, err
	}
	if err := e.hist.Apply(out, true); err != nil {
		return nil, err
	}
	e.logMove("zoom", slog.Float64("factor", factor), slog.String("interp", e.opts.interp.String()),
		slog.Int("width", out.Width()), slog.Int("height", out.Height()))
	return out, nil
}

// ZoomIn enlarges the image by one zoom step, up to the maximum zoom level.
// At the maximum it returns the current image without adding a history entry.
func (e *Editor) ZoomIn() (*Buffer, error) {
	return e.stepZoom(1)
}

// ZoomOut shrinks the image by one zoom step, down to the minimum zoom level.
// At the minimum it returns the current image without adding a history entry.
func (e *Editor) ZoomOut() (*Buffer, error) {
	return e.stepZoom(-1)
}

func (e *Editor) stepZoom(dir int) (*Buffer, error) {
	base, cur := e.zoomSource(), e.hist.Current()
	if cur == nil {
		return nil, ErrNotLoaded
	}
	bw, bh := base.Bounds()
	level := float64(cur.Width()) / float64(bw)

	next := level * (1 + e.opts.zoomStep)
	if dir < 0 {
		next = level / (1 + e.opts.zoomStep)
	}
	next = e.clampZoom(next)

	// Small images can round back to the current width; move at least
	// one pixel while staying in range.
	if zw, _, err := filter.ZoomSize(bw, bh, next); err == nil && zw == cur.Width() {
		next = e.clampZoom(float64(cur.Width()+dir) / float64(bw))
	}
	if zw, _, err := filter.ZoomSize(bw, bh, next); err != nil || zw == cur.Width() {
		return cur, nil
	}
	return e.Zoom(next)
}

func (e *Editor) clampZoom(f float64) float64 {
	return min(max(f, e.opts.minZoom), e.opts.maxZoom)
}

// ZoomLevel returns the current image width divided by the pre-zoom image
// width. It is 1 before any zoom and 0 before Load.
func (e *Editor) ZoomLevel() float64 {
	base, cur := e.zoomSource(), e.hist.Current()
	if cur == nil {
		return 0
	}
	return float64(cur.Width()) / float64(base.Width())
}

func (e *Editor) zoomSource() *Buffer {
	if o := e.hist.Original(); o != nil {
		return o
	}
	return e.hist.Current()
}

// Undo reverts the most recent transform. The loaded image itself cannot be
// undone. Reports whether anything changed.
func (e *Editor) Undo() bool {
	ok := e.hist.Undo()
	if ok {
		e.logMove("undo")
	}
	return ok
}

// Redo reapplies the most recently undone transform. Reports whether
// anything changed.
func (e *Editor) Redo() bool {
	ok := e.hist.Redo()
	if ok {
		e.logMove("redo")
	}
	return ok
}

func (e *Editor) logMove(msg string, attrs ...slog.Attr) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	applied, undone := e.hist.Depth()
	args := make([]any, 0, len(attrs)+3)
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Int("applied", applied), slog.Int("undone", undone), slog.Int("zoom_base", e.hist.ZoomBase()))
	l.Debug(msg, args...)
}

// Current returns the current image, or nil before Load.
func (e *Editor) Current() *Buffer {
	return e.hist.Current()
}

// Original returns the image the next zoom starts from: the result of the
// last non-zoom step. It is nil before Load and after that step was undone.
func (e *Editor) Original() *Buffer {
	return e.hist.Original()
}

// Loaded reports whether an image has been loaded.
func (e *Editor) Loaded() bool {
	return e.hist.Loaded()
}

// CanUndo reports whether Undo would change the current image.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether Redo would change the current image.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// Depth returns the number of images reachable by undo (including the
// current one) and by redo.
func (e *Editor) Depth() (applied, undone int) {
	return e.hist.Depth()
}
