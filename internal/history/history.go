// Package history implements the linear undo/redo history of an editing
// session.
//
// A History holds two stacks of image buffers: applied (the undo stack, whose
// top is the current image) and undone (the redo stack). It also tracks the
// zoom base index, the position just past the last buffer in applied that was
// not produced by a zoom. Re-zooming always starts from that buffer so that
// repeated zooms never compound interpolation error.
//
// History is not safe for concurrent use; one editing session owns it.
package history

import (
	"errors"
	"fmt"

	"github.com/gogpu/imgedit/internal/image"
)

// Errors returned by History.
var (
	// ErrNotLoaded is returned when an image is applied before Load.
	ErrNotLoaded = errors.New("history: no image loaded")

	// ErrNilImage is returned when a nil buffer is loaded or applied.
	ErrNilImage = errors.New("history: nil image")
)

// History is the applied/undone state machine of one editing session.
// The zero value is an empty history; call Load before Apply.
type History struct {
	applied  []*image.Buffer
	undone   []*image.Buffer
	zoomBase int
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Load discards all history and starts a new one with img as its only,
// permanently retained element. The loaded image counts as the first
// non-zoom step, so the zoom base index becomes 1.
func (h *History) Load(img *image.Buffer) error {
	if img == nil {
		return ErrNilImage
	}
	clear(h.applied)
	clear(h.undone)
	h.applied = append(h.applied[:0], img)
	h.undone = h.undone[:0]
	h.zoomBase = 1
	return nil
}

// Loaded reports whether an image has been loaded.
func (h *History) Loaded() bool {
	return len(h.applied) > 0
}

// Apply pushes img as the new current image and discards every undone step.
// Unless zoom is true, the zoom base index advances.
func (h *History) Apply(img *image.Buffer, zoom bool) error {
	if !h.Loaded() {
		return ErrNotLoaded
	}
	if img == nil {
		return ErrNilImage
	}
	h.applied = append(h.applied, img)
	clear(h.undone)
	h.undone = h.undone[:0]
	if !zoom {
		h.zoomBase++
	}
	return nil
}

// Undo moves the current image to the redo stack. The loaded image is never
// undone. Reports whether anything moved.
func (h *History) Undo() bool {
	if len(h.applied) <= 1 {
		return false
	}
	top := h.applied[len(h.applied)-1]
	h.applied[len(h.applied)-1] = nil
	h.applied = h.applied[:len(h.applied)-1]
	h.undone = append(h.undone, top)
	return true
}

// Redo moves the most recently undone image back onto the applied stack.
// Reports whether anything moved.
func (h *History) Redo() bool {
	if len(h.undone) == 0 {
		return false
	}
	top := h.undone[len(h.undone)-1]
	h.undone[len(h.undone)-1] = nil
	h.undone = h.undone[:len(h.undone)-1]
	h.applied = append(h.applied, top)
	return true
}

// Current returns the top of the applied stack, or nil before Load.
func (h *History) Current() *image.Buffer {
	if len(h.applied) == 0 {
		return nil
	}
	return h.applied[len(h.applied)-1]
}

// Original returns the pre-zoom image: the applied element at zoom base
// index - 1, or nil when that position is outside the applied stack.
//
// The zoom base index is not adjusted by Undo, so after undoing non-zoom
// steps it can point past the top of the stack and Original returns nil.
func (h *History) Original() *image.Buffer {
	i := h.zoomBase - 1
	if i < 0 || i >= len(h.applied) {
		return nil
	}
	return h.applied[i]
}

// CanUndo reports whether Undo would move an image.
func (h *History) CanUndo() bool {
	return len(h.applied) > 1
}

// CanRedo reports whether Redo would move an image.
func (h *History) CanRedo() bool {
	return len(h.undone) > 0
}

// Depth returns the sizes of the applied and undone stacks.
func (h *History) Depth() (applied, undone int) {
	return len(h.applied), len(h.undone)
}

// ZoomBase returns the zoom base index.
func (h *History) ZoomBase() int {
	return h.zoomBase
}

// String summarizes the history for logs.
func (h *History) String() string {
	return fmt.Sprintf("history{applied=%d undone=%d zoomBase=%d}", len(h.applied), len(h.undone), h.zoomBase)
}
