package imgedit

import (
	"github.com/gogpu/imgedit/internal/config"
	"github.com/gogpu/imgedit/internal/filter"
)

// Config holds editor settings loaded from YAML.
type Config = config.Config

// DefaultConfig returns the built-in editor settings.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads and validates a YAML config file. Unset keys take their
// default values.
func LoadConfig(path string) (*Config, error) {
	return config.LoadFile(path)
}

// EditorOption configures an Editor during creation.
//
// Example:
//
//	// Bilinear zoom, 10% steps, "P3" tag
//	ed := imgedit.NewEditor()
//
//	// Nearest-neighbor zoom in 25% steps
//	ed := imgedit.NewEditor(
//		imgedit.WithInterpolation(imgedit.InterpNearest),
//		imgedit.WithZoomStep(0.25),
//	)
type EditorOption func(*editorOptions)

type editorOptions struct {
	interp   filter.Interpolation
	zoomStep float64
	minZoom  float64
	maxZoom  float64
	tag      string
}

// defaultOptions mirrors config.Default.
func defaultOptions() editorOptions {
	o := editorOptions{}
	WithConfig(config.Default())(&o)
	return o
}

// WithInterpolation sets the resampling kernel used by Zoom, ZoomIn and ZoomOut.
func WithInterpolation(m Interpolation) EditorOption {
	return func(o *editorOptions) {
		o.interp = m
	}
}

// WithZoomStep sets the relative step of ZoomIn and ZoomOut (0.1 = 10%).
// Non-positive values are ignored.
func WithZoomStep(step float64) EditorOption {
	return func(o *editorOptions) {
		if step > 0 {
			o.zoomStep = step
		}
	}
}

// WithZoomRange bounds the zoom level reached by ZoomIn and ZoomOut.
// Zoom with an explicit factor is not clamped. The option is ignored unless
// 0 < lo <= hi.
func WithZoomRange(lo, hi float64) EditorOption {
	return func(o *editorOptions) {
		if lo > 0 && hi >= lo {
			o.minZoom, o.maxZoom = lo, hi
		}
	}
}

// WithTag sets the first-line tag written by Save and SaveTo for text images.
func WithTag(tag string) EditorOption {
	return func(o *editorOptions) {
		o.tag = tag
	}
}

// WithConfig applies every editor setting from a loaded config file.
// The log level is not an editor setting; callers install a logger with
// SetLogger.
func WithConfig(c *Config) EditorOption {
	return func(o *editorOptions) {
		if c == nil {
			return
		}
		o.interp = c.InterpolationMode()
		WithZoomStep(c.ZoomStep)(o)
		WithZoomRange(c.MinZoom, c.MaxZoom)(o)
		o.tag = c.Tag
	}
}
