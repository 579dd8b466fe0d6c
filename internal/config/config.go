// Package config loads imgedit editor settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/imgedit/internal/filter"
	"github.com/gogpu/imgedit/internal/image"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds editor settings.
type Config struct {
	// Interpolation is the zoom kernel: bilinear, nearest, approx-bilinear
	// or catmull-rom.
	Interpolation string `yaml:"interpolation"`

	// ZoomStep is the relative change applied by zoom in/out (0.1 = 10%).
	ZoomStep float64 `yaml:"zoom_step"`

	// MinZoom and MaxZoom bound the zoom level reached by zoom in/out.
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Tag is the format tag written on the first line of saved text images.
	Tag string `yaml:"tag"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

func (c *Config) defaults() {
	if c.Interpolation == "" {
		c.Interpolation = filter.InterpBilinear.String()
	}
	if c.ZoomStep == 0 {
		c.ZoomStep = 0.1
	}
	if c.MinZoom == 0 {
		c.MinZoom = 0.1
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Tag == "" {
		c.Tag = image.DefaultTag
	}
}

// LoadFile reads a YAML config file, fills unset fields with defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := filter.ParseInterpolation(c.Interpolation); err != nil {
		return fmt.Errorf("%w: interpolation %q", ErrInvalid, c.Interpolation)
	}
	if c.ZoomStep <= 0 {
		return fmt.Errorf("%w: zoom_step %v must be positive", ErrInvalid, c.ZoomStep)
	}
	if c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalid, c.MinZoom, c.MaxZoom)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if strings.ContainsAny(c.Tag, "\r\n") {
		return fmt.Errorf("%w: tag %q must be a single line", ErrInvalid, c.Tag)
	}
	return nil
}

// InterpolationMode returns the parsed zoom kernel.
func (c *Config) InterpolationMode() filter.Interpolation {
	m, _ := filter.ParseInterpolation(c.Interpolation)
	return m
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}
