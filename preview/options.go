package preview

import (
	"errors"
	"image/color"
)

// ErrEmptyImage indicates that the requested scale leaves no pixels to draw.
var ErrEmptyImage = errors.New("preview: image would be empty")

// Defaults, in output pixels unless noted.
const (
	DefaultScale       = 2.0 // pixels per surface unit
	DefaultStrokeWidth = 2.0
	DefaultDotRadius   = 3.0
	dotSides           = 16
)

// Default colours.
var (
	DefaultBackground = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	DefaultStroke     = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	DefaultDot        = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	DefaultMuted      = color.RGBA{R: 0xc8, G: 0xc4, B: 0xba, A: 0xff}
)

// Config holds rendering parameters.
type Config struct {
	Scale       float64
	StrokeWidth float64
	DotRadius   float64
	Background  color.Color
	Stroke      color.Color
	Dot         color.Color
	// Muted fills discarded and merged regions.
	Muted color.Color
}

// Option customizes a Config. Constructors panic on meaningless input.
type Option func(*Config)

// DefaultConfig returns the default rendering parameters.
func DefaultConfig() Config {
	return Config{
		Scale:       DefaultScale,
		StrokeWidth: DefaultStrokeWidth,
		DotRadius:   DefaultDotRadius,
		Background:  DefaultBackground,
		Stroke:      DefaultStroke,
		Dot:         DefaultDot,
		Muted:       DefaultMuted,
	}
}

// WithScale sets pixels per surface unit. Panics if s <= 0.
func WithScale(s float64) Option {
	if !(s > 0) {
		panic("preview: WithScale(s<=0)")
	}
	return func(c *Config) { c.Scale = s }
}

// WithStrokeWidth sets the boundary width in pixels. Panics if w <= 0.
func WithStrokeWidth(w float64) Option {
	if !(w > 0) {
		panic("preview: WithStrokeWidth(w<=0)")
	}
	return func(c *Config) { c.StrokeWidth = w }
}

// WithDotRadius sets the centre marker radius in pixels; 0 hides markers.
// Panics if r < 0.
func WithDotRadius(r float64) Option {
	if r < 0 {
		panic("preview: WithDotRadius(r<0)")
	}
	return func(c *Config) { c.DotRadius = r }
}

// WithColors overrides the background, stroke and dot colours. Nil values
// keep the current colour.
func WithColors(background, stroke, dot color.Color) Option {
	return func(c *Config) {
		if background != nil {
			c.Background = background
		}
		if stroke != nil {
			c.Stroke = stroke
		}
		if dot != nil {
			c.Dot = dot
		}
	}
}
