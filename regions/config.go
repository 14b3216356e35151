package regions

import (
	"math"

	"github.com/katalvlaran/platesketch/surface"
)

// Sampling defaults. Distances are relative to one sample cell (the smaller
// of its two sides) or to one editing-grid cell of the surface.
const (
	DefaultSampleCols     = 240
	MinSampleRows         = 20
	DefaultStepFrac       = 0.36
	MinSampleStep         = 0.5
	DefaultBrushFrac      = 0.9
	MinBrushRadius        = 0.65
	DefaultSeamBrushFrac  = 1.05
	DefaultSeamColFrac    = 0.9
	DefaultMinAreaFrac    = 0.0003
	MinRegionArea         = 10
	DefaultSeparationCell = 1.08
	MinSeparation         = 2.2
	DefaultPaddingCell    = 0.675
	MinPadding            = 2.0
)

// Config controls rasterization and region filtering.
type Config struct {
	SampleCols, SampleRows int
	SampleStep             float64
	BrushRadius            float64
	SeamMargin             float64
	SeamRadiusRows         int
	MinArea                int
	MinSeparation          float64
	Padding                float64

	surf surface.Surface
	// brushSet and minAreaSet mark explicit overrides that a later
	// WithResolution must keep.
	brushSet, minAreaSet bool
}

// Option customizes a Config. Constructors panic on meaningless input.
type Option func(*Config)

// DefaultConfig returns the defaults for surf. The row count follows the
// surface aspect ratio.
func DefaultConfig(surf surface.Surface) Config {
	cell := surf.CellSize()
	c := Config{
		MinSeparation: math.Max(MinSeparation, cell*DefaultSeparationCell),
		Padding:       math.Max(MinPadding, cell*DefaultPaddingCell),
		surf:          surf,
	}
	rows := int(math.Round(DefaultSampleCols * surf.Height / surf.Width))
	if rows < MinSampleRows {
		rows = MinSampleRows
	}
	c.setResolution(DefaultSampleCols, rows)
	return c
}

// setResolution fixes the grid size and re-derives the sampling distances
// from the new cell size. An explicit brush radius or minimum area is kept;
// the seam margin is always re-derived because it depends on the cell width.
func (c *Config) setResolution(cols, rows int) {
	c.SampleCols, c.SampleRows = cols, rows
	minCell := math.Min(c.cellW(), c.cellH())
	c.SampleStep = math.Max(MinSampleStep, minCell*DefaultStepFrac)
	if !c.minAreaSet {
		c.MinArea = int(math.Max(MinRegionArea, math.Round(float64(cols*rows)*DefaultMinAreaFrac)))
	}
	r := c.BrushRadius
	if !c.brushSet {
		r = math.Max(MinBrushRadius, minCell*DefaultBrushFrac)
	}
	c.setBrush(r)
}

func (c *Config) setBrush(r float64) {
	c.BrushRadius = r
	c.SeamMargin = math.Max(r*DefaultSeamBrushFrac, c.cellW()*DefaultSeamColFrac)
	c.SeamRadiusRows = int(math.Max(1, math.Ceil(r/c.cellH())))
}

func (c Config) cellW() float64 { return c.surf.Width / float64(c.SampleCols) }
func (c Config) cellH() float64 { return c.surf.Height / float64(c.SampleRows) }

// WithResolution sets the sample grid size. Panics unless both are positive.
func WithResolution(cols, rows int) Option {
	if cols <= 0 || rows <= 0 {
		panic("regions: WithResolution requires positive cols and rows")
	}
	return func(c *Config) {
		c.setResolution(cols, rows)
	}
}

// WithBrushRadius sets the ink radius in surface units. Panics if r <= 0.
func WithBrushRadius(r float64) Option {
	if !(r > 0) {
		panic("regions: WithBrushRadius(r<=0)")
	}
	return func(c *Config) {
		c.brushSet = true
		c.setBrush(r)
	}
}

// WithMinArea sets the smallest region, in cells, that is kept. Panics if
// n < 0.
func WithMinArea(n int) Option {
	if n < 0 {
		panic("regions: WithMinArea(n<0)")
	}
	return func(c *Config) {
		c.minAreaSet = true
		c.MinArea = n
	}
}

// WithMinSeparation sets the distance under which two representatives are
// merged. Panics if d < 0.
func WithMinSeparation(d float64) Option {
	if d < 0 {
		panic("regions: WithMinSeparation(d<0)")
	}
	return func(c *Config) {
		c.MinSeparation = d
	}
}

// WithPadding sets the edge clearance applied by Result.Centers. Panics if
// p < 0.
func WithPadding(p float64) Option {
	if p < 0 {
		panic("regions: WithPadding(p<0)")
	}
	return func(c *Config) {
		c.Padding = p
	}
}
