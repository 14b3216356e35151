package regions

import (
	"math"

	"github.com/katalvlaran/platesketch/gridgraph"
	"github.com/katalvlaran/platesketch/surface"
)

// Rasterize stamps segs onto a fresh sample grid. Each segment is sampled
// every SampleStep and a BrushRadius disk is inked at each sample. Samples
// within SeamMargin of either vertical sheet edge block the seam for
// SeamRadiusRows rows around them.
func Rasterize(surf surface.Surface, segs []surface.Segment, cfg Config) (*gridgraph.Grid, error) {
	g, err := gridgraph.NewGrid(cfg.SampleCols, cfg.SampleRows)
	if err != nil {
		return nil, err
	}
	cfg.surf = surf
	step := cfg.SampleStep
	if !(step > 0) {
		step = MinSampleStep
	}

	for _, s := range segs {
		steps := int(math.Max(1, math.Ceil(s.Length()/step)))
		for i := 0; i <= steps; i++ {
			p := s.At(float64(i) / float64(steps))
			stamp(g, cfg, p.X, p.Y)
			if p.X <= cfg.SeamMargin || p.X >= surf.Width-cfg.SeamMargin {
				row := clampInt(int(math.Floor(p.Y/surf.Height*float64(g.Rows))), 0, g.Rows-1)
				g.BlockSeam(row, cfg.SeamRadiusRows)
			}
		}
	}
	return g, nil
}

// stamp inks every cell whose centre lies inside the brush disk around
// (x, y). The disk does not wrap.
func stamp(g *gridgraph.Grid, cfg Config, x, y float64) {
	r := cfg.BrushRadius
	w, h := cfg.surf.Width, cfg.surf.Height
	minCol := clampInt(int(math.Floor((x-r)/w*float64(g.Cols))), 0, g.Cols-1)
	maxCol := clampInt(int(math.Floor((x+r)/w*float64(g.Cols))), 0, g.Cols-1)
	minRow := clampInt(int(math.Floor((y-r)/h*float64(g.Rows))), 0, g.Rows-1)
	maxRow := clampInt(int(math.Floor((y+r)/h*float64(g.Rows))), 0, g.Rows-1)

	rSq := math.Max(1e-4, r*r)
	cw, ch := cfg.cellW(), cfg.cellH()
	for row := minRow; row <= maxRow; row++ {
		dy := (float64(row)+0.5)*ch - y
		for col := minCol; col <= maxCol; col++ {
			dx := (float64(col)+0.5)*cw - x
			if dx*dx+dy*dy <= rSq {
				g.Mark(col, row)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
