package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jbeda/geom"
	"github.com/mazznoer/colorgrad"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/regions"
	"github.com/katalvlaran/platesketch/surface"
)

// Palette returns n distinct opaque colours spread along a rainbow gradient.
// The rainbow is cyclic, so n+1 stops are sampled and the last one, which
// repeats the first, is dropped.
func Palette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	cols := colorgrad.Rainbow().Colors(uint(n + 1))[:n]
	out := make([]color.Color, len(cols))
	for i, c := range cols {
		r, g, b, _ := c.RGBA()
		out[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
	}
	return out
}

// Render draws res and bs onto a new image sized to surf at the configured
// scale.
func Render(surf surface.Surface, res regions.Result, bs []boundary.Boundary, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := int(math.Ceil(surf.Width * cfg.Scale))
	h := int(math.Ceil(surf.Height * cfg.Scale))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	if res.Grid != nil {
		cells := regionImage(res, cfg)
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), cells, cells.Bounds(), xdraw.Over, nil)
	}

	ras := vector.NewRasterizer(w, h)
	for _, seg := range boundary.CollectHitSegments(surf, bs) {
		strokeQuad(ras, seg.A.Times(cfg.Scale), seg.B.Times(cfg.Scale), cfg.StrokeWidth/2)
	}
	ras.Draw(dst, dst.Bounds(), image.NewUniform(cfg.Stroke), image.Point{})

	if cfg.DotRadius > 0 && len(res.Regions) > 0 {
		ras.Reset(w, h)
		for _, c := range res.Centers() {
			disk(ras, c.Times(cfg.Scale), cfg.DotRadius)
		}
		ras.Draw(dst, dst.Bounds(), image.NewUniform(cfg.Dot), image.Point{})
	}
	return dst, nil
}

// regionImage paints one pixel per sample cell. Barrier cells stay
// transparent.
func regionImage(res regions.Result, cfg Config) *image.RGBA {
	g := res.Grid
	img := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	paint := func(regs []regions.Region, pick func(int) color.Color) {
		for i, r := range regs {
			c := pick(i)
			for _, idx := range r.Cells {
				col, row := g.Coordinate(idx)
				img.Set(col, row, c)
			}
		}
	}
	palette := Palette(len(res.Regions))
	paint(res.Regions, func(i int) color.Color { return palette[i] })
	muted := func(int) color.Color { return cfg.Muted }
	paint(res.Discarded, muted)
	paint(res.Merged, muted)
	return img
}

// strokeQuad adds the rectangle of half-width hw around a-b. Every quad has
// the same winding so overlaps accumulate instead of cancelling.
func strokeQuad(ras *vector.Rasterizer, a, b geom.Coord, hw float64) {
	d := b.Minus(a)
	length := a.DistanceFrom(b)
	if length == 0 {
		disk(ras, a, hw)
		return
	}
	n := geom.Coord{X: -d.Y, Y: d.X}.Times(hw / length)
	moveTo(ras, a.Plus(n))
	lineTo(ras, b.Plus(n))
	lineTo(ras, b.Minus(n))
	lineTo(ras, a.Minus(n))
	ras.ClosePath()
}

func disk(ras *vector.Rasterizer, c geom.Coord, r float64) {
	for i := 0; i < dotSides; i++ {
		angle := 2 * math.Pi * float64(i) / dotSides
		p := geom.Coord{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
		if i == 0 {
			moveTo(ras, p)
		} else {
			lineTo(ras, p)
		}
	}
	ras.ClosePath()
}

func moveTo(ras *vector.Rasterizer, p geom.Coord) { ras.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(ras *vector.Rasterizer, p geom.Coord) { ras.LineTo(float32(p.X), float32(p.Y)) }
