package regions

import (
	"math"
	"sort"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/gridgraph"
	"github.com/katalvlaran/platesketch/surface"
)

// Result is the outcome of Detect.
type Result struct {
	// Regions are the kept regions, largest first.
	Regions []Region
	// Discarded are regions smaller than MinArea.
	Discarded []Region
	// Merged are regions whose representative fell within MinSeparation of
	// a larger kept region's.
	Merged []Region
	// Grid is the rasterized barrier grid; nil when there was nothing to
	// rasterize.
	Grid *gridgraph.Grid

	surf    surface.Surface
	padding float64
}

// Centers returns the kept representatives clamped Padding away from the
// sheet edges, ready for marker placement.
func (r Result) Centers() []geom.Coord {
	out := make([]geom.Coord, 0, len(r.Regions))
	for _, reg := range r.Regions {
		out = append(out, geom.Coord{
			X: clampFloat(reg.Representative.X, r.padding, r.surf.Width-r.padding),
			Y: clampFloat(reg.Representative.Y, r.padding, r.surf.Height-r.padding),
		})
	}
	return out
}

// Padding is the edge margin Centers clamps to.
func (r Result) Padding() float64 { return r.padding }

// Detect segments the sheet along bs. With no boundary geometry it returns
// an empty Result.
func Detect(surf surface.Surface, bs []boundary.Boundary, opts ...Option) (Result, error) {
	cfg := DefaultConfig(surf)
	for _, opt := range opts {
		opt(&cfg)
	}
	res := Result{surf: surf, padding: cfg.Padding}

	segs := boundary.CollectHitSegments(surf, bs)
	if len(segs) == 0 {
		return res, nil
	}

	g, err := Rasterize(surf, segs, cfg)
	if err != nil {
		return res, err
	}
	res.Grid = g

	var kept []Region
	for _, reg := range Segment(surf, g, g.DistanceField()) {
		if reg.Size < cfg.MinArea {
			res.Discarded = append(res.Discarded, reg)
			continue
		}
		kept = append(kept, reg)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Size > kept[j].Size })

	res.Regions, res.Merged = dedupe(surf, kept, cfg.MinSeparation)
	return res, nil
}

// dedupe keeps each region unless its representative lies within minDist
// (wrap-aware) of an already kept one.
func dedupe(surf surface.Surface, regs []Region, minDist float64) (kept, merged []Region) {
	limit := minDist * minDist
	for _, r := range regs {
		dup := false
		for _, k := range kept {
			if wrapDistSq(surf, r.Representative, k.Representative) <= limit {
				dup = true
				break
			}
		}
		if dup {
			merged = append(merged, r)
		} else {
			kept = append(kept, r)
		}
	}
	return kept, merged
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
