package autoconnect

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/platesketch/curve"
	"github.com/katalvlaran/platesketch/surface"
)

// WrapOptions returns the wrap sides worth trying for an edge a->b: the two
// with the smallest horizontal displacement among none, left and right.
// Displacements within tie of each other prefer the wrapped side.
func WrapOptions(surf surface.Surface, a, b surface.Point, tie float64) []surface.WrapSide {
	type option struct {
		side surface.WrapSide
		adx  float64
	}
	dx := b.X - a.X
	opts := []option{
		{surface.WrapNone, math.Abs(dx)},
		{surface.WrapLeft, math.Abs(dx - surf.Width)},
		{surface.WrapRight, math.Abs(dx + surf.Width)},
	}
	sort.SliceStable(opts, func(i, j int) bool {
		if d := opts[i].adx - opts[j].adx; math.Abs(d) > tie {
			return d < 0
		}
		return opts[i].side.Wrapped() && !opts[j].side.Wrapped()
	})
	return []surface.WrapSide{opts[0].side, opts[1].side}
}

// BuildCandidates enumerates every unordered pair of points with its wrap
// variants. When cfg.Wrap is false only direct edges are produced.
func BuildCandidates(surf surface.Surface, points []surface.Point, cfg Config, rng *rand.Rand) []*Candidate {
	var out []*Candidate
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			sides := []surface.WrapSide{surface.WrapNone}
			if cfg.Wrap {
				sides = WrapOptions(surf, points[i], points[j], cfg.WrapTie)
			}
			for _, side := range sides {
				out = append(out, newCandidate(surf, points[i], points[j], i, j, side, cfg, rng))
			}
		}
	}
	return out
}

func newCandidate(surf surface.Surface, a, b surface.Point, ai, bi int, side surface.WrapSide, cfg Config, rng *rand.Rand) *Candidate {
	dx, dy := surf.Displacement(a.Coord(), b.Coord(), side)
	length := math.Hypot(dx, dy)

	long := math.Max(0, length-cfg.LongThreshold) * cfg.LongWeight
	extreme := math.Max(0, length-cfg.ExtremeThreshold) * cfg.ExtremeWeight

	fill := math.Abs(length-cfg.PreferredLength)*cfg.FillDeviation +
		length*cfg.FillLength +
		long + extreme +
		(rng.Float64()-0.5)*cfg.FillJitter
	tree := length +
		long*cfg.TreeLongFactor +
		extreme*cfg.TreeExtreme +
		rng.Float64()*cfg.TreeJitter
	if side.Wrapped() {
		fill -= cfg.FillWrapBonus
		tree -= cfg.TreeWrapBonus
	}

	bearing := surface.Bearing(dx, dy)
	return &Candidate{
		Pair:           surface.PairKey(a.Key, b.Key),
		Start:          a,
		End:            b,
		StartIndex:     ai,
		EndIndex:       bi,
		Wrap:           side,
		Curve:          curve.NewTectonic(rng).Damped(),
		Length:         length,
		FillScore:      fill,
		TreeScore:      tree,
		AngleFromStart: bearing,
		AngleFromEnd:   surface.NormalizeAngle(bearing + math.Pi),
	}
}
