package autoconnect_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platesketch/autoconnect"
	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/connectivity"
	"github.com/katalvlaran/platesketch/surface"
)

func pt(key string, x, y float64) surface.Point {
	return surface.Point{Key: key, X: x, Y: y, Weight: 1}
}

// rollPoints places n points on distinct cells of the 20x20 editing grid,
// at cell centres, the way plate points are rolled.
func rollPoints(surf surface.Surface, n int, r *rand.Rand) []surface.Point {
	cw := surf.Width / surface.CellDivisions
	ch := surf.Height / surface.CellDivisions
	used := map[int]bool{}
	var pts []surface.Point
	for len(pts) < n {
		col, row := r.Intn(surface.CellDivisions), r.Intn(surface.CellDivisions)
		if used[row*surface.CellDivisions+col] {
			continue
		}
		used[row*surface.CellDivisions+col] = true
		pts = append(pts, pt(fmt.Sprintf("%d-%d", row, col), (float64(col)+0.5)*cw, (float64(row)+0.5)*ch))
	}
	return pts
}

func TestWrapOptions(t *testing.T) {
	surf := surface.Default()
	cases := []struct {
		name string
		ax   float64
		bx   float64
		want []surface.WrapSide
	}{
		{"NearSeam", 10, 280, []surface.WrapSide{surface.WrapLeft, surface.WrapNone}},
		{"NearSeamReversed", 280, 10, []surface.WrapSide{surface.WrapRight, surface.WrapNone}},
		{"Central", 100, 150, []surface.WrapSide{surface.WrapNone, surface.WrapLeft}},
		{"SameColumn", 40, 40, []surface.WrapSide{surface.WrapNone, surface.WrapLeft}},
		{"HalfWidthTiePrefersWrap", 0, 148.5, []surface.WrapSide{surface.WrapLeft, surface.WrapNone}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := autoconnect.WrapOptions(surf, pt("a", tc.ax, 50), pt("b", tc.bx, 80), autoconnect.DefaultWrapTie)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildCandidates(t *testing.T) {
	surf := surface.Default()
	cfg := autoconnect.DefaultConfig(surf)
	pts := []surface.Point{pt("a", 20, 30), pt("b", 270, 60), pt("c", 150, 190)}

	cands := autoconnect.BuildCandidates(surf, pts, cfg, rand.New(rand.NewSource(3)))
	require.Len(t, cands, 6)

	for _, c := range cands {
		a, b := c.Start, c.End
		var want float64
		switch c.Wrap {
		case surface.WrapNone:
			want = math.Hypot(b.X-a.X, b.Y-a.Y)
		case surface.WrapLeft:
			want = math.Hypot(b.X-surf.Width-a.X, b.Y-a.Y)
		case surface.WrapRight:
			want = math.Hypot(b.X+surf.Width-a.X, b.Y-a.Y)
		}
		assert.InDelta(t, want, c.Length, 1e-9, "%s %s", c.Pair, c.Wrap)
		assert.Equal(t, surface.PairKey(a.Key, b.Key), c.Pair)
		assert.InDelta(t, 0, surface.AngleDiff(c.AngleFromStart+math.Pi, c.AngleFromEnd), 1e-9)
		assert.Equal(t, autoconnect.PhaseNone, c.Phase)
		assert.NotEmpty(t, c.HitSegments(surf))
	}

	cfg.Wrap = false
	direct := autoconnect.BuildCandidates(surf, pts, cfg, rand.New(rand.NewSource(3)))
	require.Len(t, direct, 3)
	for _, c := range direct {
		assert.Equal(t, surface.WrapNone, c.Wrap)
	}
}

func TestConnect_TwoPoints(t *testing.T) {
	surf := surface.Default()
	res := autoconnect.Connect(surf, []surface.Point{pt("a", 50, 50), pt("b", 120, 90)}, autoconnect.WithSeed(5))

	require.Len(t, res.Network.Edges, 1)
	assert.Equal(t, 1, res.Network.Degree("a"))
	assert.Equal(t, 1, res.Network.Degree("b"))
	assert.Equal(t, 1, res.Stats.Components)
	assert.Equal(t, autoconnect.PhaseSpanning, res.Network.Edges[0].Phase)
}

func TestConnect_TooFewPoints(t *testing.T) {
	surf := surface.Default()
	cases := map[string][]surface.Point{
		"None":    nil,
		"One":     {pt("a", 10, 10)},
		"Hotspot": {pt("a", 10, 10), {Key: "h", X: 80, Y: 80, Weight: 2}},
	}
	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			res := autoconnect.Connect(surf, pts, autoconnect.WithSeed(1))
			assert.Empty(t, res.Network.Edges)
			assert.Empty(t, res.Boundaries())
			assert.Equal(t, 0, res.Attempts)
		})
	}
}

func fourCorners(surf surface.Surface) []surface.Point {
	w, h := surf.Width, surf.Height
	return []surface.Point{
		pt("tl", 0.1*w, 0.1*h),
		pt("tr", 0.9*w, 0.1*h),
		pt("bl", 0.1*w, 0.9*h),
		pt("br", 0.9*w, 0.9*h),
	}
}

func TestConnect_FourCorners(t *testing.T) {
	surf := surface.Default()
	pts := fourCorners(surf)
	for seed := int64(1); seed <= 19; seed++ {
		res := autoconnect.Connect(surf, pts, autoconnect.WithSeed(seed))
		assert.Equal(t, 1, res.Stats.Components, "seed %d", seed)
		assert.Equal(t, 0, res.Stats.Crossings, "seed %d", seed)
		assert.Equal(t, 0, res.Stats.UnderTwo, "seed %d", seed)
		for _, p := range pts {
			assert.GreaterOrEqual(t, res.Network.Degree(p.Key), 2, "seed %d point %s", seed, p.Key)
		}
		// Four points can never meet the early-exit bar (degree 3 on three
		// of them forces K4 and its four triangles), so the full budget
		// round(10 + 4*0.35) is spent.
		assert.Equal(t, 11, res.Attempts)
	}
}

// TestConnect_FourCornersNoWrap pins the advisory result on a sheet that
// does not wrap: the relaxed degree-3 fill completes K4, and on a flat
// sheet the two diagonals of a convex quadrilateral must cross.
func TestConnect_FourCornersNoWrap(t *testing.T) {
	surf := surface.Default()
	pts := fourCorners(surf)
	for seed := int64(1); seed <= 19; seed++ {
		res := autoconnect.Connect(surf, pts, autoconnect.WithSeed(seed), autoconnect.WithWrap(false))
		assert.Equal(t, 1, res.Stats.Components, "seed %d", seed)
		assert.Equal(t, 0, res.Stats.UnderTwo, "seed %d", seed)
		assert.Equal(t, 1, res.Stats.Crossings, "seed %d", seed)
		assert.Equal(t, 4, res.Stats.Triangles, "seed %d", seed)
		for _, e := range res.Network.Edges {
			assert.Equal(t, surface.WrapNone, e.Wrap, "seed %d edge %s", seed, e.Pair)
		}
	}
}

func TestConnect_AvoidsObstacle(t *testing.T) {
	surf := surface.Default()
	wall := boundary.Boundary{
		Start: geom.Coord{X: surf.Width / 2, Y: 0},
		End:   geom.Coord{X: surf.Width / 2, Y: surf.Height},
	}
	res := autoconnect.Connect(surf,
		[]surface.Point{pt("a", 100, 100), pt("b", 200, 100)},
		autoconnect.WithSeed(4),
		autoconnect.WithObstacles([]boundary.Boundary{wall}),
	)
	require.Len(t, res.Network.Edges, 1)
	e := res.Network.Edges[0]
	assert.Equal(t, surface.WrapLeft, e.Wrap)
	assert.False(t, surface.AnyCrossing(e.HitSegments(surf), wall.HitSegments(surf)))
}

func TestConnect_Deterministic(t *testing.T) {
	surf := surface.Default()
	pts := rollPoints(surf, 14, rand.New(rand.NewSource(21)))

	a := autoconnect.Connect(surf, pts, autoconnect.WithSeed(8))
	b := autoconnect.Connect(surf, pts, autoconnect.WithSeed(8))
	require.Equal(t, len(a.Network.Edges), len(b.Network.Edges))
	for i := range a.Network.Edges {
		assert.Equal(t, a.Network.Edges[i].Pair, b.Network.Edges[i].Pair)
		assert.Equal(t, a.Network.Edges[i].Wrap, b.Network.Edges[i].Wrap)
		assert.Equal(t, a.Network.Edges[i].Curve, b.Network.Edges[i].Curve)
	}
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Attempts, b.Attempts)
}

// TestBuild_Invariants checks the structural guarantees over many random
// layouts and seeds.
func TestBuild_Invariants(t *testing.T) {
	surf := surface.Default()
	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		pts := autoconnect.ConnectablePoints(rollPoints(surf, 4+r.Intn(16), r))

		cfg := autoconnect.DefaultConfig(surf)
		prev := len(pts)
		monotone := true
		autoconnect.WithOnAccept(func(_ *autoconnect.Candidate, comps int) {
			if comps > prev {
				monotone = false
			}
			prev = comps
		})(&cfg)

		net := autoconnect.Build(surf, pts, cfg, rand.New(rand.NewSource(seed*31)))
		assert.True(t, monotone, "seed %d: component count rose", seed)

		// Degree cap and bookkeeping.
		deg := make([]int, len(pts))
		uf := connectivity.New(len(pts))
		pairs := map[string]bool{}
		for _, e := range net.Edges {
			require.False(t, pairs[e.Pair], "seed %d: pair %s accepted twice", seed, e.Pair)
			pairs[e.Pair] = true
			deg[e.StartIndex]++
			deg[e.EndIndex]++
			uf.Union(e.StartIndex, e.EndIndex)
			assert.NotEqual(t, autoconnect.PhaseNone, e.Phase)
		}
		assert.Equal(t, deg, net.Degrees, "seed %d", seed)
		for i, d := range deg {
			assert.LessOrEqual(t, d, autoconnect.DefaultMaxDegree, "seed %d point %d", seed, i)
		}
		assert.Equal(t, uf.Components(), net.Components, "seed %d", seed)

		// Strict-phase edges cross nothing accepted before them.
		for i, e := range net.Edges {
			if !e.Phase.Strict() {
				continue
			}
			for _, prior := range net.Edges[:i] {
				if e.SharesEndpoint(prior) {
					continue
				}
				assert.False(t,
					surface.AnyCrossing(e.HitSegments(surf), prior.HitSegments(surf)),
					"seed %d: strict edge %s crosses %s", seed, e.Pair, prior.Pair)
			}
		}

		stats := autoconnect.Evaluate(surf, net, cfg)
		assert.Equal(t, net.Triangles, stats.Triangles, "seed %d", seed)
	}
}

func TestConnect_ResultConsistency(t *testing.T) {
	surf := surface.Default()
	pts := rollPoints(surf, 10, rand.New(rand.NewSource(2)))
	res := autoconnect.Connect(surf, pts, autoconnect.WithSeed(2))

	assert.Equal(t, autoconnect.Cost(res.Stats), res.Cost)
	assert.GreaterOrEqual(t, res.Attempts, 1)
	assert.LessOrEqual(t, res.Attempts, 14)

	bs := res.Boundaries()
	require.Len(t, bs, len(res.Network.Edges))
	for i, b := range bs {
		e := res.Network.Edges[i]
		assert.Equal(t, e.Start.Key, b.StartKey)
		assert.Equal(t, e.End.Key, b.EndKey)
		assert.Equal(t, e.Wrap, b.Wrap)
		assert.Equal(t, boundary.StyleBoundary, b.Style)
		assert.Equal(t, e.HitSegments(surf), b.HitSegments(surf))
	}
}

func TestConnect_AttemptBounds(t *testing.T) {
	surf := surface.Default()
	pts := rollPoints(surf, 6, rand.New(rand.NewSource(9)))
	res := autoconnect.Connect(surf, pts, autoconnect.WithSeed(3), autoconnect.WithAttempts(1, 1))
	assert.Equal(t, 1, res.Attempts)
}

func TestConnectablePoints(t *testing.T) {
	in := []surface.Point{
		pt("c", 50, 20),
		{Key: "h", X: 5, Y: 5, Weight: 3},
		pt("b", 10, 20),
		pt("a", 90, 10),
	}
	out := autoconnect.ConnectablePoints(in)
	keys := make([]string, 0, len(out))
	for _, p := range out {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestStats_GoodEnough(t *testing.T) {
	good := autoconnect.Stats{Components: 1, Triangles: 2, UnderThree: 1}
	assert.True(t, good.GoodEnough())

	for name, s := range map[string]autoconnect.Stats{
		"TwoComponents": {Components: 2},
		"Isolated":      {Components: 1, Isolated: 1},
		"UnderTwo":      {Components: 1, UnderTwo: 1},
		"Crossing":      {Components: 1, Crossings: 1},
		"Triangles":     {Components: 1, Triangles: 3},
		"UnderThree":    {Components: 1, UnderThree: 2},
	} {
		assert.False(t, s.GoodEnough(), name)
	}
}

func TestCost_Priorities(t *testing.T) {
	base := autoconnect.Stats{Components: 1}
	assert.Equal(t, 1e9+1.44e6+1.4e7+10,
		autoconnect.Cost(autoconnect.Stats{Components: 1, Triangles: 3, TotalLength: 10}))

	worse := func(s autoconnect.Stats) float64 { return autoconnect.Cost(s) - autoconnect.Cost(base) }
	assert.Greater(t, worse(autoconnect.Stats{Components: 2}), worse(autoconnect.Stats{Components: 1, Isolated: 3}))
	assert.Greater(t, worse(autoconnect.Stats{Components: 1, Isolated: 1}), worse(autoconnect.Stats{Components: 1, UnderTwo: 3}))
	assert.Greater(t, worse(autoconnect.Stats{Components: 1, UnderTwo: 1}), worse(autoconnect.Stats{Components: 1, Crossings: 3}))
	assert.Greater(t, worse(autoconnect.Stats{Components: 1, Crossings: 1}), worse(autoconnect.Stats{Components: 1, Triangles: 3}))
	assert.Greater(t, worse(autoconnect.Stats{Components: 1, Triangles: 1}), worse(autoconnect.Stats{Components: 1, TotalLength: 400}))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { autoconnect.WithRand(nil) })
	assert.Panics(t, func() { autoconnect.WithMaxDegree(0) })
	assert.Panics(t, func() { autoconnect.WithAttempts(5, 4) })
	assert.Panics(t, func() { autoconnect.WithOnAccept(nil) })
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "fill-strict", autoconnect.PhaseFillStrict.String())
	assert.True(t, autoconnect.PhaseSpanning.Strict())
	assert.False(t, autoconnect.PhaseForgiving.Strict())
}
