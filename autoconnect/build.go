package autoconnect

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/connectivity"
	"github.com/katalvlaran/platesketch/surface"
)

// obstacle is a pre-existing boundary with its geometry resolved once.
type obstacle struct {
	b    boundary.Boundary
	hits []surface.Segment
}

// builder is the working state of one build attempt.
type builder struct {
	surf      surface.Surface
	cfg       Config
	rng       *rand.Rand
	points    []surface.Point
	tr        *connectivity.Tracker
	pairs     map[string]struct{}
	accepted  []*Candidate
	byNode    [][]*Candidate
	obstacles []obstacle
}

// Build runs one randomized construction over points. Fewer than two points
// yield an empty network whose component count equals len(points). A nil
// rng selects the default seed.
//
// Steps:
//  1. Build candidates with fresh randomness.
//  2. Spanning pass in ascending tree score: accept edges that join two
//     components without exceeding the degree cap or crossing anything.
//  3. Forgiving pass over the same order: join leftover components even when
//     that crosses.
//  4. Fill toward degree 2, then 3, refusing crossings.
//  5. If some point is still under 2 (resp. 3), repeat that target while
//     only penalizing crossings.
func Build(surf surface.Surface, points []surface.Point, cfg Config, rng *rand.Rand) Network {
	if len(points) < 2 {
		return Network{
			Points:     points,
			Degrees:    make([]int, len(points)),
			Components: len(points),
		}
	}
	if rng == nil {
		rng = newRand(0)
	}
	return newBuilder(surf, points, cfg, rng, resolveObstacles(surf, cfg.Obstacles)).run()
}

func resolveObstacles(surf surface.Surface, bs []boundary.Boundary) []obstacle {
	out := make([]obstacle, 0, len(bs))
	for _, b := range bs {
		out = append(out, obstacle{b: b, hits: b.HitSegments(surf)})
	}
	return out
}

func newBuilder(surf surface.Surface, points []surface.Point, cfg Config, rng *rand.Rand, obs []obstacle) *builder {
	b := &builder{
		surf:      surf,
		cfg:       cfg,
		rng:       rng,
		points:    points,
		tr:        connectivity.NewTracker(len(points)),
		pairs:     make(map[string]struct{}),
		byNode:    make([][]*Candidate, len(points)),
		obstacles: obs,
	}
	return b
}

func (b *builder) run() Network {
	cands := BuildCandidates(b.surf, b.points, b.cfg, b.rng)
	for _, c := range cands {
		b.byNode[c.StartIndex] = append(b.byNode[c.StartIndex], c)
		b.byNode[c.EndIndex] = append(b.byNode[c.EndIndex], c)
	}

	tree := append([]*Candidate(nil), cands...)
	sort.SliceStable(tree, func(i, j int) bool { return tree[i].TreeScore < tree[j].TreeScore })

	b.span(tree, PhaseSpanning)
	b.span(tree, PhaseForgiving)

	b.fill(2, true)
	b.fill(3, true)
	if b.anyUnder(2) {
		b.fill(2, false)
	}
	if b.anyUnder(3) {
		b.fill(3, false)
	}

	return Network{
		Points:     b.points,
		Edges:      b.accepted,
		Degrees:    b.tr.Degrees(),
		Components: b.tr.Components(),
		Triangles:  b.tr.Triangles(),
	}
}

// span walks tree in order and accepts every edge that links two components.
// Only PhaseSpanning checks crossings.
func (b *builder) span(tree []*Candidate, phase Phase) {
	for _, c := range tree {
		if b.taken(c) || b.tr.Connected(c.StartIndex, c.EndIndex) || b.capped(c) {
			continue
		}
		if phase == PhaseSpanning && b.crosses(c) {
			continue
		}
		b.accept(c, phase)
	}
}

// fill raises point degrees toward target, one edge per point per round,
// until a round changes nothing or the safety budget runs out.
func (b *builder) fill(target int, strict bool) {
	phase := PhaseFillRelaxed
	if strict {
		phase = PhaseFillStrict
	}
	order := make([]int, len(b.points))
	safety := len(b.points) * b.cfg.MaxDegree * b.cfg.SafetyFactor

	for changed := true; changed && safety > 0; safety-- {
		changed = false
		shuffledOrder(order, b.rng)
		sort.SliceStable(order, func(i, j int) bool {
			return b.tr.Degree(order[i]) < b.tr.Degree(order[j])
		})

		for _, node := range order {
			deg := b.tr.Degree(node)
			if deg >= target || deg >= b.cfg.MaxDegree {
				continue
			}
			if c := b.pick(node, target, strict); c != nil {
				b.accept(c, phase)
				changed = true
			}
		}
	}
}

// pick returns the lowest-scoring legal candidate incident to node, or nil.
func (b *builder) pick(node, target int, strict bool) *Candidate {
	var (
		best      *Candidate
		bestScore float64
	)
	for _, c := range b.byNode[node] {
		if b.taken(c) || b.capped(c) {
			continue
		}
		other := c.Other(node)
		otherDeg := b.tr.Degree(other)
		score := c.FillScore

		if otherDeg < target {
			score -= b.cfg.DeficientBonus
		} else {
			score += b.cfg.SaturatedPenalty
		}
		if otherDeg == 0 {
			score -= b.cfg.IsolatedBonus
		}

		nodeAngle, otherAngle := c.AngleFromStart, c.AngleFromEnd
		if c.StartIndex != node {
			nodeAngle, otherAngle = otherAngle, nodeAngle
		}
		score += b.tr.AnglePenalty(node, nodeAngle, b.cfg.AngleThreshold, b.cfg.AngleScale) * b.cfg.NodeAngleWeight
		score += b.tr.AnglePenalty(other, otherAngle, b.cfg.AngleThreshold, b.cfg.AngleScale) * b.cfg.OtherAngleWeight

		if !b.tr.Connected(c.StartIndex, c.EndIndex) {
			score -= b.cfg.MergeBonus
		}

		if b.crosses(c) {
			if strict {
				continue
			}
			score += b.cfg.RelaxedCrossPenalty
		}

		if delta := b.tr.SharedNeighbors(c.StartIndex, c.EndIndex); delta > 0 {
			overflow := b.tr.Triangles() + delta - b.cfg.TriangleAllowance
			if overflow < 0 {
				overflow = 0
			}
			score += float64(delta)*b.cfg.TrianglePenalty + float64(overflow)*b.cfg.TriangleOverflow
		}

		score += b.rng.Float64() * b.cfg.PickJitter
		if best == nil || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func (b *builder) accept(c *Candidate, phase Phase) {
	c.HitSegments(b.surf)
	c.Phase = phase
	b.accepted = append(b.accepted, c)
	b.pairs[c.Pair] = struct{}{}
	b.tr.Accept(connectivity.Link{
		From:      c.StartIndex,
		To:        c.EndIndex,
		AngleFrom: c.AngleFromStart,
		AngleTo:   c.AngleFromEnd,
	})
	if b.cfg.OnAccept != nil {
		b.cfg.OnAccept(c, b.tr.Components())
	}
}

func (b *builder) taken(c *Candidate) bool {
	_, ok := b.pairs[c.Pair]
	return ok
}

func (b *builder) capped(c *Candidate) bool {
	return b.tr.Degree(c.StartIndex) >= b.cfg.MaxDegree || b.tr.Degree(c.EndIndex) >= b.cfg.MaxDegree
}

func (b *builder) anyUnder(target int) bool {
	for i := range b.points {
		if b.tr.Degree(i) < target {
			return true
		}
	}
	return false
}

// crosses reports whether c crosses an accepted edge or an obstacle it does
// not share an endpoint with.
func (b *builder) crosses(c *Candidate) bool {
	hits := c.HitSegments(b.surf)
	for _, e := range b.accepted {
		if c.SharesEndpoint(e) {
			continue
		}
		if surface.AnyCrossing(hits, e.HitSegments(b.surf)) {
			return true
		}
	}
	for _, o := range b.obstacles {
		if o.b.Touches(c.Start.Key) || o.b.Touches(c.End.Key) {
			continue
		}
		if surface.AnyCrossing(hits, o.hits) {
			return true
		}
	}
	return false
}
