package autoconnect

import (
	"sort"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/surface"
)

// ConnectablePoints drops hotspots and orders the rest by row, then column,
// then key, so candidate enumeration does not depend on input order.
func ConnectablePoints(points []surface.Point) []surface.Point {
	out := make([]surface.Point, 0, len(points))
	for _, p := range points {
		if p.Connectable() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Connect builds the best boundary network it can find over the connectable
// points. It never fails: with fewer than two connectable points it returns
// an empty network, and when no attempt is GoodEnough it returns the
// cheapest one.
func Connect(surf surface.Surface, points []surface.Point, opts ...Option) Result {
	cfg := DefaultConfig(surf)
	for _, opt := range opts {
		opt(&cfg)
	}
	pts := ConnectablePoints(points)

	if len(pts) < 2 {
		net := Build(surf, pts, cfg, nil)
		stats := Evaluate(surf, net, cfg)
		return Result{Network: net, Stats: stats, Cost: cfg.Weights.Cost(stats)}
	}

	base := cfg.Rand()
	obstacles := resolveObstacles(surf, cfg.Obstacles)
	budget := cfg.attempts(len(pts))

	log := Logger()
	var best Result
	for attempt := 0; attempt < budget; attempt++ {
		rng := attemptRand(base, uint64(attempt))
		net := newBuilder(surf, pts, cfg, rng, obstacles).run()
		stats := Evaluate(surf, net, cfg)
		cost := cfg.Weights.Cost(stats)
		log.Debug("autoconnect: attempt",
			"attempt", attempt,
			"crossings", stats.Crossings,
			"components", stats.Components,
			"isolated", stats.Isolated,
			"cost", cost)
		if attempt == 0 || cost < best.Cost {
			best = Result{Network: net, Stats: stats, Cost: cost}
		}
		best.Attempts = attempt + 1
		if stats.GoodEnough() {
			break
		}
	}
	log.Info("autoconnect: done",
		"points", len(pts),
		"edges", len(best.Network.Edges),
		"attempts", best.Attempts,
		"cost", best.Cost)
	return best
}

// Boundaries converts the accepted edges into permanent boundary records.
func (r Result) Boundaries() []boundary.Boundary {
	out := make([]boundary.Boundary, 0, len(r.Network.Edges))
	for _, e := range r.Network.Edges {
		out = append(out, boundary.Boundary{
			StartKey: e.Start.Key,
			EndKey:   e.End.Key,
			Start:    e.Start.Coord(),
			End:      e.End.Coord(),
			Wrap:     e.Wrap,
			Style:    boundary.StyleBoundary,
			Curve:    e.Curve.Clone(),
		})
	}
	return out
}
