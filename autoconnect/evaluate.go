package autoconnect

import (
	"math"
	"sort"

	"github.com/katalvlaran/platesketch/surface"
)

// Evaluate computes the quality Stats of net. Crossings are counted once per
// pair of edges that do not share an endpoint; triangles are recounted from
// the final adjacency.
func Evaluate(surf surface.Surface, net Network, cfg Config) Stats {
	s := Stats{Components: net.Components}
	if len(net.Points) == 0 {
		return s
	}
	for _, d := range net.Degrees {
		if d <= 0 {
			s.Isolated++
		}
		if d < 2 {
			s.UnderTwo++
		}
		if d < 3 {
			s.UnderThree++
		}
	}
	for _, e := range net.Edges {
		s.TotalLength += e.Length
		over := math.Max(0, e.Length-cfg.StatsLongThreshold)
		s.LongPenalty += over * over
	}
	s.Crossings = countCrossings(surf, net.Edges)
	s.Triangles = countTriangles(net.Edges)
	return s
}

// Cost folds s into a scalar with the default weights.
func Cost(s Stats) float64 {
	return DefaultCostWeights().Cost(s)
}

// Cost folds s into a scalar; lower is better.
func (w CostWeights) Cost(s Stats) float64 {
	overflow := s.Triangles - w.TriangleAllowance
	if overflow < 0 {
		overflow = 0
	}
	return float64(s.Components)*w.Components +
		float64(s.Isolated)*w.Isolated +
		float64(s.UnderTwo)*w.UnderTwo +
		float64(s.Crossings)*w.Crossings +
		float64(s.Triangles)*w.Triangles +
		float64(overflow)*w.TriangleOverflow +
		float64(s.UnderThree)*w.UnderThree +
		s.LongPenalty*w.LongPenalty +
		s.TotalLength*w.Length
}

func countCrossings(surf surface.Surface, edges []*Candidate) int {
	n := 0
	for i := 0; i < len(edges); i++ {
		a := edges[i].HitSegments(surf)
		for j := i + 1; j < len(edges); j++ {
			if edges[i].SharesEndpoint(edges[j]) {
				continue
			}
			if surface.AnyCrossing(a, edges[j].HitSegments(surf)) {
				n++
			}
		}
	}
	return n
}

// countTriangles counts 3-cycles once each by only closing a->b->c with
// a < b < c in key order.
func countTriangles(edges []*Candidate) int {
	if len(edges) < 3 {
		return 0
	}
	adj := make(map[string]map[string]struct{})
	link := func(u, v string) {
		if adj[u] == nil {
			adj[u] = make(map[string]struct{})
		}
		adj[u][v] = struct{}{}
	}
	for _, e := range edges {
		link(e.Start.Key, e.End.Key)
		link(e.End.Key, e.Start.Key)
	}

	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := 0
	for _, a := range keys {
		var higher []string
		for b := range adj[a] {
			if b > a {
				higher = append(higher, b)
			}
		}
		sort.Strings(higher)
		for i, b := range higher {
			for _, c := range higher[i+1:] {
				if _, ok := adj[b][c]; ok {
					n++
				}
			}
		}
	}
	return n
}
