package autoconnect

import (
	"fmt"

	"github.com/katalvlaran/platesketch/curve"
	"github.com/katalvlaran/platesketch/surface"
)

// Phase records which builder pass accepted an edge.
type Phase int

const (
	// PhaseNone marks a candidate that was never accepted.
	PhaseNone Phase = iota
	// PhaseSpanning is the strict tree-building pass.
	PhaseSpanning
	// PhaseForgiving joins leftover components without a crossing test.
	PhaseForgiving
	// PhaseFillStrict fills degrees while refusing crossings.
	PhaseFillStrict
	// PhaseFillRelaxed fills degrees, penalizing but allowing crossings.
	PhaseFillRelaxed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseSpanning:
		return "spanning"
	case PhaseForgiving:
		return "forgiving"
	case PhaseFillStrict:
		return "fill-strict"
	case PhaseFillRelaxed:
		return "fill-relaxed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Strict reports whether edges of this phase were checked against crossings.
func (p Phase) Strict() bool { return p == PhaseSpanning || p == PhaseFillStrict }

// Candidate is a provisional edge between two points. Once accepted its Phase
// is set and it becomes part of a Network. Candidates belong to one build
// attempt and are never shared between attempts.
type Candidate struct {
	Pair                 string
	Start, End           surface.Point
	StartIndex, EndIndex int
	Wrap                 surface.WrapSide
	Curve                curve.Curve

	Length         float64
	FillScore      float64
	TreeScore      float64
	AngleFromStart float64
	AngleFromEnd   float64

	Phase Phase

	hits []surface.Segment
}

// HitSegments returns the discretized geometry of c, computing it on first
// use.
func (c *Candidate) HitSegments(surf surface.Surface) []surface.Segment {
	if c.hits == nil {
		for _, piece := range surf.Split(c.Start.Coord(), c.End.Coord(), c.Wrap) {
			c.hits = append(c.hits, c.Curve.HitSegments(piece)...)
		}
	}
	return c.hits
}

// SharesEndpoint reports whether c and o meet at a common point.
func (c *Candidate) SharesEndpoint(o *Candidate) bool {
	return c.Start.Key == o.Start.Key || c.Start.Key == o.End.Key ||
		c.End.Key == o.Start.Key || c.End.Key == o.End.Key
}

// Other returns the index of the endpoint opposite i.
func (c *Candidate) Other(i int) int {
	if c.StartIndex == i {
		return c.EndIndex
	}
	return c.StartIndex
}

// Network is the outcome of one build.
type Network struct {
	// Points are the participating points; indices refer to this slice.
	Points []surface.Point
	// Edges are the accepted candidates in acceptance order.
	Edges []*Candidate
	// Degrees[i] is the number of edges at Points[i].
	Degrees []int
	// Components is the union-find component count after the build.
	Components int
	// Triangles is the running triangle count kept during the build.
	Triangles int
}

// Degree returns the degree of the point with the given key, or 0.
func (n Network) Degree(key string) int {
	for i, p := range n.Points {
		if p.Key == key {
			return n.Degrees[i]
		}
	}
	return 0
}

// Stats are the quality figures of a Network.
type Stats struct {
	Components  int
	Isolated    int
	UnderTwo    int
	UnderThree  int
	Crossings   int
	Triangles   int
	TotalLength float64
	LongPenalty float64
}

// GoodEnough reports whether s is acceptable without further attempts: one
// component, every point at degree 2 or more, no crossings, at most two
// triangles and at most one point under degree 3.
func (s Stats) GoodEnough() bool {
	return s.Components == 1 &&
		s.Isolated == 0 &&
		s.UnderTwo == 0 &&
		s.Crossings == 0 &&
		s.Triangles <= 2 &&
		s.UnderThree <= 1
}

// Result is the optimizer's chosen network.
type Result struct {
	Network  Network
	Stats    Stats
	Cost     float64
	Attempts int
}
