package connectivity

import (
	"math"
	"sort"

	"github.com/katalvlaran/platesketch/surface"
)

// Link is one accepted edge as seen by the tracker: the two point indices
// and the bearing of the edge leaving each of them.
type Link struct {
	From, To           int
	AngleFrom, AngleTo float64
}

// Tracker is the mutable connectivity state of one network build.
// It is not safe for concurrent use.
type Tracker struct {
	uf        *UnionFind
	degree    []int
	angles    [][]float64
	adj       []map[int]struct{}
	triangles int
}

// NewTracker returns a Tracker over n isolated points.
func NewTracker(n int) *Tracker {
	if n < 0 {
		n = 0
	}
	t := &Tracker{
		uf:     New(n),
		degree: make([]int, n),
		angles: make([][]float64, n),
		adj:    make([]map[int]struct{}, n),
	}
	for i := range t.adj {
		t.adj[i] = make(map[int]struct{})
	}
	return t
}

// Accept records l and returns the number of triangles it closed.
//
// Steps:
//  1. Bump both degrees.
//  2. Append each endpoint's outgoing bearing.
//  3. Count third points already adjacent to both endpoints; each closes one
//     new triangle.
//  4. Add the endpoints to each other's adjacency.
//  5. Union the two sets.
func (t *Tracker) Accept(l Link) int {
	t.degree[l.From]++
	t.degree[l.To]++

	t.angles[l.From] = append(t.angles[l.From], l.AngleFrom)
	t.angles[l.To] = append(t.angles[l.To], l.AngleTo)

	delta := t.SharedNeighbors(l.From, l.To)
	t.triangles += delta

	t.adj[l.From][l.To] = struct{}{}
	t.adj[l.To][l.From] = struct{}{}

	t.uf.Union(l.From, l.To)
	return delta
}

// Len returns the number of tracked points.
func (t *Tracker) Len() int { return len(t.degree) }

// Degree returns the number of accepted links at i.
func (t *Tracker) Degree(i int) int { return t.degree[i] }

// Degrees returns a copy of every point's degree.
func (t *Tracker) Degrees() []int { return append([]int(nil), t.degree...) }

// Angles returns the outgoing bearings recorded at i. The slice is owned by
// the tracker.
func (t *Tracker) Angles(i int) []float64 { return t.angles[i] }

// Neighbors returns i's neighbours in ascending order.
func (t *Tracker) Neighbors(i int) []int {
	out := make([]int, 0, len(t.adj[i]))
	for j := range t.adj[i] {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}

// Adjacent reports whether a link between a and b was accepted.
func (t *Tracker) Adjacent(a, b int) bool {
	_, ok := t.adj[a][b]
	return ok
}

// SharedNeighbors counts points adjacent to both a and b.
func (t *Tracker) SharedNeighbors(a, b int) int {
	small, large := t.adj[a], t.adj[b]
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for k := range small {
		if _, ok := large[k]; ok {
			n++
		}
	}
	return n
}

// Triangles returns the running triangle count.
func (t *Tracker) Triangles() int { return t.triangles }

// Components returns the number of connected components.
func (t *Tracker) Components() int { return t.uf.Components() }

// Connected reports whether a and b are already joined by accepted links.
func (t *Tracker) Connected(a, b int) bool { return t.uf.Connected(a, b) }

// AnglePenalty scores how close angle is to the bearings already used at i.
// The result is 0 when every recorded bearing is at least threshold away and
// grows linearly to scale as the nearest one approaches angle.
func (t *Tracker) AnglePenalty(i int, angle, threshold, scale float64) float64 {
	if len(t.angles[i]) == 0 || threshold <= 0 {
		return 0
	}
	minDiff := math.Pi
	for _, a := range t.angles[i] {
		if d := surface.AngleDiff(angle, a); d < minDiff {
			minDiff = d
		}
	}
	if minDiff >= threshold {
		return 0
	}
	return (threshold - minDiff) / threshold * scale
}
