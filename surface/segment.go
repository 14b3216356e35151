package surface

import (
	"math"

	"github.com/jbeda/geom"
)

// crossEpsilon is the tolerance used by Crosses for both bounding-box
// rejection and orientation signs.
const crossEpsilon = 1e-4

// Segment is a straight piece of boundary geometry from A to B.
type Segment struct {
	A, B geom.Coord
}

// Seg is shorthand for building a Segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: geom.Coord{X: x1, Y: y1}, B: geom.Coord{X: x2, Y: y2}}
}

// Bounds returns the axis-aligned bounding box of s.
func (s Segment) Bounds() geom.Rect {
	r := geom.Rect{Min: s.A, Max: s.A}
	r.ExpandToContainCoord(s.B)
	return r
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.A.DistanceFrom(s.B)
}

// At returns the point at parameter t (0 = A, 1 = B).
func (s Segment) At(t float64) geom.Coord {
	return s.A.Plus(s.B.Minus(s.A).Times(t))
}

// Delta returns B - A.
func (s Segment) Delta() (dx, dy float64) {
	return s.B.X - s.A.X, s.B.Y - s.A.Y
}

// Crosses reports whether segments a and b intersect. Proper crossings and
// touching contacts (an endpoint lying on the other segment, collinear
// overlap) both count.
func Crosses(a, b Segment) bool {
	if !boundsOverlap(a.Bounds(), b.Bounds(), crossEpsilon) {
		return false
	}

	d1 := orient(a.A, a.B, b.A)
	d2 := orient(a.A, a.B, b.B)
	d3 := orient(b.A, b.B, a.A)
	d4 := orient(b.A, b.B, a.B)

	if opposite(d1, d2) && opposite(d3, d4) {
		return true
	}

	switch {
	case math.Abs(d1) <= crossEpsilon && onSegment(b.A, a):
		return true
	case math.Abs(d2) <= crossEpsilon && onSegment(b.B, a):
		return true
	case math.Abs(d3) <= crossEpsilon && onSegment(a.A, b):
		return true
	case math.Abs(d4) <= crossEpsilon && onSegment(a.B, b):
		return true
	}
	return false
}

// AnyCrossing reports whether any segment of as crosses any segment of bs.
func AnyCrossing(as, bs []Segment) bool {
	for i := range as {
		for j := range bs {
			if Crosses(as[i], bs[j]) {
				return true
			}
		}
	}
	return false
}

// orient returns the signed area of the triangle (p, q, r) times two.
func orient(p, q, r geom.Coord) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

func opposite(u, v float64) bool {
	return (u > crossEpsilon && v < -crossEpsilon) || (u < -crossEpsilon && v > crossEpsilon)
}

// onSegment reports whether p lies inside the bounding box of s, which for a
// collinear p means it lies on s.
func onSegment(p geom.Coord, s Segment) bool {
	return p.X >= math.Min(s.A.X, s.B.X)-crossEpsilon &&
		p.X <= math.Max(s.A.X, s.B.X)+crossEpsilon &&
		p.Y >= math.Min(s.A.Y, s.B.Y)-crossEpsilon &&
		p.Y <= math.Max(s.A.Y, s.B.Y)+crossEpsilon
}

func boundsOverlap(r1, r2 geom.Rect, eps float64) bool {
	return r1.Max.X+eps >= r2.Min.X && r2.Max.X+eps >= r1.Min.X &&
		r1.Max.Y+eps >= r2.Min.Y && r2.Max.Y+eps >= r1.Min.Y
}
