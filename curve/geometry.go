package curve

import (
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/surface"
)

// Points returns the polyline that draws c over seg, endpoints included.
// Line curves and degenerate segments return just the two endpoints.
func (c Curve) Points(seg surface.Segment) []geom.Coord {
	switch c.Mode {
	case ModeTectonic:
		return c.tectonicPoints(seg)
	case ModeArc, ModeS:
		ctrl, ok := c.controls(seg)
		if !ok {
			return []geom.Coord{seg.A, seg.B}
		}
		steps := arcPointSteps
		if c.Mode == ModeS {
			steps = sPointSteps
		}
		pts := make([]geom.Coord, 0, steps+1)
		pts = append(pts, seg.A)
		for i := 1; i < steps; i++ {
			pts = append(pts, ctrl.at(seg, float64(i)/float64(steps)))
		}
		return append(pts, seg.B)
	default:
		return []geom.Coord{seg.A, seg.B}
	}
}

// HitSegments discretizes c over seg into short straight pieces for
// intersection and rasterization tests.
func (c Curve) HitSegments(seg surface.Segment) []surface.Segment {
	switch c.Mode {
	case ModeTectonic:
		return polyline(c.tectonicPoints(seg))
	case ModeArc, ModeS:
		ctrl, ok := c.controls(seg)
		if !ok {
			return []surface.Segment{seg}
		}
		steps := arcHitSteps
		if c.Mode == ModeS {
			steps = sHitSteps
		}
		out := make([]surface.Segment, 0, steps)
		prev := seg.A
		for i := 1; i <= steps; i++ {
			cur := ctrl.at(seg, float64(i)/float64(steps))
			out = append(out, surface.Segment{A: prev, B: cur})
			prev = cur
		}
		return out
	default:
		return []surface.Segment{seg}
	}
}

// PathData returns an SVG path for c over seg with two-decimal coordinates.
func (c Curve) PathData(seg surface.Segment) string {
	if c.Mode == ModeTectonic {
		return polylinePath(c.tectonicPoints(seg))
	}
	var b strings.Builder
	b.WriteString("M ")
	writePair(&b, seg.A)
	ctrl, ok := c.controls(seg)
	switch {
	case !ok || (c.Mode != ModeArc && c.Mode != ModeS):
		b.WriteString(" L ")
	case c.Mode == ModeS:
		b.WriteString(" C ")
		writePair(&b, ctrl.c1)
		b.WriteByte(' ')
		writePair(&b, ctrl.c2)
		b.WriteByte(' ')
	default:
		b.WriteString(" Q ")
		writePair(&b, ctrl.c1)
		b.WriteByte(' ')
	}
	writePair(&b, seg.B)
	return b.String()
}

// Bounds returns the bounding box of the drawn polyline.
func (c Curve) Bounds(seg surface.Segment) geom.Rect {
	pts := c.Points(seg)
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

func (c Curve) tectonicPoints(seg surface.Segment) []geom.Coord {
	dx, dy := seg.Delta()
	length := math.Hypot(dx, dy)
	if length <= degenerateLength {
		return []geom.Coord{seg.A, seg.B}
	}
	tangent := geom.Coord{X: dx / length, Y: dy / length}
	normal := geom.Coord{X: -tangent.Y, Y: tangent.X}

	knots := c.KnotCount
	if knots == 0 {
		knots = evalDefaultKnots
	}
	knots = int(clamp(float64(knots), minKnots, evalMaxKnots))
	rough := clamp(orDefault(c.Roughness, evalDefaultRough), evalRoughMin, evalRoughMax)
	bend := clamp(c.BroadBend, -evalBendMax, evalBendMax)
	along := clamp(orDefault(c.AlongScale, evalDefaultAlong), 0, evalAlongMax)

	pts := make([]geom.Coord, 0, knots+2)
	pts = append(pts, seg.A)
	prevT := 0.0
	for i := 1; i <= knots; i++ {
		var k Knot
		if i-1 < len(c.Knots) {
			k = c.Knots[i-1]
		}
		span := float64(knots + 1)
		jitter := clamp(k.T, -evalJitterMax, evalJitterMax)
		t := float64(i)/span + jitter/span
		t = clamp(t, prevT+knotMinAdvance, 1-float64(knots-i+1)*knotTailReserve)
		prevT = t

		normalOffset := length * (bend*math.Sin(t*math.Pi) + clamp(k.N, -1, 1)*rough)
		alongOffset := length * clamp(k.A, -1, 1) * along
		p := seg.At(t).
			Plus(normal.Times(normalOffset)).
			Plus(tangent.Times(alongOffset))
		pts = append(pts, p)
	}
	return append(pts, seg.B)
}

// controls holds the Bézier control points of an arc (c1) or s (c1, c2)
// curve.
type controls struct {
	cubic  bool
	c1, c2 geom.Coord
}

func (c Curve) controls(seg surface.Segment) (controls, bool) {
	dx, dy := seg.Delta()
	length := math.Hypot(dx, dy)
	if length <= degenerateLength {
		return controls{}, false
	}
	normal := geom.Coord{X: -dy / length, Y: dx / length}
	side := 1.0
	if c.Side == -1 {
		side = -1
	}
	amp := length * clamp(orDefault(c.Strength, arcDefaultStr), arcStrengthMin, arcStrengthMax)

	if c.Mode == ModeS {
		split := clamp(orDefault(c.Split, sDefaultSplit), sSplitMin, sSplitMax)
		skew := clamp(orDefault(c.Skew, sDefaultSkew), sSkewMin, sSkewMax)
		return controls{
			cubic: true,
			c1:    seg.At(split).Plus(normal.Times(amp * side)),
			c2:    seg.At(1 - split).Minus(normal.Times(amp * side * skew)),
		}, true
	}
	t := clamp(0.5+clamp(c.Bias, -arcBiasMax, arcBiasMax), arcApexMin, arcApexMax)
	return controls{c1: seg.At(t).Plus(normal.Times(amp * side))}, true
}

func (k controls) at(seg surface.Segment, t float64) geom.Coord {
	u := 1 - t
	if k.cubic {
		return seg.A.Times(u * u * u).
			Plus(k.c1.Times(3 * u * u * t)).
			Plus(k.c2.Times(3 * u * t * t)).
			Plus(seg.B.Times(t * t * t))
	}
	return seg.A.Times(u * u).
		Plus(k.c1.Times(2 * u * t)).
		Plus(seg.B.Times(t * t))
}

func polyline(pts []geom.Coord) []surface.Segment {
	if len(pts) < 2 {
		return nil
	}
	out := make([]surface.Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		out = append(out, surface.Segment{A: pts[i-1], B: pts[i]})
	}
	return out
}

func polylinePath(pts []geom.Coord) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		writePair(&b, p)
	}
	return b.String()
}

func writePair(b *strings.Builder, p geom.Coord) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', 2, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
