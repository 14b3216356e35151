package boundary

import (
	"fmt"
	"strings"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/curve"
	"github.com/katalvlaran/platesketch/surface"
)

// Style is the plate-boundary kind used when rendering.
type Style int

const (
	// StyleBoundary is a generic boundary.
	StyleBoundary Style = iota
	// StyleDivergent marks plates moving apart.
	StyleDivergent
	// StyleConvergent marks plates moving together.
	StyleConvergent
	// StyleOblique marks a transform or oblique boundary.
	StyleOblique
)

// String implements fmt.Stringer.
func (s Style) String() string {
	switch s {
	case StyleBoundary:
		return "boundary"
	case StyleDivergent:
		return "divergent"
	case StyleConvergent:
		return "convergent"
	case StyleOblique:
		return "oblique"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Boundary is one drawn plate boundary.
type Boundary struct {
	StartKey, EndKey string
	Start, End       geom.Coord
	Wrap             surface.WrapSide
	Style            Style
	Curve            curve.Curve
}

// Pieces returns the straight on-sheet pieces of b before shaping.
func (b Boundary) Pieces(surf surface.Surface) []surface.Segment {
	return surf.Split(b.Start, b.End, b.Wrap)
}

// HitSegments returns the discretized geometry of b.
func (b Boundary) HitSegments(surf surface.Surface) []surface.Segment {
	var out []surface.Segment
	for _, piece := range b.Pieces(surf) {
		out = append(out, b.Curve.HitSegments(piece)...)
	}
	return out
}

// PathData returns the SVG path for b, one subpath per piece.
func (b Boundary) PathData(surf surface.Surface) string {
	pieces := b.Pieces(surf)
	parts := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		parts = append(parts, b.Curve.PathData(piece))
	}
	return strings.Join(parts, " ")
}

// Touches reports whether b ends at the point with the given key.
func (b Boundary) Touches(key string) bool {
	return key != "" && (b.StartKey == key || b.EndKey == key)
}

// SharesEndpoint reports whether a and b meet at a common keyed point.
// Unkeyed (freehand) endpoints never match.
func SharesEndpoint(a, b Boundary) bool {
	return a.Touches(b.StartKey) || a.Touches(b.EndKey)
}

// CollectHitSegments flattens the hit segments of every boundary.
func CollectHitSegments(surf surface.Surface, bs []Boundary) []surface.Segment {
	var out []surface.Segment
	for i := range bs {
		out = append(out, bs[i].HitSegments(surf)...)
	}
	return out
}
