package surface

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Surface is the fixed-size, horizontally wrapping sheet.
type Surface struct {
	Width, Height float64
}

// New validates dimensions and returns a Surface.
func New(width, height float64) (Surface, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Surface{}, fmt.Errorf("%w: %gx%g", ErrBadDimensions, width, height)
	}
	return Surface{Width: width, Height: height}, nil
}

// Default returns the default DefaultWidth x DefaultHeight sheet.
func Default() Surface {
	return Surface{Width: DefaultWidth, Height: DefaultHeight}
}

// ShortSide returns min(Width, Height).
func (s Surface) ShortSide() float64 {
	return math.Min(s.Width, s.Height)
}

// CellSize returns the smaller side of one editing-grid cell.
func (s Surface) CellSize() float64 {
	return math.Min(s.Width/CellDivisions, s.Height/CellDivisions)
}

// Contains reports whether c lies on the sheet (edges inclusive).
func (s Surface) Contains(c geom.Coord) bool {
	return c.X >= 0 && c.X <= s.Width && c.Y >= 0 && c.Y <= s.Height
}

// WrapDX returns the horizontal offset with the smallest magnitude among
// dx, dx-Width and dx+Width.
func (s Surface) WrapDX(dx float64) float64 {
	adx := math.Abs(dx)
	if adx <= s.Width/2 {
		return dx
	}
	if dx > 0 {
		return dx - s.Width
	}
	return dx + s.Width
}

// Distance returns the wrap-aware Euclidean distance between a and b.
func (s Surface) Distance(a, b geom.Coord) float64 {
	return math.Hypot(s.WrapDX(b.X-a.X), b.Y-a.Y)
}

// Displacement returns the offset from a to b when the edge is drawn with
// the given wrap side: WrapLeft shifts b one sheet width to the left,
// WrapRight one sheet width to the right.
func (s Surface) Displacement(a, b geom.Coord, side WrapSide) (dx, dy float64) {
	dx = b.X - a.X
	switch side {
	case WrapLeft:
		dx -= s.Width
	case WrapRight:
		dx += s.Width
	}
	return dx, b.Y - a.Y
}

// Split returns the segments that draw the edge a->b on the sheet. A direct
// edge is one segment. A wrapped edge is cut where it meets the sheet edge:
// the first piece runs from a to that edge, the second re-enters from the
// opposite edge at the same height and ends at b.
func (s Surface) Split(a, b geom.Coord, side WrapSide) []Segment {
	if !side.Wrapped() {
		return []Segment{{A: a, B: b}}
	}
	edgeX, otherX, shiftedX := 0.0, s.Width, b.X-s.Width
	if side == WrapRight {
		edgeX, otherX, shiftedX = s.Width, 0.0, b.X+s.Width
	}
	dx := shiftedX - a.X
	if dx == 0 {
		return []Segment{{A: a, B: b}}
	}
	t := (edgeX - a.X) / dx
	y := a.Y + t*(b.Y-a.Y)
	return []Segment{
		{A: a, B: geom.Coord{X: edgeX, Y: y}},
		{A: geom.Coord{X: otherX, Y: y}, B: b},
	}
}
