package surface

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// ErrBadDimensions indicates a surface with a non-positive width or height.
var ErrBadDimensions = errors.New("surface: width and height must be positive")

// Default sheet size (landscape A4 in millimetres).
const (
	DefaultWidth  = 297.0
	DefaultHeight = 210.0
)

// CellDivisions is the number of editing-grid cells along each side. Plate
// points are rolled onto this grid, and many tuned distances are multiples
// of one cell.
const CellDivisions = 20

// WrapSide selects how an edge leaves the sheet, if at all.
type WrapSide int

const (
	// WrapNone draws the edge directly between its endpoints.
	WrapNone WrapSide = iota
	// WrapLeft continues the edge past the left edge (x = 0).
	WrapLeft
	// WrapRight continues the edge past the right edge (x = Width).
	WrapRight
)

// String implements fmt.Stringer.
func (w WrapSide) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapLeft:
		return "left"
	case WrapRight:
		return "right"
	default:
		return fmt.Sprintf("WrapSide(%d)", int(w))
	}
}

// Wrapped reports whether the edge crosses the seam.
func (w WrapSide) Wrapped() bool { return w == WrapLeft || w == WrapRight }

// Point is a marked plate-center point supplied by the point-rolling
// collaborator. Weight counts how many times the cell was rolled; a point
// rolled more than once is a hotspot and does not take part in boundary
// generation.
type Point struct {
	Key    string
	X, Y   float64
	Weight int
}

// Connectable reports whether the point participates in edge generation.
func (p Point) Connectable() bool { return p.Weight <= 1 }

// Coord returns the point position as a geom.Coord.
func (p Point) Coord() geom.Coord { return geom.Coord{X: p.X, Y: p.Y} }

// PairKey returns an order-independent identifier for the unordered pair
// {a, b}.
func PairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}
