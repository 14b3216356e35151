package regions

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/gridgraph"
	"github.com/katalvlaran/platesketch/surface"
)

// centroidEpsilon is the smallest circular-mean vector treated as having a
// direction.
const centroidEpsilon = 1e-4

// Region is one connected set of free sample cells.
type Region struct {
	// Cells are row-major sample-grid indices in flood-fill order.
	Cells []int
	Size  int
	// MeanX is the circular mean of cell-centre x; MeanY the arithmetic mean.
	MeanX, MeanY float64
	// Representative is the centre of RepresentativeCell, the member cell
	// farthest from any barrier.
	Representative     geom.Coord
	RepresentativeCell int
	// Distance is the barrier distance of RepresentativeCell.
	Distance int
}

// Segment flood-fills g and describes every region, unfiltered, in the order
// their first cell appears row by row.
func Segment(surf surface.Surface, g *gridgraph.Grid, dist []int) []Region {
	cw := surf.Width / float64(g.Cols)
	ch := surf.Height / float64(g.Rows)
	centre := func(idx int) geom.Coord {
		col, row := g.Coordinate(idx)
		return geom.Coord{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
	}

	comps := g.ConnectedComponents()
	out := make([]Region, 0, len(comps))
	for _, cells := range comps {
		r := Region{Cells: cells, Size: len(cells)}

		var sumSin, sumCos, sumY float64
		for _, idx := range cells {
			c := centre(idx)
			angle := c.X / surf.Width * 2 * math.Pi
			sumSin += math.Sin(angle)
			sumCos += math.Cos(angle)
			sumY += c.Y
		}
		r.MeanX = surf.Width / 2
		if math.Abs(sumSin) > centroidEpsilon || math.Abs(sumCos) > centroidEpsilon {
			angle := math.Atan2(sumSin, sumCos)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			r.MeanX = angle / (2 * math.Pi) * surf.Width
		}
		r.MeanY = sumY / float64(len(cells))

		mean := geom.Coord{X: r.MeanX, Y: r.MeanY}
		best, bestDist, bestTie := cells[0], -1, math.Inf(1)
		for _, idx := range cells {
			d := dist[idx]
			tie := wrapDistSq(surf, centre(idx), mean)
			if d > bestDist || (d == bestDist && tie < bestTie) {
				best, bestDist, bestTie = idx, d, tie
			}
		}
		r.RepresentativeCell = best
		r.Representative = centre(best)
		r.Distance = bestDist
		out = append(out, r)
	}
	return out
}

// wrapDistSq is the squared distance between a and b with x measured the
// short way around the seam.
func wrapDistSq(surf surface.Surface, a, b geom.Coord) float64 {
	dx := math.Abs(a.X - b.X)
	dx = math.Min(dx, surf.Width-dx)
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
