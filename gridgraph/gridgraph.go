package gridgraph

import "fmt"

// NewGrid returns an empty cols×rows grid.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, cols, rows)
	}
	return &Grid{
		Cols:        cols,
		Rows:        rows,
		Barrier:     make([]bool, cols*rows),
		SeamBlocked: make([]bool, rows),
	}, nil
}

// FromMask builds a grid from an existing row-major barrier mask. The mask
// is copied.
func FromMask(cols, rows int, mask []bool) (*Grid, error) {
	g, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	if len(mask) != cols*rows {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMaskSize, len(mask), cols*rows)
	}
	copy(g.Barrier, mask)
	return g, nil
}

// Len returns Cols×Rows.
func (g *Grid) Len() int { return g.Cols * g.Rows }

// Index maps (col,row) to a row-major index.
func (g *Grid) Index(col, row int) int { return row*g.Cols + col }

// Coordinate converts a row-major index back to (col,row).
func (g *Grid) Coordinate(idx int) (col, row int) { return idx % g.Cols, idx / g.Cols }

// InBounds reports whether (col,row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Mark sets (col,row) as a barrier cell. Out-of-range cells are ignored.
func (g *Grid) Mark(col, row int) {
	if g.InBounds(col, row) {
		g.Barrier[g.Index(col, row)] = true
	}
}

// IsBarrier reports whether idx is a barrier cell.
func (g *Grid) IsBarrier(idx int) bool { return g.Barrier[idx] }

// BlockSeam stops horizontal wrapping on rows [row-radius, row+radius],
// clipped to the grid.
func (g *Grid) BlockSeam(row, radius int) {
	for r := row - radius; r <= row+radius; r++ {
		if r >= 0 && r < g.Rows {
			g.SeamBlocked[r] = true
		}
	}
}

// BarrierCount returns the number of barrier cells.
func (g *Grid) BarrierCount() int {
	n := 0
	for _, b := range g.Barrier {
		if b {
			n++
		}
	}
	return n
}

// Neighbors appends the 4-connected neighbours of idx to dst and returns it.
// Horizontal neighbours wrap around unless the row is seam-blocked; vertical
// neighbours never wrap.
func (g *Grid) Neighbors(idx int, dst []int) []int {
	col, row := g.Coordinate(idx)
	if row > 0 {
		dst = append(dst, idx-g.Cols)
	}
	if row < g.Rows-1 {
		dst = append(dst, idx+g.Cols)
	}
	wrap := !g.SeamBlocked[row]
	switch {
	case col > 0:
		dst = append(dst, idx-1)
	case wrap && g.Cols > 1:
		dst = append(dst, g.Index(g.Cols-1, row))
	}
	switch {
	case col < g.Cols-1:
		dst = append(dst, idx+1)
	case wrap && g.Cols > 1:
		dst = append(dst, g.Index(0, row))
	}
	return dst
}
