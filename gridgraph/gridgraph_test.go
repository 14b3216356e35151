// File: gridgraph/gridgraph_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// parse builds a grid from text rows; '#' marks a barrier cell.
func parse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g.Mark(c, r)
			}
		}
	}
	return g
}

func TestNewGrid_Errors(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrEmptyGrid) {
			t.Errorf("NewGrid(%d,%d) err = %v; want ErrEmptyGrid", dims[0], dims[1], err)
		}
	}
	if _, err := FromMask(2, 2, make([]bool, 3)); !errors.Is(err, ErrMaskSize) {
		t.Errorf("FromMask err = %v; want ErrMaskSize", err)
	}
	g, err := FromMask(2, 2, []bool{true, false, false, true})
	if err != nil {
		t.Fatalf("FromMask: %v", err)
	}
	if g.BarrierCount() != 2 {
		t.Errorf("BarrierCount = %d; want 2", g.BarrierCount())
	}
}

func TestIndexCoordinate(t *testing.T) {
	g, _ := NewGrid(7, 4)
	for idx := 0; idx < g.Len(); idx++ {
		c, r := g.Coordinate(idx)
		if !g.InBounds(c, r) || g.Index(c, r) != idx {
			t.Fatalf("round trip failed for %d -> (%d,%d)", idx, c, r)
		}
	}
	g.Mark(-1, 0)
	g.Mark(7, 0)
	if g.BarrierCount() != 0 {
		t.Errorf("out-of-range Mark changed the grid")
	}
}

func TestNeighbors(t *testing.T) {
	g, _ := NewGrid(4, 3)
	cases := []struct {
		name    string
		col     int
		row     int
		blocked bool
		want    []int
	}{
		{"Interior", 1, 1, false, []int{1, 9, 4, 6}},
		{"LeftEdgeWraps", 0, 1, false, []int{0, 8, 7, 5}},
		{"RightEdgeWraps", 3, 0, false, []int{7, 2, 0}},
		{"LeftEdgeBlocked", 0, 1, true, []int{0, 8, 5}},
		{"RightEdgeBlocked", 3, 2, true, []int{7, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for r := range g.SeamBlocked {
				g.SeamBlocked[r] = tc.blocked
			}
			got := g.Neighbors(g.Index(tc.col, tc.row), nil)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors(%d,%d) = %v; want %v", tc.col, tc.row, got, tc.want)
			}
		})
	}
}

func TestNeighbors_SingleColumn(t *testing.T) {
	g, _ := NewGrid(1, 2)
	if got := g.Neighbors(0, nil); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Neighbors = %v; want [1]", got)
	}
}

func TestBlockSeam_Clips(t *testing.T) {
	g, _ := NewGrid(3, 5)
	g.BlockSeam(0, 1)
	want := []bool{true, true, false, false, false}
	if !reflect.DeepEqual(g.SeamBlocked, want) {
		t.Errorf("SeamBlocked = %v; want %v", g.SeamBlocked, want)
	}
	g.BlockSeam(4, 2)
	want = []bool{true, true, true, true, true}
	if !reflect.DeepEqual(g.SeamBlocked, want) {
		t.Errorf("SeamBlocked = %v; want %v", g.SeamBlocked, want)
	}
}
