// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/platesketch/gridgraph"
)

// ExampleGrid_ConnectedComponents shows a wall at column 3 that splits the
// seam-blocked top row in two while the bottom row wraps around it.
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.NewGrid(6, 3)
	for col := 0; col < 6; col++ {
		g.Mark(col, 1)
	}
	g.Mark(3, 0)
	g.Mark(3, 2)
	g.BlockSeam(0, 0)

	for i, comp := range g.ConnectedComponents() {
		fmt.Printf("component %d: %d cells\n", i, len(comp))
	}
	// Output:
	// component 0: 3 cells
	// component 1: 2 cells
	// component 2: 5 cells
}

// ExampleGrid_DistanceField shows distances wrapping around the seam.
func ExampleGrid_DistanceField() {
	g, _ := gridgraph.NewGrid(6, 1)
	g.Mark(0, 0)
	fmt.Println(g.DistanceField())
	// Output: [0 1 2 3 2 1]
}
