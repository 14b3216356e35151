package preview_test

import (
	"os"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/curve"
	"github.com/katalvlaran/platesketch/preview"
	"github.com/katalvlaran/platesketch/surface"
)

// ExampleWriteSVG writes a single straight boundary.
func ExampleWriteSVG() {
	bs := []boundary.Boundary{{
		Start: geom.Coord{X: 10, Y: 10},
		End:   geom.Coord{X: 20, Y: 20},
		Curve: curve.Line(),
	}}
	if err := preview.WriteSVG(os.Stdout, surface.Default(), bs, nil); err != nil {
		panic(err)
	}
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 297.00 210.00">
	// <path class="boundary" d="M 10.00 10.00 L 20.00 20.00" fill="none" stroke="black"/>
	// </svg>
}
