package preview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/surface"
)

// WriteSVG writes a standalone SVG document in surface units: one path per
// boundary, tagged with its style, then one circle per centre.
func WriteSVG(w io.Writer, surf surface.Surface, bs []boundary.Boundary, centers []geom.Coord) error {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n",
		num(surf.Width), num(surf.Height)); err != nil {
		return fmt.Errorf("preview: write svg: %w", err)
	}
	for _, b := range bs {
		if _, err := fmt.Fprintf(w, `<path class="%s" d="%s" fill="none" stroke="black"/>`+"\n",
			b.Style, b.PathData(surf)); err != nil {
			return fmt.Errorf("preview: write svg: %w", err)
		}
	}
	for _, c := range centers {
		if _, err := fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="1.5"/>`+"\n", num(c.X), num(c.Y)); err != nil {
			return fmt.Errorf("preview: write svg: %w", err)
		}
	}
	if _, err := io.WriteString(w, "</svg>\n"); err != nil {
		return fmt.Errorf("preview: write svg: %w", err)
	}
	return nil
}
