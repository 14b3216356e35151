// Package platesketch builds plate-tectonic map sketches on a sheet that
// wraps around horizontally.
//
// What is in the box?
//
//	• surface       sheet geometry, wrap-aware distances, segment crossing tests
//	• curve         hand-drawn boundary curves (tectonic polylines, arcs, S-curves)
//	• boundary      a placed boundary: endpoints, wrap side, style and curve
//	• connectivity  union-find plus degree, angle and triangle bookkeeping
//	• autoconnect   randomized multi-attempt builder for the boundary network
//	• gridgraph     barrier grids with a wrapping seam, distance fields, flood fill
//	• regions       rasterize boundaries, find plates and a centre for each
//	• preview       PNG and SVG renderings of a finished map
//
// Pipeline:
//
//	points ──autoconnect.Connect──▶ boundaries ──regions.Detect──▶ plates
//
// Quick ASCII example of a wrapped edge:
//
//	|──── a                    b ────|
//
//	a and b are joined through the seam: the edge leaves the left side of
//	the sheet and re-enters on the right.
//
// A runnable end-to-end demo lives in examples/sketch.
package platesketch
