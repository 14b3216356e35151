// Package preview draws a finished plate map as a raster image or as SVG.
//
// What:
//
//   - Render paints the region grid produced by regions.Detect (one palette
//     colour per kept region), strokes every boundary's hit geometry and
//     marks each region centre with a dot.
//   - WriteSVG emits the boundaries as path elements using each curve's own
//     path data, so the vector output matches the hit geometry exactly.
//
// Colours come from a rainbow gradient sampled once per kept region, so the
// same Result always renders the same way.
package preview
