// Package surface models the bounded drawing sheet that plate maps are
// sketched on.
//
// What:
//
//   - Surface holds a fixed Width and Height. The sheet wraps horizontally:
//     leaving the right edge re-enters at the left edge at the same height.
//     It never wraps vertically.
//   - Point is an externally supplied plate-center mark (key, x, y, weight).
//   - WrapSide selects how an edge between two points is drawn: directly, or
//     continuing past the left or right edge of the sheet.
//   - Segment is a straight piece of geometry; Split turns a (possibly
//     wrapped) edge into the one or two segments actually drawn on the sheet.
//   - Crosses is the geometric test used everywhere edges must not overlap.
//
// Coordinates use github.com/jbeda/geom: geom.Coord for positions and
// geom.Rect for bounding boxes.
//
// Complexity:
//
//   - Every operation here is O(1).
package surface
