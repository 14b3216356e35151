// Package curve synthesizes the hand-drawn looking lines used for plate
// boundaries and turns them into geometry.
//
// What:
//
//   - A Curve is a small parameter record, not geometry. The same record is
//     applied to whatever straight Segment it decorates, so a boundary keeps
//     its character when it is split at the wrap seam.
//   - ModeTectonic curves are multi-knot polylines: a broad low-frequency bend
//     plus per-knot normal jitter with serial correlation and a little
//     longitudinal jitter. Knot positions are forced to advance so the line
//     never folds back.
//   - ModeArc (quadratic) and ModeS (cubic) are the simpler style curves used
//     when rendering convergent and divergent boundaries.
//
// Randomness:
//
//   - Every constructor takes an explicit *rand.Rand. Nothing here reads a
//     global source, so a fixed seed reproduces a curve exactly.
//
// Complexity:
//
//   - Points, HitSegments, PathData: O(k) for k knots or samples.
package curve
