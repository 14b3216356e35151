// Package boundary holds the permanent plate-boundary records that the
// network builder produces and the region detector consumes.
//
// A Boundary joins two plate points. It keeps its endpoints, the side it
// wraps around (if any), a rendering Style and the curve.Curve that shapes
// it. Geometry is derived on demand: the straight edge is split at the seam
// by surface.Surface.Split and each piece is shaped by the curve.
package boundary
