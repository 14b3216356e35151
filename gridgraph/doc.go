// Package gridgraph treats a coarse sample grid over a horizontally wrapping
// surface as a graph, for distance transforms and region flood fills.
//
// What:
//
//   - Grid holds a row-major barrier mask and a per-row seam flag.
//   - Cells are 4-connected. Vertical steps never wrap. Horizontal steps
//     wrap from the last column to the first (and back) unless the row is
//     seam-blocked, in which case the left and right edges are walls.
//   - DistanceField runs a multi-source BFS from every barrier cell.
//   - ConnectedComponents flood-fills the non-barrier cells into regions.
//
// Why:
//
//   - A boundary drawn across the wrap seam must split regions on both sides
//     of the seam even though the raster itself knows nothing about curves.
//     Blocking the seam for the rows it touches gives that without special
//     cases in the fill.
//
// Complexity:
//
//   - DistanceField, ConnectedComponents: O(Cols×Rows), Memory: O(Cols×Rows).
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrMaskSize: a supplied mask does not have Cols×Rows entries.
package gridgraph
