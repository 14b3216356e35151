// Package regions finds the plate regions enclosed by a boundary network and
// picks one representative interior point per region.
//
// Pipeline:
//
//  1. Rasterize stamps every boundary hit segment onto a coarse sample grid
//     with a round brush. Stamps close to the left or right sheet edge also
//     block the wrap seam for the nearby rows.
//  2. The grid's distance field measures how far each cell is from ink.
//  3. Segment flood-fills the free cells into regions, computes each
//     region's centroid (circular mean on x so regions straddling the seam
//     average correctly) and takes the cell farthest from ink as its
//     representative, breaking ties by closeness to the centroid.
//  4. Detect drops small regions, orders the rest largest first, merges
//     representatives that sit too close together, and clamps the results
//     away from the sheet edges.
//
// The sample grid is rebuilt on every call; nothing is cached.
package regions
