// Package connectivity tracks how a growing boundary network connects its
// points.
//
// What:
//
//   - UnionFind is a disjoint-set forest over point indices with iterative
//     path compression and union by rank.
//   - Tracker pairs a UnionFind with the live bookkeeping a greedy network
//     builder needs: per-point degree, outgoing bearings, adjacency sets, and
//     a running count of triangles closed by accepted links.
//
// Why:
//
//   - Every acceptance decision in the builder asks "are these already
//     connected?", "how busy is this point?" and "would this close a
//     triangle?". Answering those in near O(1) keeps each build attempt
//     quadratic in the number of points rather than cubic.
//
// Complexity:
//
//   - Find/Union/Connected: O(α(n)) amortized.
//   - Tracker.Accept: O(min(deg(a), deg(b))) for the triangle delta.
//   - Components: O(n·α(n)).
package connectivity
