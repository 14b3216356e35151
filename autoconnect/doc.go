// Package autoconnect synthesizes a plate-boundary network over a sparse set
// of plate points on a horizontally wrapping surface.
//
// What:
//
//   - BuildCandidates enumerates every point pair with up to two wrap variants
//     (direct, plus the wrap-around that shortens the edge) and scores each
//     with a fill score and a tree score.
//   - Build runs one randomized two-phase construction: a strict spanning pass
//     in tree-score order that refuses crossings, a forgiving pass that only
//     joins what is still disconnected, then degree filling toward 2 and 3
//     links per point, first refusing crossings and then merely penalizing
//     them.
//   - Evaluate reduces a network to Stats and Cost folds them into one number
//     whose weights order the priorities: components, isolated points,
//     points under degree 2, crossings, triangles, points under degree 3,
//     over-long edges, total length.
//   - Connect repeats Build with independent random streams, keeps the
//     cheapest network, and stops early once Stats.GoodEnough holds.
//
// Guarantees:
//
//   - No point ever exceeds the degree cap (3 by default).
//   - No pair is linked twice, whatever the wrap variant.
//   - Edges accepted by the spanning and strict filling passes cross no
//     earlier edge or obstacle, except where the two share an endpoint.
//   - Everything else (planarity, full connectivity, exact degrees) is best
//     effort: read the returned Stats as advisory.
//
// Determinism:
//
//   - All randomness flows from the *rand.Rand set by WithSeed/WithRand.
//     Seed 0 maps to a fixed default. Each attempt draws from its own stream
//     derived with a SplitMix64 mix, so (points, obstacles, seed) fully
//     determines the Result.
//
// Complexity:
//
//   - Candidates: O(n²). One build: O(n² · h²) worst case for h hit segments
//     per edge, dominated by crossing tests. Connect: up to 28 builds.
package autoconnect
