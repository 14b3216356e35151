package gridgraph

// DistanceField returns, for every cell, the BFS step count to the nearest
// barrier cell under the Neighbors rule. Barrier cells hold 0; cells that no
// barrier reaches (including every cell of a barrier-free grid) hold
// MaxDistance.
//
// Behavior:
//  1. Seed the queue with every barrier cell at distance 0.
//  2. Pop in FIFO order; each unvisited neighbour gets distance+1.
//
// Time: O(Cols·Rows). Memory: O(Cols·Rows).
func (g *Grid) DistanceField() []int {
	n := g.Len()
	dist := make([]int, n)
	queue := make([]int, 0, n)
	for i := range dist {
		if g.Barrier[i] {
			queue = append(queue, i)
		} else {
			dist[i] = MaxDistance
		}
	}

	nbrs := make([]int, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		next := dist[u] + 1
		nbrs = g.Neighbors(u, nbrs[:0])
		for _, v := range nbrs {
			if dist[v] > next {
				dist[v] = next
				queue = append(queue, v)
			}
		}
	}
	return dist
}
