package gridgraph

// ConnectedComponents flood-fills the non-barrier cells into regions under
// the Neighbors rule. Components are returned in order of their first cell in
// row-major order; each lists cell indices in BFS order starting from that
// cell.
//
// Time:   O(Cols·Rows).
// Memory: O(Cols·Rows) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int
	nbrs := make([]int, 0, 4)

	for start := range seen {
		if seen[start] || g.Barrier[start] {
			continue
		}
		seen[start] = true
		comp := []int{start}
		for qi := 0; qi < len(comp); qi++ {
			nbrs = g.Neighbors(comp[qi], nbrs[:0])
			for _, v := range nbrs {
				if !seen[v] && !g.Barrier[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
