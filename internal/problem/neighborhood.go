package problem

// NeighborEnumerator is implemented by problems that can enumerate the full
// neighborhood of a state. Deterministic searches need it; randomized
// searches only sample via RandomNeighbor.
type NeighborEnumerator interface {
	// Neighbors returns every state reachable by changing one position.
	Neighbors(state []int) [][]int
}

// Neighbors enumerates all single-position mutations of state.
func (p *DiscreteProblem) Neighbors(state []int) [][]int {
	neighbors := make([][]int, 0, len(state)*(p.maxVal-1))
	for pos := range state {
		for v := 0; v < p.maxVal; v++ {
			if v == state[pos] {
				continue
			}
			neighbor := make([]int, len(state))
			copy(neighbor, state)
			neighbor[pos] = v
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}
