// File: methods_adjacent.go
// Role: Neighborhood APIs (ConnectedNodes, NeighborIndices, Degree).
// Determinism:
//   - Results follow edge slot order; a node joined by k parallel edges appears k times.
// Concurrency:
//   - Read operations hold g.mu read lock.

package core

// ConnectedNodes returns the node at the other end of every edge touching node.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan all edges in slot order; for each edge whose Source or
//     Destination equals node.Index, collect the opposite endpoint's node.
//
// Behavior highlights:
//   - Only node.Index is consulted; the position fields are ignored.
//   - An inactive or unknown node yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(E), Space O(d).
func (g *Graph) ConnectedNodes(node Node) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0)
	for _, e := range g.edges {
		if e.Source == node.Index {
			out = append(out, g.nodes[e.Destination])
		} else if e.Destination == node.Index {
			out = append(out, g.nodes[e.Source])
		}
	}

	return out
}

// NeighborIndices returns the slot index of every node adjacent to index, in edge slot order.
// Complexity: O(E).
func (g *Graph) NeighborIndices(index int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0)
	for _, e := range g.edges {
		if e.Touches(index) {
			out = append(out, e.Other(index))
		}
	}

	return out
}

// Degree counts the edges touching index. A self-loop counts once.
// Complexity: O(E).
func (g *Graph) Degree(index int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := 0
	for _, e := range g.edges {
		if e.Touches(index) {
			d++
		}
	}

	return d
}
