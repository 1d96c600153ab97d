// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdgeBiDirectional/EdgeAt/Edges.
// Determinism:
//   - Edges() returns edges in slot (insertion) order.
// Concurrency:
//   - Mutations under g.mu write lock.
//   - Read queries under g.mu read lock.
// AI-HINT (file):
//   - AddEdge silently ignores an edge whose unordered pair already exists.
//   - Edge slots are contiguous; RemoveEdge slides later edges down by one.

package core

import "fmt"

// AddEdge appends e unless its endpoints are already joined.
//
// Steps:
//  1. If an edge joins the same unordered pair, return nil without mutating.
//  2. Validate both endpoints are active nodes (ErrEdgeEndpointInvalid).
//  3. Check the edge ceiling (ErrCapacityExceeded).
//  4. Append at LastEdgeIndex()+1.
//
// Complexity: O(E) for the duplicate scan.
func (g *Graph) AddEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdge(e)
}

// addEdge is the lock-free body of AddEdge.
func (g *Graph) addEdge(e Edge) error {
	if g.hasEdge(e.Source, e.Destination) {
		return nil
	}
	if !g.nodeInRange(e.Source) || !g.nodeInRange(e.Destination) {
		return fmt.Errorf("%w: (%d,%d) with last node %d",
			ErrEdgeEndpointInvalid, e.Source, e.Destination, len(g.nodes)-1)
	}
	if len(g.edges) >= g.maxEdges {
		return fmt.Errorf("%w: %d edges", ErrCapacityExceeded, g.maxEdges)
	}
	g.edges = append(g.edges, e)

	return nil
}

// RemoveEdge deletes the edge in slot index and closes the gap.
//
// Errors:
//   - ErrOutOfRangeIndex: index outside 0..LastEdgeIndex() (no mutation).
//
// Complexity: O(E).
func (g *Graph) RemoveEdge(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.edges) {
		return outOfRange("edge", index, len(g.edges)-1)
	}
	g.removeEdgeAt(index)

	return nil
}

// HasEdgeBiDirectional reports whether an edge (a,b) or (b,a) exists.
//
// Symmetric by construction: HasEdgeBiDirectional(a,b) == HasEdgeBiDirectional(b,a).
// Complexity: O(E).
func (g *Graph) HasEdgeBiDirectional(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdge(a, b)
}

// EdgeAt returns the edge stored in slot index.
//
// Errors:
//   - ErrOutOfRangeIndex: index outside 0..LastEdgeIndex().
//
// Complexity: O(1).
func (g *Graph) EdgeAt(index int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.edges) {
		return InactiveEdge(), outOfRange("edge", index, len(g.edges)-1)
	}

	return g.edges[index], nil
}

// Edges returns a copy of all active edges in slot order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
