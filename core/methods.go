// File: methods.go
// Role: Unexported storage primitives shared by node and edge mutators.
// Concurrency:
//   - Every helper here assumes the caller already holds g.mu for writing
//     (or reading, for the pure lookups).
// AI-HINT (file):
//   - shiftRight/shiftLeft are the ONLY code paths that rewrite node identities;
//     they renumber nodes and edge endpoints in the same step.

package core

import "fmt"

// shiftRight opens slot start by moving nodes start..last one slot up.
//
// Every moved node gets its new slot as Index, and every edge endpoint
// >= start is incremented so edges keep pointing at the same nodes.
// Slot start is left holding the inactive sentinel for the caller to fill.
//
// Complexity: O(V + E).
func (g *Graph) shiftRight(start int) {
	// Grow by one slot, then slide from the top down.
	g.nodes = append(g.nodes, InactiveNode())
	for i := len(g.nodes) - 1; i > start; i-- {
		g.nodes[i] = g.nodes[i-1]
		g.nodes[i].Index = i
	}

	// Fix edges
	for i := range g.edges {
		if g.edges[i].Source >= start {
			g.edges[i].Source++
		}
		if g.edges[i].Destination >= start {
			g.edges[i].Destination++
		}
	}

	g.nodes[start] = InactiveNode()
}

// shiftLeft closes slot removed by moving nodes removed+1..last one slot down.
//
// Endpoints above removed are decremented. Edges that still reference
// removed must have been deleted by the caller beforehand.
//
// Complexity: O(V + E).
func (g *Graph) shiftLeft(removed int) {
	last := len(g.nodes) - 1
	for i := removed + 1; i <= last; i++ {
		g.nodes[i-1] = g.nodes[i]
		g.nodes[i-1].Index = i - 1
	}

	// Fix edges
	for i := range g.edges {
		if g.edges[i].Source > removed {
			g.edges[i].Source--
		}
		if g.edges[i].Destination > removed {
			g.edges[i].Destination--
		}
	}

	// Clear the vacated tail slot before truncating so no stale copy survives in the backing array.
	g.nodes[last] = InactiveNode()
	g.nodes = g.nodes[:last]
}

// removeEdgeAt deletes edge slot i and slides the tail left.
// Complexity: O(E).
func (g *Graph) removeEdgeAt(i int) {
	last := len(g.edges) - 1
	copy(g.edges[i:], g.edges[i+1:])
	g.edges[last] = InactiveEdge()
	g.edges = g.edges[:last]
}

// hasEdge is the lock-free body of HasEdgeBiDirectional.
func (g *Graph) hasEdge(a, b int) bool {
	for _, e := range g.edges {
		if e.Connects(a, b) {
			return true
		}
	}

	return false
}

// nodeInRange reports whether index addresses an occupied node slot.
func (g *Graph) nodeInRange(index int) bool {
	return index >= 0 && index < len(g.nodes)
}

// outOfRange builds the wrapped ErrOutOfRangeIndex used by every range check.
func outOfRange(kind string, index, last int) error {
	return fmt.Errorf("%w: %s %d not in 0..%d", ErrOutOfRangeIndex, kind, index, last)
}
