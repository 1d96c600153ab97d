// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing read-only getters and the stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention snapshot of sizes and ceilings.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	LastNodeIndex int
	LastEdgeIndex int
	MaxNodes      int
	MaxEdges      int
}

// LastNodeIndex returns the highest occupied node slot, or -1 when empty.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) LastNodeIndex() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes) - 1
}

// LastEdgeIndex returns the highest occupied edge slot, or -1 when empty.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) LastEdgeIndex() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges) - 1
}

// NodeCount returns the number of active nodes.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of active edges.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Capacity reports the node and edge ceilings fixed at construction.
// Complexity: O(1).
func (g *Graph) Capacity() (maxNodes, maxEdges int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxNodes, g.maxEdges
}

// Stats produces a read-only snapshot of sizes, cursors, and ceilings.
//
// The snapshot is taken under a single read lock, so all fields describe
// the same graph state.
//
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &GraphStats{
		NodeCount:     len(g.nodes),
		EdgeCount:     len(g.edges),
		LastNodeIndex: len(g.nodes) - 1,
		LastEdgeIndex: len(g.edges) - 1,
		MaxNodes:      g.maxNodes,
		MaxEdges:      g.maxEdges,
	}
}
