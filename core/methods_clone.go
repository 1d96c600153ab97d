// File: methods_clone.go
// Role: Cloning, clearing, and invariant checking of graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Clone carries the ceilings so the copy rejects the same inserts as the source.
//   - Clear() preserves ceilings but drops every node and edge.

package core

import "fmt"

// Clone returns a deep copy of the Graph: ceilings, nodes, and edges.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		maxNodes: g.maxNodes,
		maxEdges: g.maxEdges,
		nodes:    make([]Node, len(g.nodes)),
		edges:    make([]Edge, len(g.edges)),
	}
	copy(clone.nodes, g.nodes)
	copy(clone.edges, g.edges)

	return clone
}

// Clear removes all nodes and edges but keeps the ceilings.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
}

// Validate checks the storage invariants and reports the first violation.
//
// Checked invariants:
//   - Identity equals position: nodes[i].Index == i for every occupied slot.
//   - Edge validity: both endpoints of every edge are occupied node slots.
//   - No duplicate unordered edges.
//
// Contiguity holds structurally (slots past the last index do not exist).
// Validate is intended for tests and for callers that assemble graphs from
// untrusted fixtures; the mutators never leave a graph that fails it.
//
// Errors:
//   - ErrInvariantViolated wrapped with the offending slot.
//
// Complexity: O(V + E) expected.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, n := range g.nodes {
		if n.Index != i {
			return fmt.Errorf("%w: node slot %d holds index %d", ErrInvariantViolated, i, n.Index)
		}
	}

	seen := make(map[[2]int]int, len(g.edges))
	for i, e := range g.edges {
		if !g.nodeInRange(e.Source) || !g.nodeInRange(e.Destination) {
			return fmt.Errorf("%w: edge slot %d (%d,%d) references a missing node",
				ErrInvariantViolated, i, e.Source, e.Destination)
		}
		key := [2]int{e.Source, e.Destination}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: edge slots %d and %d both join %d and %d",
				ErrInvariantViolated, prev, i, key[0], key[1])
		}
		seen[key] = i
	}

	return nil
}
