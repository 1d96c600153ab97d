// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in slot order, which is also Index order.
//
// Concurrency:
//   - Mutators hold g.mu for writing for their whole duration, including the
//     renumbering of edges, so readers never observe a half-shifted graph.
//
// AI-Hints (file):
//   - AddNode at an occupied slot INSERTS (shifts everything above it up by one).
//   - RemoveNode deletes every incident edge, then shifts everything above down by one.
package core

import "fmt"

// AddNode places n at slot n.Index.
//
// Implementation:
//   - Stage 1: Reject n.Index < 0 (ErrInvalidNodeIndex).
//   - Stage 2: Reject n.Index > LastNodeIndex()+1, which would leave a gap (ErrInvalidNodeIndex).
//   - Stage 3: Reject when the node ceiling is reached (ErrCapacityExceeded).
//   - Stage 4: Append when n.Index == LastNodeIndex()+1; otherwise shiftRight and insert.
//
// Behavior highlights:
//   - Inserting into occupied territory renumbers every node and edge endpoint
//     at or above n.Index, so existing edges keep joining the same nodes.
//   - No mutation happens on any error path.
//
// Errors:
//   - ErrInvalidNodeIndex, ErrCapacityExceeded.
//
// Complexity:
//   - Time O(1) amortized for appends, O(V + E) for inserts.
func (g *Graph) AddNode(n Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNode(n)
}

// addNode is the lock-free body of AddNode.
func (g *Graph) addNode(n Node) error {
	next := len(g.nodes)
	if n.Index < 0 {
		return fmt.Errorf("%w: index %d is negative", ErrInvalidNodeIndex, n.Index)
	}
	if n.Index > next {
		return fmt.Errorf("%w: index %d would leave a gap after slot %d", ErrInvalidNodeIndex, n.Index, next-1)
	}
	if next >= g.maxNodes {
		return fmt.Errorf("%w: %d nodes", ErrCapacityExceeded, g.maxNodes)
	}

	if n.Index == next {
		// Appending to the current set needs no extra work.
		g.nodes = append(g.nodes, n)
		return nil
	}

	g.shiftRight(n.Index)
	g.nodes[n.Index] = n

	return nil
}

// AddNodeBetween inserts n and reroutes every edge between before and after through it.
//
// Implementation:
//   - Stage 1: Validate before and after against the current node range (ErrOutOfRangeIndex).
//   - Stage 2: AddNode(n); if the insert shifted before/after, follow them to their new slots.
//   - Stage 3: For each edge joining before and after (either direction), append
//     (before, n) and (n, after). Duplicates are suppressed by AddEdge.
//   - Stage 4: Remove the matched edge slots, highest slot first, so earlier
//     removals never move a slot that is still pending.
//
// Behavior highlights:
//   - before and after name nodes as they were before the call.
//   - With no before↔after edge the call is equivalent to AddNode(n).
//   - The whole surgery happens under one write lock.
//
// Errors:
//   - ErrOutOfRangeIndex for bad before/after (no mutation).
//   - Any AddNode error (no mutation).
//   - ErrCapacityExceeded if the replacement edges do not fit; the node
//     stays inserted and the graph invariants still hold.
//
// Complexity:
//   - Time O(V + E·k) where k is the number of matched edges.
func (g *Graph) AddNodeBetween(n Node, before, after int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	last := len(g.nodes) - 1
	if !g.nodeInRange(before) {
		return outOfRange("node", before, last)
	}
	if !g.nodeInRange(after) {
		return outOfRange("node", after, last)
	}

	if err := g.addNode(n); err != nil {
		return err
	}
	if before >= n.Index {
		before++
	}
	if after >= n.Index {
		after++
	}

	// Scan only the edges that existed before the surgery; replacements land past this bound.
	var matched []int
	count := len(g.edges)
	for i := 0; i < count; i++ {
		if !g.edges[i].Connects(before, after) {
			continue
		}
		if err := g.addEdge(NewEdge(before, n.Index)); err != nil {
			return fmt.Errorf("AddNodeBetween: %w", err)
		}
		if err := g.addEdge(NewEdge(n.Index, after)); err != nil {
			return fmt.Errorf("AddNodeBetween: %w", err)
		}
		matched = append(matched, i)
	}

	for j := len(matched) - 1; j >= 0; j-- {
		g.removeEdgeAt(matched[j])
	}

	return nil
}

// RemoveNode deletes the node at index together with every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate index is in 0..LastNodeIndex() (ErrOutOfRangeIndex).
//   - Stage 2: Remove every edge touching index, scanning slots from the top down.
//   - Stage 3: shiftLeft, renumbering nodes and endpoints above index.
//
// Errors:
//   - ErrOutOfRangeIndex: index outside the occupied range (no mutation).
//
// Complexity:
//   - Time O(V + E·d) where d is the degree of the removed node.
func (g *Graph) RemoveNode(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodeInRange(index) {
		return outOfRange("node", index, len(g.nodes)-1)
	}

	// Top-down so each removal leaves the unvisited lower slots where they were.
	for i := len(g.edges) - 1; i >= 0; i-- {
		if g.edges[i].Touches(index) {
			g.removeEdgeAt(i)
		}
	}

	g.shiftLeft(index)

	return nil
}

// GetNode returns the node stored at slot index.
//
// Errors:
//   - ErrOutOfRangeIndex: index outside 0..LastNodeIndex().
//
// Complexity: O(1).
func (g *Graph) GetNode(index int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.nodeInRange(index) {
		return InactiveNode(), outOfRange("node", index, len(g.nodes)-1)
	}

	return g.nodes[index], nil
}

// HasNode reports whether index addresses an active node.
// Complexity: O(1).
func (g *Graph) HasNode(index int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeInRange(index)
}

// Nodes returns a copy of all active nodes in slot order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}
