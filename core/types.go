// Package core defines the central Graph, Node, and Edge types,
// and provides the identity-preserving primitives for building and querying graphs.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidNodeIndex    - node index is negative or would leave a gap.
//	ErrOutOfRangeIndex     - node or edge slot outside the occupied range.
//	ErrCapacityExceeded    - insert would exceed the node or edge ceiling.
//	ErrEdgeEndpointInvalid - edge references a node that does not exist.
//	ErrInvariantViolated   - Validate found a broken storage invariant.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeIndex indicates a node with a negative index, or an index
	// more than one past the last occupied slot.
	ErrInvalidNodeIndex = errors.New("core: invalid node index")

	// ErrOutOfRangeIndex indicates a node or edge slot outside 0..last.
	ErrOutOfRangeIndex = errors.New("core: index out of range")

	// ErrCapacityExceeded indicates an insert beyond the configured ceiling.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrEdgeEndpointInvalid indicates an edge endpoint that is not an active node.
	ErrEdgeEndpointInvalid = errors.New("core: edge endpoint invalid")

	// ErrInvariantViolated is returned by Validate when storage is inconsistent.
	ErrInvariantViolated = errors.New("core: graph invariant violated")
)

// DefaultMaxNodes and DefaultMaxEdges are the slot ceilings applied when no
// WithMaxNodes/WithMaxEdges option is given.
const (
	DefaultMaxNodes = 1_000_000
	DefaultMaxEdges = 1_000_000
)

// inactiveIndex marks an unoccupied node or edge slot.
const inactiveIndex = -1

// Node is a positioned graph node.
//
// Index is the node's identity and always equals its slot in the owning Graph.
// A node is active iff Index >= 0.
type Node struct {
	// Index is the slot position of this node.
	Index int

	// X and Y are the node's position on the plane.
	X, Y float64
}

// NewNode returns an active node at slot index positioned at (x, y).
func NewNode(index int, x, y float64) Node {
	return Node{Index: index, X: x, Y: y}
}

// InactiveNode returns the sentinel for an empty node slot: {-1, -1, -1}.
func InactiveNode() Node {
	return Node{Index: inactiveIndex, X: inactiveIndex, Y: inactiveIndex}
}

// IsActive reports whether n occupies a slot.
func (n Node) IsActive() bool { return n.Index >= 0 }

// Edge connects two node slots.
//
// Edges are stored directionally but all queries treat (a,b) and (b,a) as the same edge.
type Edge struct {
	// Source is the slot index of the first endpoint.
	Source int

	// Destination is the slot index of the second endpoint.
	Destination int
}

// NewEdge returns an edge between source and destination.
func NewEdge(source, destination int) Edge {
	return Edge{Source: source, Destination: destination}
}

// InactiveEdge returns the sentinel for an empty edge slot: {-1, -1}.
func InactiveEdge() Edge {
	return Edge{Source: inactiveIndex, Destination: inactiveIndex}
}

// IsActive reports whether e is anything other than the sentinel.
func (e Edge) IsActive() bool {
	return e.Source != inactiveIndex || e.Destination != inactiveIndex
}

// Touches reports whether index is one of e's endpoints.
func (e Edge) Touches(index int) bool {
	return e.Source == index || e.Destination == index
}

// Connects reports whether e joins a and b in either direction.
func (e Edge) Connects(a, b int) bool {
	return (e.Source == a && e.Destination == b) || (e.Source == b && e.Destination == a)
}

// Other returns the endpoint opposite index. The result is meaningful only when e.Touches(index).
func (e Edge) Other(index int) int {
	if e.Source == index {
		return e.Destination
	}

	return e.Source
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxNodes sets the node slot ceiling. n <= 0 removes the ceiling.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) { g.maxNodes = ceiling(n) }
}

// WithMaxEdges sets the edge slot ceiling. n <= 0 removes the ceiling.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) { g.maxEdges = ceiling(n) }
}

// WithPrealloc reserves backing storage for n nodes and n edges up front.
func WithPrealloc(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]Node, 0, n)
			g.edges = make([]Edge, 0, n)
		}
	}
}

// ceiling maps a non-positive limit to "unbounded".
func ceiling(n int) int {
	if n <= 0 {
		return int(^uint(0) >> 1)
	}

	return n
}

// Graph is a dense graph of positioned nodes and undirected edges.
//
// Node slots 0..LastNodeIndex() are always occupied and node i has Index == i.
// Inserting or removing a node renumbers every node and edge endpoint above
// it in the same operation, so callers always see consistent small integer
// identities. Edge slots 0..LastEdgeIndex() are likewise contiguous.
//
// mu guards nodes and edges; mutators take the write lock, queries the read lock.
type Graph struct {
	mu sync.RWMutex

	// Ceilings
	maxNodes int
	maxEdges int

	// Storage; len(nodes)-1 and len(edges)-1 are the last occupied slots.
	nodes []Node
	edges []Edge
}

// NewGraph creates an empty Graph.
// By default the ceilings are DefaultMaxNodes and DefaultMaxEdges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxNodes: DefaultMaxNodes,
		maxEdges: DefaultMaxEdges,
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
