// Package core provides a dense, identity-preserving in-memory Graph of
// positioned nodes joined by undirected edges.
//
// The Graph G = (V,E) is stored as two contiguous slot sequences:
//
//   - Node slots 0..LastNodeIndex(), where the node in slot i always has Index == i
//   - Edge slots 0..LastEdgeIndex(), each holding a (Source, Destination) pair
//     of node slot indices
//
// Node identities are small integers that stay meaningful across mutations:
// inserting a node into an occupied slot shifts every node above it up by
// one and renumbers every edge endpoint in the same step; removing a node
// deletes its incident edges and shifts everything above it down by one.
//
// Why use core.Graph?
//
//   - O(1) lookup by index; callers hold plain ints, not pointers.
//   - Deterministic iteration: Nodes(), Edges() and ConnectedNodes() follow slot order.
//   - Edge queries are undirected; (a,b) and (b,a) are the same edge.
//   - Typed, recoverable errors for every caller mistake; no panics on input.
//
// Configuration Options (GraphOption):
//
//	- WithMaxNodes(n), WithMaxEdges(n)
//	    Ceilings on slot counts (default 1_000_000 each; n <= 0 means unbounded).
//	    Inserts beyond them return ErrCapacityExceeded.
//
//	- WithPrealloc(n)
//	    Reserve backing storage up front.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                               // O(1) append, O(V+E) insert
//	AddNodeBetween(n Node, before, after int) error     // O(V+E)
//	RemoveNode(index int) error                         // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(e Edge) error                               // O(E)
//	RemoveEdge(index int) error                         // O(E)
//	HasEdgeBiDirectional(a, b int) bool                 // O(E)
//
//	// Query
//	GetNode(index int) (Node, error)                    // O(1)
//	ConnectedNodes(n Node) []Node                       // O(E), edge slot order
//	NeighborIndices(index int) []int                    // O(E)
//	Nodes() []Node / Edges() []Edge                     // copies, slot order
//
//	// Maintenance
//	Clone() *Graph / Clear() / Validate() error
//
// Geometry:
//
//	Distance(a, b)          Euclidean
//	ManhattanDistance(a, b) |dx| + |dy|
//	Midpoint(a, b)          r2.Vec halfway between a and b
//
// Errors:
//
//	ErrInvalidNodeIndex    – negative index, or an index that would leave a gap
//	ErrOutOfRangeIndex     – node/edge slot outside the occupied range
//	ErrCapacityExceeded    – ceiling reached
//	ErrEdgeEndpointInvalid – edge endpoint is not an active node
//	ErrInvariantViolated   – reported by Validate only
//
// Concurrency: mutators take the write lock, queries the read lock. Mutating
// a graph while a search over it is running is still a logic error: the
// search observes whichever identities are current at each step.
package core
