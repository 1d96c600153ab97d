// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-slot hop count from start (Unreached if never reached)
//   - Parent: per-slot predecessor in the BFS tree
//   - OnVisit hook; returning an error aborts the walk.
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Why
//
//   - Reachability: A* explores the whole component of start before it
//     reports astar.ErrPathNotFound; Reachable answers the same question
//     in O(V + E) without scoring.
//   - Fewest-hop routes, which differ from the cheapest Euclidean route
//     whenever a long edge skips several short ones.
//
// Determinism
//
//	Neighbors are taken from core.Graph.NeighborIndices in edge slot order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = node count, E = edge count)
//
//   - Time:   O(V·E); each dequeue scans the edge list once.
//   - Memory: O(V) for the queue, Depth and Parent slices.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	ok, err := bfs.Reachable(g, 0, 9)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if start is not an active node.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
