// Package astar provides A* search over the positioned, undirected graphs of
// package core, returning paths as ordered node indices.
//
// Overview:
//
//   - Edge cost is the Euclidean length of the edge; there are no weights.
//   - The heuristic guides expansion toward the goal. With an admissible
//     heuristic (Euclidean, or Zero) the returned path has minimum cost.
//   - Among equal f-scores the node that entered the frontier first is
//     expanded first, so results are reproducible run to run.
//
// When to use:
//
//   - Point-to-point routing on planar networks: road sketches, grids, meshes.
//   - As a Dijkstra substitute via WithHeuristic(Zero).
//
// Frontiers:
//
//   - FrontierLinear (default): an insertion-ordered list scanned on every
//     selection. Simple and fast on small graphs.
//   - FrontierOrdered: a B-tree (github.com/tidwall/btree) keyed by
//     (f-score, insertion sequence). It makes the same selections as the
//     linear frontier, so the two always return identical paths.
//
// API reference:
//
//	func Search(g *core.Graph, start, goal int, opts ...Option) ([]int, error)
//	func Run(g *core.Graph, start, goal int, opts ...Option) (*Result, error)
//
//	  - WithHeuristic(Euclidean | Manhattan | Zero | custom)
//	  - WithFrontier(FrontierLinear | FrontierOrdered)
//	  - WithOnExpand(func(index int, f float64))
//	  - WithOnRelax(func(from, to int, g float64))
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilHeuristic, ErrUnknownFrontier: invalid call.
//   - ErrNodeNotFound: start or goal outside the graph. The error also
//     matches core.ErrOutOfRangeIndex through errors.Is.
//   - ErrPathNotFound: the frontier emptied before the goal was reached.
//
// Example:
//
//	path, err := astar.Search(g, 0, 4)
//	if errors.Is(err, astar.ErrPathNotFound) {
//	    // goal unreachable
//	}
package astar
