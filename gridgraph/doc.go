// Package gridgraph treats a 2D occupancy map as a graph, enabling terrain
// lattices with obstacles, component analysis and minimal-clearance bridges.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold;
//     ParseRows reads the same from a text map ('.' open, '#' blocked).
//   - AddTo emits every passable cell as a positioned core.Node and joins
//     passable neighbors, ready for astar.
//   - Identifies connected components of passable cells.
//   - Bridge computes the fewest blocked cells to clear (0-1 BFS) so that
//     two components connect.
//
// Why:
//
//   - Path planning on maps with obstacles: craters, walls, closed tiles.
//   - Diagnosing astar.ErrPathNotFound: the start and goal sit in different
//     components, and Bridge says how much must be cleared.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Bridge:              O(W×H×d), Memory: O(W×H).
//   - AddTo:               O(W×H×d) plus the core.Graph edge scans.
//
// Conn8 adds diagonal edges of length √2·spacing; the Manhattan heuristic
// overestimates them, so prefer Euclidean on such graphs.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a map character ParseRows does not know.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no bridge exists between specified components.
package gridgraph
