// Package pathnet is an in-memory playground for planar graphs and the
// searches that run over them: build a network of positioned nodes, edit it
// in place, and ask A* for the cheapest route between two of its nodes.
//
// 🚀 What is pathnet?
//
//	A small, thread-safe library plus a scenario runner that brings together:
//		• Core primitives: positioned nodes and undirected edges whose identity
//		  is always their slot, renumbered in place on every insert and removal
//		• Builders: explicit positions, chains, lattices, terrain maps and
//		  seeded random geometric graphs
//		• Search: A* with pluggable heuristics and two interchangeable frontiers
//		• Traversal: BFS reachability and hop counts
//		• Grid analysis: occupancy maps, connected regions, cheapest bridges
//		• Spatial lookup: snap a coordinate to its nearest node
//
// ✨ Why choose pathnet?
//
//   - Plain int identities; no pointers to chase after a mutation
//   - Deterministic: the same graph and endpoints always give the same route
//   - Typed sentinel errors for every caller mistake; no panics on input
//   - Hooks (OnExpand, OnVisit) for tracing and early exit
//
// Subpackages:
//
//	core/      - Graph, Node, Edge and their identity-preserving mutators
//	builder/   - deterministic constructors composed with BuildGraph
//	astar/     - A* search, heuristics and frontiers
//	bfs/       - breadth-first reachability and hop depths
//	gridgraph/ - occupancy grids, components and 0-1 BFS bridging
//	spatial/   - R-tree nearest-node index
//	scenario/  - YAML scenarios, runner and reports
//	config/    - YAML configuration for the CLI
//	metrics/   - Prometheus search metrics
//	cmd/pathnet - command-line scenario runner
//
// Quick ASCII example:
//
//	    0───1───2
//	    │       │
//	    4───────3
//
//	A* from 0 to 3 expands 0, then the cheaper side of the ring, and stops
//	the moment 3 leaves the frontier.
//
//	go install github.com/katalvlaran/pathnet/cmd/pathnet@latest
package pathnet
