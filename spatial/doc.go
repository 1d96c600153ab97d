// Package spatial indexes graph nodes by position so callers can address a
// graph by coordinates: snap a clicked point to the nearest node, or list
// the nodes inside a viewport or radius.
//
// The index is an R-tree (github.com/dhconnelly/rtreego) bulk-loaded from a
// snapshot of core.Graph nodes. It does not follow later graph mutations.
//
//	ix, _ := spatial.FromGraph(g)
//	start, _ := ix.Nearest(52, 298)
//	path, _ := astar.Search(g, start.Index, goal.Index)
package spatial
