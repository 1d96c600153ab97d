// File: index.go
// Role: R-tree over node positions for coordinate-addressed lookups.
//
// Determinism:
//   - Results are ordered by (distance, index) for nearest queries and by
//     index for box queries; R-tree traversal order never leaks out.
//
// AI-HINT (file):
//   - An Index is a snapshot. Node identities shift when the graph is
//     mutated, so rebuild the Index after AddNode/RemoveNode.

package spatial

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/pathnet/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that FromGraph received a nil graph.
	ErrNilGraph = errors.New("spatial: graph is nil")

	// ErrEmptyIndex indicates a nearest query against an index with no nodes.
	ErrEmptyIndex = errors.New("spatial: index is empty")
)

// R-tree fan-out: 2D, min 25, max 50 entries per node.
const (
	dims       = 2
	minEntries = 25
	maxEntries = 50
)

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	node core.Node
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers proximity queries over a fixed set of nodes.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex bulk-loads the given nodes. Inactive nodes are skipped.
// Complexity: O(n log n).
func NewIndex(nodes []core.Node) *Index {
	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsActive() {
			continue
		}
		objs = append(objs, &nodeEntry{
			node: n,
			bbox: rtreego.Point{n.X, n.Y}.ToRect(0),
		})
	}

	return &Index{tree: rtreego.NewTree(dims, minEntries, maxEntries, objs...), size: len(objs)}
}

// FromGraph indexes every node of g as it is now.
func FromGraph(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return NewIndex(g.Nodes()), nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the node closest to (x, y). Among equally close nodes the
// lowest index wins.
//
// Errors:
//   - ErrEmptyIndex if the index holds no nodes.
func (ix *Index) Nearest(x, y float64) (core.Node, error) {
	if ix.size == 0 {
		return core.InactiveNode(), ErrEmptyIndex
	}
	probe := core.NewNode(0, x, y)
	first := ix.tree.NearestNeighbor(rtreego.Point{x, y}).(*nodeEntry)
	d := core.Distance(probe, first.node)

	// Gather every node at the same distance so ties resolve by index.
	best := first.node
	for _, n := range ix.box(x-d, y-d, x+d, y+d) {
		dn := core.Distance(probe, n)
		if dn < d || (dn == d && n.Index < best.Index) {
			best, d = n, dn
		}
	}

	return best, nil
}

// KNearest returns up to k nodes ordered by (distance to (x, y), index).
// Which of several equidistant nodes fill the last places is unspecified.
func (ix *Index) KNearest(x, y float64, k int) []core.Node {
	if k <= 0 || ix.size == 0 {
		return []core.Node{}
	}
	found := ix.tree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]core.Node, 0, len(found))
	for _, s := range found {
		if s == nil {
			continue
		}
		out = append(out, s.(*nodeEntry).node)
	}
	probe := core.NewNode(0, x, y)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := core.Distance(probe, out[i]), core.Distance(probe, out[j])
		if di != dj {
			return di < dj
		}
		return out[i].Index < out[j].Index
	})

	return out
}

// Within returns the nodes inside the closed box [minX,maxX]×[minY,maxY],
// ordered by index. Swapped corners are normalised.
func (ix *Index) Within(minX, minY, maxX, maxY float64) []core.Node {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	out := ix.box(minX, minY, maxX, maxY)
	sortByIndex(out)

	return out
}

// Radius returns the nodes within distance r of (x, y), ordered by index.
func (ix *Index) Radius(x, y, r float64) []core.Node {
	if r < 0 {
		return []core.Node{}
	}
	probe := core.NewNode(0, x, y)
	out := make([]core.Node, 0)
	for _, n := range ix.box(x-r, y-r, x+r, y+r) {
		if core.Distance(probe, n) <= r {
			out = append(out, n)
		}
	}
	sortByIndex(out)

	return out
}

// box runs a padded R-tree search and keeps nodes inside the exact closed box.
// The padding keeps boundary points and degenerate boxes from being lost to
// the tree's strict overlap test.
func (ix *Index) box(minX, minY, maxX, maxY float64) []core.Node {
	out := make([]core.Node, 0)
	if ix.size == 0 {
		return out
	}
	pad := 1e-9 * (1 + math.Max(math.Max(math.Abs(minX), math.Abs(maxX)), math.Max(math.Abs(minY), math.Abs(maxY))))
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{minX - pad, minY - pad},
		rtreego.Point{maxX + pad, maxY + pad},
	)
	if err != nil {
		return out
	}
	for _, s := range ix.tree.SearchIntersect(rect) {
		n := s.(*nodeEntry).node
		if n.X >= minX && n.X <= maxX && n.Y >= minY && n.Y <= maxY {
			out = append(out, n)
		}
	}

	return out
}

func sortByIndex(nodes []core.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Index < nodes[j].Index })
}
