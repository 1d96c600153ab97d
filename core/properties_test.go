package core_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathnet/core"
)

// labelModel mirrors a Graph by node label (the node's X) instead of by slot.
// Labels never change, so comparing a Graph against the model after each
// mutation checks that renumbering kept every edge on the right nodes.
type labelModel struct {
	labels []float64
	edges  map[[2]float64]bool
}

func pairKey(a, b float64) [2]float64 {
	if a > b {
		a, b = b, a
	}

	return [2]float64{a, b}
}

func (m *labelModel) requireMatches(t *testing.T, g *core.Graph) {
	t.Helper()
	requireIdentity(t, g)
	require.Equal(t, m.labels, xs(g))

	nodes := g.Nodes()
	got := make(map[[2]float64]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		got[pairKey(nodes[e.Source].X, nodes[e.Destination].X)] = true
	}
	require.Equal(t, len(m.edges), g.EdgeCount(), "duplicate or missing edge slots")
	require.Equal(t, m.edges, got)
}

// TestRandomMutationsPreserveInvariants drives a long random sequence of
// inserts, removals and edge edits, checking identity, edge validity and
// edge-follows-node after every step.
func TestRandomMutationsPreserveInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	m := &labelModel{edges: map[[2]float64]bool{}}
	next := 1.0

	for step := 0; step < 2000; step++ {
		n := len(m.labels)
		switch op := rng.Intn(5); {
		case op == 0 || n == 0:
			// Insert at a random slot, possibly appending.
			at := rng.Intn(n + 1)
			require.NoError(t, g.AddNode(core.NewNode(at, next, 0)))
			m.labels = append(m.labels, 0)
			copy(m.labels[at+1:], m.labels[at:])
			m.labels[at] = next
			next++

		case op == 1:
			at := rng.Intn(n)
			label := m.labels[at]
			require.NoError(t, g.RemoveNode(at))
			m.labels = append(m.labels[:at], m.labels[at+1:]...)
			for k := range m.edges {
				if k[0] == label || k[1] == label {
					delete(m.edges, k)
				}
			}

		case op == 2 || op == 3:
			a, b := rng.Intn(n), rng.Intn(n)
			require.NoError(t, g.AddEdge(core.NewEdge(a, b)))
			m.edges[pairKey(m.labels[a], m.labels[b])] = true

		default:
			if g.EdgeCount() == 0 {
				continue
			}
			slot := rng.Intn(g.EdgeCount())
			e, err := g.EdgeAt(slot)
			require.NoError(t, err)
			delete(m.edges, pairKey(m.labels[e.Source], m.labels[e.Destination]))
			require.NoError(t, g.RemoveEdge(slot))
		}

		m.requireMatches(t, g)
	}
}

// TestAddNodeBetweenReroutesByLabel checks the surgery at every insertion
// point of a path graph, including slots that shift both endpoints.
func TestAddNodeBetweenReroutesByLabel(t *testing.T) {
	const size = 6
	for at := 0; at <= size; at++ {
		for before := 0; before < size-1; before++ {
			g := diagonalGraph(t, size)
			for i := 1; i < size; i++ {
				require.NoError(t, g.AddEdge(core.NewEdge(i-1, i)))
			}
			labelBefore, labelAfter := float64(before+1), float64(before+2)

			require.NoError(t, g.AddNodeBetween(core.NewNode(at, 100, 100), before, before+1))

			requireIdentity(t, g)
			require.Equal(t, size+1, g.NodeCount())
			require.Equal(t, size, g.EdgeCount())

			nodes := g.Nodes()
			slotOf := func(label float64) int {
				for _, n := range nodes {
					if n.X == label {
						return n.Index
					}
				}
				t.Fatalf("label %v missing", label)
				return -1
			}
			require.False(t, g.HasEdgeBiDirectional(slotOf(labelBefore), slotOf(labelAfter)))
			require.True(t, g.HasEdgeBiDirectional(slotOf(labelBefore), at))
			require.True(t, g.HasEdgeBiDirectional(at, slotOf(labelAfter)))
		}
	}
}

// TestConnectedNodesIsUndirected checks that adjacency agrees with HasEdgeBiDirectional.
func TestConnectedNodesIsUndirected(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := diagonalGraph(t, 12)
	for i := 0; i < 30; i++ {
		require.NoError(t, g.AddEdge(core.NewEdge(rng.Intn(12), rng.Intn(12))))
	}

	for a := 0; a < 12; a++ {
		na, err := g.GetNode(a)
		require.NoError(t, err)
		var got []int
		for _, n := range g.ConnectedNodes(na) {
			got = append(got, n.Index)
		}
		var want []int
		for b := 0; b < 12; b++ {
			if g.HasEdgeBiDirectional(a, b) {
				want = append(want, b)
			}
		}
		sort.Ints(got)
		require.Equal(t, want, got, "node %d", a)
	}
}
