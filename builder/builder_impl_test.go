// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying node placement, edge
// emission order, composition, and error wrapping.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathnet/builder"
	"github.com/katalvlaran/pathnet/core"
	"github.com/katalvlaran/pathnet/gridgraph"
)

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOrigin(50, 50), builder.WithSpacing(50)},
		builder.Grid(10, 10))
	require.NoError(t, err)
	require.Equal(t, 100, g.NodeCount())
	// 9 right edges per row and 9 down edges per column.
	require.Equal(t, 180, g.EdgeCount())
	require.NoError(t, g.Validate())

	for _, n := range g.Nodes() {
		require.Equal(t, float64(n.Index%10*50+50), n.X)
		require.Equal(t, float64(n.Index/10*50+50), n.Y)
	}

	// Right then down for cell 0, right for cell 1, and so on.
	edges := g.Edges()
	require.Equal(t, core.NewEdge(0, 1), edges[0])
	require.Equal(t, core.NewEdge(0, 10), edges[1])
	require.Equal(t, core.NewEdge(1, 2), edges[2])
	require.Equal(t, core.NewEdge(89, 99), edges[len(edges)-10])
	require.Equal(t, core.NewEdge(98, 99), edges[len(edges)-1])
}

func TestGridSingleCell(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Grid(1, 1))
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
	require.Zero(t, g.EdgeCount())
}

func TestPositionsChainConnect(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil,
		builder.Positions(builder.Point{0, 0}, builder.Point{3, 4}, builder.Point{6, 8}, builder.Point{0, 8}),
		builder.Chain(0, 2),
		builder.Connect([2]int{3, 0}, [2]int{2, 3}, [2]int{0, 1}),
	)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{
		core.NewEdge(0, 1), core.NewEdge(1, 2), core.NewEdge(3, 0), core.NewEdge(2, 3),
	}, g.Edges())

	n, err := g.GetNode(1)
	require.NoError(t, err)
	require.Equal(t, core.NewNode(1, 3, 4), n)
}

func TestConstructorsAppend(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil,
		builder.Positions(builder.Point{-1, -1}),
		builder.Grid(2, 2),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, []core.Edge{
		core.NewEdge(1, 2), core.NewEdge(1, 3), core.NewEdge(2, 4), core.NewEdge(3, 4),
	}, g.Edges())
	requireNodeAt(t, g, 4, 1, 1)
}

func TestRandomGeometricDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
			builder.RandomGeometric(40, 100, 100, 25))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.Nodes(), b.Nodes())
	require.Equal(t, a.Edges(), b.Edges())
	require.NoError(t, a.Validate())

	nodes := a.Nodes()
	for _, n := range nodes {
		require.GreaterOrEqual(t, n.X, 0.0)
		require.Less(t, n.X, 100.0)
		require.GreaterOrEqual(t, n.Y, 0.0)
		require.Less(t, n.Y, 100.0)
	}
	for _, e := range a.Edges() {
		require.LessOrEqual(t, core.Distance(nodes[e.Source], nodes[e.Destination]), 25.0)
	}
	// Every close pair is joined.
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if core.Distance(nodes[i], nodes[j]) <= 25 {
				require.True(t, a.HasEdgeBiDirectional(i, j))
			}
		}
	}
}

func TestTerrain(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOrigin(5, 5), builder.WithSpacing(10)},
		builder.Positions(builder.Point{-100, -100}),
		builder.Terrain([]string{
			".#",
			"..",
		}, true),
	)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	requireNodeAt(t, g, 1, 5, 5)
	requireNodeAt(t, g, 2, 5, 15)
	requireNodeAt(t, g, 3, 15, 15)
	// Cell (0,0) joins down and down-right; (0,1) joins right.
	require.Equal(t, []core.Edge{core.NewEdge(1, 3), core.NewEdge(1, 2), core.NewEdge(2, 3)}, g.Edges())
}

func TestBuilderErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"grid rows", builder.Grid(0, 3), nil, builder.ErrTooFewNodes},
		{"grid cols", builder.Grid(3, -1), nil, builder.ErrTooFewNodes},
		{"chain span", builder.Chain(2, 2), nil, builder.ErrTooFewNodes},
		{"chain missing nodes", builder.Chain(0, 3), nil, core.ErrEdgeEndpointInvalid},
		{"connect missing nodes", builder.Connect([2]int{0, 1}), nil, core.ErrEdgeEndpointInvalid},
		{"geometric n", builder.RandomGeometric(0, 1, 1, 1), nil, builder.ErrTooFewNodes},
		{"geometric radius", builder.RandomGeometric(3, 1, 1, 0), nil, builder.ErrInvalidParameter},
		{"geometric rng", builder.RandomGeometric(3, 1, 1, 1), nil, builder.ErrNeedRandSource},
		{"terrain empty", builder.Terrain(nil, false), nil, gridgraph.ErrEmptyGrid},
		{"terrain ragged", builder.Terrain([]string{"..", "."}, false), nil, builder.ErrInvalidParameter},
		{"terrain cell", builder.Terrain([]string{".?"}, false), nil, gridgraph.ErrUnknownCell},
		{"terrain blocked", builder.Terrain([]string{"##", "##"}, true), nil, builder.ErrTooFewNodes},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestBuildGraphCapacity(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph([]core.GraphOption{core.WithMaxNodes(10)}, nil, builder.Grid(4, 4))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestApplyNilGraph(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Grid(1, 1)), builder.ErrConstructFailed)
}

func requireNodeAt(t *testing.T, g *core.Graph, index int, x, y float64) {
	t.Helper()
	n, err := g.GetNode(index)
	require.NoError(t, err)
	require.Equal(t, x, n.X)
	require.Equal(t, y, n.Y)
}
