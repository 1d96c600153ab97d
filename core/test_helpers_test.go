// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pathnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep fixture positions distinct so a node can be recognised after renumbering.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathnet/core"
)

// diagonalGraph returns a graph with n nodes where node i sits at (i+1, i+1).
// Positions double as stable labels: a node keeps its X through every shift.
func diagonalGraph(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		p := float64(i + 1)
		require.NoError(t, g.AddNode(core.NewNode(i, p, p)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

// xs returns the X coordinate of every node in slot order.
func xs(g *core.Graph) []float64 {
	nodes := g.Nodes()
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.X
	}

	return out
}

// requireIdentity asserts that every occupied slot holds the node whose Index is that slot.
func requireIdentity(t *testing.T, g *core.Graph) {
	t.Helper()
	for i, n := range g.Nodes() {
		require.Equal(t, i, n.Index, "slot %d holds index %d", i, n.Index)
	}
	require.NoError(t, g.Validate())
}

// requireEdges asserts the exact edge slot contents.
func requireEdges(t *testing.T, g *core.Graph, want ...core.Edge) {
	t.Helper()
	if len(want) == 0 {
		require.Empty(t, g.Edges())
		require.Equal(t, -1, g.LastEdgeIndex())
		return
	}
	require.Equal(t, want, g.Edges())
	require.Equal(t, len(want)-1, g.LastEdgeIndex())
}
