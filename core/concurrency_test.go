package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathnet/core"
)

// TestConcurrentReadersAndWriter runs queries against a graph that is being
// grown and shrunk; run with -race.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := diagonalGraph(t, 16)
	for i := 1; i < 16; i++ {
		require.NoError(t, g.AddEdge(core.NewEdge(i-1, i)))
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				_ = g.Stats()
				_ = g.NeighborIndices(0)
				_ = g.HasEdgeBiDirectional(1, 2)
				if n, err := g.GetNode(0); err == nil {
					_ = g.ConnectedNodes(n)
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		require.NoError(t, g.AddNode(core.NewNode(0, float64(100+i), 0)))
		require.NoError(t, g.AddEdge(core.NewEdge(0, 1)))
		require.NoError(t, g.RemoveNode(0))
	}
	close(stop)
	wg.Wait()

	require.Equal(t, 16, g.NodeCount())
	require.Equal(t, 15, g.EdgeCount())
	requireIdentity(t, g)
}
