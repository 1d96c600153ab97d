package core_test

import (
	"testing"

	"github.com/katalvlaran/pathnet/core"
)

func buildLine(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithPrealloc(n))
	for i := 0; i < n; i++ {
		if err := g.AddNode(core.NewNode(i, float64(i), 0)); err != nil {
			b.Fatal(err)
		}
		if i > 0 {
			if err := g.AddEdge(core.NewEdge(i-1, i)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

func BenchmarkAddNodeAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for j := 0; j < 256; j++ {
			_ = g.AddNode(core.NewNode(j, float64(j), 0))
		}
	}
}

func BenchmarkInsertAtFront(b *testing.B) {
	g := buildLine(b, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddNode(core.NewNode(0, -1, 0))
		_ = g.RemoveNode(0)
	}
}

func BenchmarkConnectedNodes(b *testing.B) {
	g := buildLine(b, 512)
	n, _ := g.GetNode(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedNodes(n)
	}
}
