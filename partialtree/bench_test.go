package partialtree_test

import (
	"testing"

	"github.com/katalvlaran/mstree/builder"
	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/partialtree"
	"github.com/katalvlaran/mstree/spanning"
)

// benchGraph builds a connected random graph with n vertices and 3n extra edges.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10000)},
		builder.RandomConnected(n, 3*n))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkMST(b *testing.B) {
	g := benchGraph(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := partialtree.MST(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMST_PathCompression(b *testing.B) {
	g := benchGraph(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := partialtree.MST(g, partialtree.WithPathCompression()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskalBaseline(b *testing.B) {
	g := benchGraph(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := spanning.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}
