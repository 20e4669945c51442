package core_test

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// ExampleGraph demonstrates building a small weighted graph and reading back
// its adjacency in insertion order.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("B", "C", 2)

	for _, v := range g.Vertices() {
		fmt.Printf("%s:", v)
		for _, nb := range v.Neighbors {
			fmt.Printf(" %s(%d)", nb.To, nb.Weight)
		}
		fmt.Println()
	}
	// Output:
	// A: B(4) C(1)
	// B: A(4) C(2)
	// C: A(1) B(2)
}

// ExampleForest shows root resolution over a linked chain.
func ExampleForest() {
	f := core.NewForest(3)
	f.Link(2, 1)
	f.Link(1, 0)

	root, depth := f.RootDepth(2)
	fmt.Println(root, depth, f.Components())
	// Output: 0 2 1
}
