package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstree/builder"
)

// ExampleBuildGraph builds a weighted wheel with letter IDs.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
		builder.Wheel(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s(%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// A-B(2)
	// B-C(2)
	// C-A(2)
	// Center-A(2)
	// Center-B(2)
	// Center-C(2)
}
