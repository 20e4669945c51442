package spanning

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// Verify reports whether edges form a spanning tree of g.
//
// Checks, in order:
//  1. len(edges) == |V|−1                      (ErrEdgeCount)
//  2. every edge joins two vertices of g with a
//     matching adjacency entry of equal weight  (ErrForeignEdge)
//  3. no edge closes a cycle                    (ErrCycle)
//
// An acyclic set of |V|−1 edges over |V| vertices is connected, so passing all
// three checks means edges span g. Minimality is not checked here; compare
// Weight(edges) with Kruskal's weight for that.
//
// Complexity: O(V + E·deg) time, O(V) memory.
func Verify(g *core.Graph, edges []core.Edge) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return ErrDisconnected
	}
	if len(edges) != n-1 {
		return fmt.Errorf("spanning: got %d edges for %d vertices: %w", len(edges), n, ErrEdgeCount)
	}

	forest := core.NewForest(n, core.WithPathCompression())
	for i, e := range edges {
		if !inGraph(g, e) {
			return fmt.Errorf("spanning: edge %d %s-%s(%d): %w", i, e.From, e.To, e.Weight, ErrForeignEdge)
		}
		ru, rv := forest.Root(e.From.Index), forest.Root(e.To.Index)
		if ru == rv {
			return fmt.Errorf("spanning: edge %d %s-%s: %w", i, e.From, e.To, ErrCycle)
		}
		forest.Link(rv, ru)
	}

	return nil
}

// inGraph reports whether e's endpoints belong to g and are adjacent with e's weight.
func inGraph(g *core.Graph, e core.Edge) bool {
	if e.From == nil || e.To == nil {
		return false
	}
	u, err := g.VertexAt(e.From.Index)
	if err != nil || u != e.From {
		return false
	}
	v, err := g.VertexAt(e.To.Index)
	if err != nil || v != e.To {
		return false
	}
	for _, nb := range u.Neighbors {
		if nb.To == v && nb.Weight == e.Weight {
			return true
		}
	}

	return false
}
