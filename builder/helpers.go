package builder

import (
	"github.com/katalvlaran/mstree/core"
)

// addVertices inserts n vertices named cfg.idFn(0..n-1) in index order and
// returns their IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, builderErrorf(method, err, "AddVertex(%s)", ids[i])
		}
	}

	return ids, nil
}

// addEdge draws a weight and adds the undirected edge u-v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return builderErrorf(method, err, "AddEdge(%s-%s, w=%d)", u, v, w)
	}

	return nil
}
