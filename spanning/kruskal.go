package spanning

import (
	"sort"

	"github.com/katalvlaran/mstree/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses a core.Forest with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : if g is nil.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but g is not fully connected.
//
// Steps:
//  1. Validate g; |V| == 0 → ErrDisconnected, |V| == 1 → trivial empty MST.
//  2. Collect edges via g.Edges(), skipping self-loops.
//  3. Stable sort by ascending weight (ties keep insertion order).
//  4. For each edge (u,v) with Root(u) != Root(v), union and keep it.
//  5. Stop at |V|−1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops to avoid trivial cycles.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort keeps ties in insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find over vertex indices.
	forest := core.NewForest(n, core.WithPathCompression())
	rank := make([]int, n)
	union := func(ru, rv int) {
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[ru] < rank[rv]:
			forest.Link(ru, rv)
		case rank[ru] > rank[rv]:
			forest.Link(rv, ru)
		default:
			forest.Link(rv, ru)
			rank[ru]++
		}
	}

	var (
		mst   = make([]core.Edge, 0, n-1)
		total int64
	)
	for _, e := range edges {
		ru, rv := forest.Root(e.From.Index), forest.Root(e.To.Index)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 5. Fewer than |V|−1 edges means g was disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
