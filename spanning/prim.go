package spanning

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/minheap"
)

// Prim computes the Minimum Spanning Tree (MST) of g by growing outwards from
// root using a stable min-heap of candidate edges.
//
// Error Conditions:
//   - ErrNilGraph            : if g is nil.
//   - ErrDisconnected        : if |V| == 0 or the graph is not fully connected.
//   - ErrEmptyRoot           : if root == "" and |V| > 1.
//   - core.ErrVertexNotFound : if root does not exist.
//   - core.ErrEmptyVertexName: if root == "" on a one-vertex graph.
//
// Steps:
//  1. Validate g and root.
//  2. Mark root visited, push its edges.
//  3. Pop the lightest edge (u→v); skip if v is visited, else take it,
//     mark v and push v's edges to unvisited neighbors.
//  4. Fewer than |V|−1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n > 1 && root == "" {
		return nil, 0, ErrEmptyRoot
	}
	start, err := g.Vertex(root)
	if err != nil {
		return nil, 0, fmt.Errorf("Prim: root %q: %w", root, err)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	pq := minheap.New(func(a, b core.Edge) bool { return a.Weight < b.Weight })
	push := func(u *core.Vertex) {
		for _, nb := range u.Neighbors {
			if !visited[nb.To.Index] {
				pq.Insert(core.Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	// 2. Seed from root.
	visited[start.Index] = true
	push(start)

	// 3. Expand until |V|−1 edges are taken or candidates run out.
	for pq.Len() > 0 && len(mst) < n-1 {
		e, err := pq.DeleteMin()
		if err != nil {
			return nil, 0, err
		}
		if visited[e.To.Index] {
			continue
		}
		visited[e.To.Index] = true
		mst = append(mst, e)
		total += e.Weight
		push(e.To)
	}

	// 4. Not every vertex reached.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
