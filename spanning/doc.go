// Package spanning provides reference Minimum Spanning Tree algorithms over
// *core.Graph, Prim's and Kruskal's, together with Verify, a checker that
// decides whether an edge set is a spanning tree of a graph.
//
// The package exists to cross-check other MST engines (the partial-tree
// solver in particular): MST weight is unique even when the tree is not, so
// comparing Weight(result) against Kruskal's weight is a complete test of
// minimality, and Verify covers the structural half (|V|−1 edges, no cycle,
// every edge present in the graph).
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Stable sort of all edges by weight, then union-find (core.Forest with
//     path compression plus union by rank). Self-loops are skipped.
//     Time O(E log E), space O(V + E).
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grows one tree from root with a stable minheap.Heap of candidate edges.
//     Time O(E log E), space O(V + E).
//
//   - Verify(g, edges) error
//     Structural spanning-tree check. Time O(V + E·deg).
//
// Determinism
//
//   - g.Edges() and adjacency lists are in insertion order; the stable sort
//     and the stable heap keep equal-weight edges in that order.
//
// Error Conditions
//
//   - ErrNilGraph      : graph is nil.
//   - ErrDisconnected  : |V| == 0, or the graph is not connected.
//   - ErrEmptyRoot     : Prim called with an empty root.
//   - core.ErrVertexNotFound : Prim root missing.
//   - ErrEdgeCount, ErrForeignEdge, ErrCycle : Verify failures.
package spanning
