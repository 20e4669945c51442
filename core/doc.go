// Package core defines the graph model consumed by the partial-tree MST engine:
// an ordered vertex table whose entries carry their own adjacency lists, and a
// Forest that records union-find root pointers for one algorithm run.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices keep the order in which they were added (Vertex.Index).
//   - Every undirected edge is stored twice, once in each endpoint's
//     Neighbors slice; a self-loop (when enabled) is stored once.
//   - Weights are non-negative int64 values.
//   - Parallel edges and self-loops are rejected unless enabled
//     (WithMultiEdges, WithLoops).
//
// Graph is built once by a loader or a builder and then treated as read-only.
// Algorithms never mutate it: mutable per-run state lives in a Forest, so a
// single Graph may be solved any number of times.
//
// Forest:
//
//	f := core.NewForest(g.Order())
//	f.Root(i)          // follow parent indices until a self-parenting vertex
//	f.Link(child, p)   // parent[child] = p
//
// Root resolution is not path-compressed by default; the chain walked by Root
// can grow with every merge. WithPathCompression flattens chains on lookup.
// Either way the resolved root is identical, so merge decisions never change.
//
// Errors:
//
//	ErrEmptyVertexName     - vertex name is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - negative edge weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
