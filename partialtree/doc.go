// Package partialtree computes a Minimum Spanning Tree (MST) of an undirected,
// weighted, connected *core.Graph by repeatedly merging "partial trees".
//
// What & Why
//
//   - Every vertex starts as its own partial tree holding a min-heap of the
//     arcs leaving it.
//   - The tree at the front of a circular work list is popped, its cheapest
//     arc that leaves the component is taken, the tree owning the far endpoint
//     is cut out of the list, the two are merged, and the result goes to the
//     back of the list.
//   - When one tree remains, the arcs taken so far are the MST.
//
// Because every tree gets a turn before any merged tree gets a second one,
// components grow evenly, in the spirit of Borůvka's algorithm, while the
// single work list keeps the whole run sequential and deterministic.
//
// Building blocks
//
//   - Arc:    one directed view From → To of an undirected edge, with Weight.
//   - Tree:   a component's anchor vertex plus a minheap.Heap[Arc] of candidates.
//   - List:   circular singly-linked list of Trees (rear pointer, explicit size).
//   - Solver: Initializing → Merging → Done state machine over a List.
//
// Cycle detection uses a core.Forest: a Tree's anchor is always the root of
// its component, and merging links the absorbed anchor under the survivor.
//
// Determinism
//
//   - Trees are seeded in graph vertex order, arcs in adjacency order.
//   - The heap breaks weight ties by insertion order; there is no secondary
//     comparison on vertex names.
//   - Running twice on the same graph yields the same arcs in the same order.
//
// Complexity
//
//   - Heap work: O(E log E) overall.
//   - RemoveTreeContaining: O(size of list) per step, O(V²) worst case overall.
//   - Root resolution: O(depth) per lookup without path compression.
//
// Error Conditions
//
//   - ErrNilGraph      : graph is nil.
//   - ErrEmptyGraph    : graph has no vertices (MST only).
//   - ErrDisconnected  : a component ran out of outgoing arcs; no spanning tree exists.
//   - ErrEmptyList     : Remove on an empty list, or a merge step with ≤ 1 tree.
//   - ErrNoMatch       : no tree in the list owns a vertex (internal inconsistency).
//
// ErrDisconnected is the only failure a well-formed graph can produce; the
// others indicate misuse or a broken invariant.
package partialtree
