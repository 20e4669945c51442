// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Neighbor, Edge, Graph declarations, options and sentinel errors.
// Policy:
//   - Graph is immutable after loading; algorithms keep their own state (Forest).
//   - Vertex order is insertion order; it drives deterministic heap seeding.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that the provided vertex name is empty.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Neighbor is one adjacency entry: the vertex on the other side and the edge weight.
type Neighbor struct {
	// To is the adjacent vertex.
	To *Vertex

	// Weight is the cost of the edge.
	Weight int64
}

// Vertex represents a node in the graph.
//
// Index is the vertex position in its Graph's vertex table and doubles as the
// vertex key in a Forest. Neighbors lists the incident edges in insertion order.
type Vertex struct {
	// Name uniquely identifies this Vertex within its Graph.
	Name string

	// Index is the position of this Vertex in Graph.Vertices().
	Index int

	// Neighbors holds one entry per incident edge direction.
	Neighbors []Neighbor
}

// String returns the vertex name.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return v.Name
}

// Degree returns the number of adjacency entries of v.
func (v *Vertex) Degree() int { return len(v.Neighbors) }

// Edge is one undirected edge as it was added to the Graph.
type Edge struct {
	From   *Vertex
	To     *Vertex
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected, weighted graph with an ordered vertex table.
//
// It is not safe for concurrent mutation. Once loaded, concurrent readers are
// fine because no query mutates state.
type Graph struct {
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	vertices []*Vertex          // insertion order
	byName   map[string]*Vertex // name → Vertex
	edges    []Edge             // each undirected edge once, insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{byName: make(map[string]*Vertex)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
