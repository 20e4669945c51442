// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() and Edges() return insertion order.
//   - AddEdge appends to both endpoints' Neighbors in call order.

package core

// AddVertex inserts a vertex if missing (idempotent) and returns it.
//
// Errors:
//   - ErrEmptyVertexName: if name == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (*Vertex, error) {
	if name == "" {
		return nil, ErrEmptyVertexName
	}
	if v, ok := g.byName[name]; ok {
		return v, nil // no-op for existing vertex
	}

	v := &Vertex{Name: name, Index: len(g.vertices)}
	g.vertices = append(g.vertices, v)
	g.byName[name] = v

	return v, nil
}

// AddEdge adds an undirected edge from—to with the given weight, creating
// missing endpoints first.
//
// Steps:
//  1. Validate names, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Check the multi-edge constraint on from's adjacency.
//  4. Append Neighbor{to} to from and, unless it is a loop, Neighbor{from} to to.
//
// Errors: ErrEmptyVertexName, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexName
	}
	if weight < 0 {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	u, err := g.AddVertex(from)
	if err != nil {
		return err
	}
	v, err := g.AddVertex(to)
	if err != nil {
		return err
	}

	if !g.allowMulti && g.adjacent(u, v) {
		return ErrMultiEdgeNotAllowed
	}

	u.Neighbors = append(u.Neighbors, Neighbor{To: v, Weight: weight})
	if u != v {
		v.Neighbors = append(v.Neighbors, Neighbor{To: u, Weight: weight})
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// adjacent reports whether u already lists v as a neighbor.
func (g *Graph) adjacent(u, v *Vertex) bool {
	for _, nb := range u.Neighbors {
		if nb.To == v {
			return true
		}
	}

	return false
}

// HasVertex reports whether the vertex name exists (empty name ⇒ false).
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.byName[name]

	return ok
}

// HasEdge reports whether at least one edge between from and to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.byName[from]
	if !ok {
		return false
	}
	v, ok := g.byName[to]
	if !ok {
		return false
	}

	return g.adjacent(u, v)
}

// Vertex returns the vertex with the given name.
//
// Errors:
//   - ErrEmptyVertexName: if name == "".
//   - ErrVertexNotFound: if no such vertex exists.
func (g *Graph) Vertex(name string) (*Vertex, error) {
	if name == "" {
		return nil, ErrEmptyVertexName
	}
	v, ok := g.byName[name]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// VertexAt returns the vertex stored at index i, or ErrVertexNotFound when i
// is out of range.
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[i], nil
}

// Vertices returns the vertex table in insertion order.
// The returned slice is a copy; the *Vertex values are shared and must be
// treated as read-only.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns each undirected edge once, in the order it was added.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Order returns the number of vertices |V|.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of undirected edges |E|.
func (g *Graph) Size() int { return len(g.edges) }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
