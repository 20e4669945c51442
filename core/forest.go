// File: forest.go
// Role: Union-find root table keyed by Vertex.Index.
// Policy:
//   - parent[i] == i marks a component root; exactly one per component.
//   - Link never checks ranks: the caller decides which root survives.
//   - Path compression is opt-in and never changes which root is returned.

package core

// ForestOption configures a Forest before first use.
type ForestOption func(f *Forest)

// WithPathCompression makes Root re-point every vertex on the walked chain
// directly at the resolved root.
func WithPathCompression() ForestOption {
	return func(f *Forest) { f.compress = true }
}

// Forest stores one parent index per vertex. A fresh Forest describes n
// singleton components.
type Forest struct {
	parent   []int
	compress bool
	maxDepth int // longest chain walked by Root so far
}

// NewForest returns a Forest of n singleton components.
// Complexity: O(n).
func NewForest(n int, opts ...ForestOption) *Forest {
	f := &Forest{parent: make([]int, n)}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()

	return f
}

// Reset makes every vertex its own root again.
func (f *Forest) Reset() {
	for i := range f.parent {
		f.parent[i] = i
	}
	f.maxDepth = 0
}

// Len returns the number of vertices tracked by f.
func (f *Forest) Len() int { return len(f.parent) }

// Root resolves i to its component root by following parent links until a
// self-parenting index is reached.
//
// Complexity: O(depth) without compression; amortized near O(1) with it.
func (f *Forest) Root(i int) int {
	r, _ := f.RootDepth(i)

	return r
}

// RootDepth resolves i like Root and also reports how many links were followed.
func (f *Forest) RootDepth(i int) (root, depth int) {
	root = i
	for f.parent[root] != root {
		root = f.parent[root]
		depth++
	}
	if depth > f.maxDepth {
		f.maxDepth = depth
	}

	if f.compress {
		for i != root {
			next := f.parent[i]
			f.parent[i] = root
			i = next
		}
	}

	return root, depth
}

// Link sets parent[child] = parent. It is meant to be called with child being
// a component root, so the whole component moves under parent's component.
func (f *Forest) Link(child, parent int) {
	f.parent[child] = parent
}

// Parent returns the raw parent index of i without resolving the chain.
func (f *Forest) Parent(i int) int { return f.parent[i] }

// Same reports whether i and j resolve to the same root.
func (f *Forest) Same(i, j int) bool { return f.Root(i) == f.Root(j) }

// MaxDepth returns the longest parent chain walked by Root since the last Reset.
func (f *Forest) MaxDepth() int { return f.maxDepth }

// Components returns the number of self-parenting vertices.
// Complexity: O(n).
func (f *Forest) Components() int {
	n := 0
	for i, p := range f.parent {
		if i == p {
			n++
		}
	}

	return n
}
