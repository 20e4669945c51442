package partialtree

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/minheap"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("partialtree: graph is nil")

	// ErrEmptyGraph is returned by MST when the graph has no vertices.
	ErrEmptyGraph = errors.New("partialtree: graph has no vertices")

	// ErrDisconnected indicates that some component has no outgoing arc left,
	// so the graph has no spanning tree.
	ErrDisconnected = errors.New("partialtree: graph is disconnected")

	// ErrEmptyList is returned by List.Remove on an empty list and by a merge
	// step attempted with fewer than two trees.
	ErrEmptyList = errors.New("partialtree: list is empty")

	// ErrNoMatch is returned by List.RemoveTreeContaining when no tree's
	// component contains the vertex.
	ErrNoMatch = errors.New("partialtree: no matching tree")
)

// Arc is one directed view From → To of an undirected edge.
type Arc struct {
	From   *core.Vertex
	To     *core.Vertex
	Weight int64
}

// String renders the arc as "From-To(Weight)".
func (a Arc) String() string {
	return fmt.Sprintf("%s-%s(%d)", a.From, a.To, a.Weight)
}

// arcLess orders arcs by ascending weight; the heap resolves ties.
func arcLess(a, b Arc) bool { return a.Weight < b.Weight }

// TotalWeight sums the weights of arcs.
func TotalWeight(arcs []Arc) int64 {
	var total int64
	for _, a := range arcs {
		total += a.Weight
	}

	return total
}

// Tree is one partial tree: the anchor vertex of a component and the heap of
// candidate arcs leaving it.
//
// The anchor stays self-parenting in the Forest for as long as the Tree is in
// play, so Root() is always the component's resolved root.
type Tree struct {
	root  *core.Vertex
	arcs  *minheap.Heap[Arc]
	roots *core.Forest
}

// NewTree creates a singleton tree anchored at v with an empty arc heap.
// roots is the Forest shared by every tree of the same run.
func NewTree(v *core.Vertex, roots *core.Forest) *Tree {
	return &Tree{
		root:  v,
		arcs:  minheap.New(arcLess),
		roots: roots,
	}
}

// Root returns the anchor vertex of t.
func (t *Tree) Root() *core.Vertex { return t.root }

// Arcs returns the heap of candidate arcs owned by t.
func (t *Tree) Arcs() *minheap.Heap[Arc] { return t.arcs }

// Contains reports whether v resolves to the same root as t's anchor.
func (t *Tree) Contains(v *core.Vertex) bool {
	if v == nil {
		return false
	}

	return t.roots.Root(t.root.Index) == t.roots.Root(v.Index)
}

// Merge absorbs other into t: other's anchor is linked under t's anchor and
// other's candidate arcs move into t's heap. other must not be used afterwards.
func (t *Tree) Merge(other *Tree) {
	if other == nil || other == t {
		return
	}
	t.roots.Link(other.root.Index, t.root.Index)
	t.arcs.Merge(other.arcs)
}

// String renders the tree as "root=A arcs=3".
func (t *Tree) String() string {
	return fmt.Sprintf("root=%s arcs=%d", t.root, t.arcs.Len())
}

// Option configures a Solver (and the Initialize/Execute/MST helpers).
type Option func(*Options)

// Options holds configurable parameters of a partial-tree run.
type Options struct {
	// PathCompression flattens root chains on lookup. Merge decisions are unchanged.
	PathCompression bool

	// OnMerge, if non-nil, is invoked after every successful merge step with
	// the 1-based step number and the arc added to the MST.
	// Returning an error aborts the run with that error.
	OnMerge func(step int, a Arc) error

	// Logger, if non-nil, receives one Debug entry per merge step.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with no compression, no hook, no logger.
func DefaultOptions() Options {
	return Options{
		PathCompression: false,
		OnMerge:         nil,
		Logger:          nil,
	}
}

// WithPathCompression enables path compression in the run's Forest.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// WithOnMerge installs fn as the per-step hook.
func WithOnMerge(fn func(step int, a Arc) error) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// WithLogger routes step tracing to log. Passing nil disables tracing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
