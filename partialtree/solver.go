package partialtree

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/minheap"
)

// State is the phase of a Solver.
type State int

const (
	Initializing State = iota // list not built yet
	Merging                   // list holds more than one tree
	Done                      // one tree left, or the run failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Merging:
		return "Merging"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats reports counters of a run.
type Stats struct {
	// Steps is the number of successful merge steps.
	Steps int

	// Discarded counts arcs popped and dropped because both ends were
	// already in the same component (self-loops included).
	Discarded int

	// MaxRootDepth is the longest parent chain walked during root resolution.
	MaxRootDepth int
}

// Solver runs the partial-tree MST algorithm over one graph.
//
// A Solver is single-use and not safe for concurrent use. The graph itself is
// never mutated, so independent Solvers may share it.
type Solver struct {
	g     *core.Graph
	opts  Options
	roots *core.Forest
	list  *List
	state State
	arcs  []Arc
	stats Stats
	err   error // sticky failure; the solver stays Done
}

// NewSolver prepares a Solver for g. Nothing is computed until Initialize,
// Step or Run is called.
//
// Errors: ErrNilGraph if g is nil.
func NewSolver(g *core.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Solver{g: g, opts: resolveOptions(opts), state: Initializing}, nil
}

// State returns the current phase.
func (s *Solver) State() State { return s.state }

// List returns the work list, or nil before Initialize.
func (s *Solver) List() *List { return s.list }

// Arcs returns the MST arcs collected so far, in the order they were added.
func (s *Solver) Arcs() []Arc {
	out := make([]Arc, len(s.arcs))
	copy(out, s.arcs)

	return out
}

// Stats returns the run counters collected so far.
func (s *Solver) Stats() Stats {
	st := s.stats
	if s.roots != nil {
		st.MaxRootDepth = s.roots.MaxDepth()
	}

	return st
}

// Initialize builds one singleton tree per vertex, in graph order, seeds its
// heap with one arc per adjacency entry, and appends it to a fresh list.
// Calling Initialize again restarts the run from scratch.
func (s *Solver) Initialize() {
	s.roots = s.opts.forest(s.g.Order())
	s.list = seed(s.g, s.roots)
	s.arcs = make([]Arc, 0, max(s.g.Order()-1, 0))
	s.stats = Stats{}
	s.err = nil

	s.state = Merging
	if s.list.Size() <= 1 {
		s.state = Done
	}
}

// seed builds the initial list over g using roots.
func seed(g *core.Graph, roots *core.Forest) *List {
	l := NewList(roots)
	for _, v := range g.Vertices() {
		t := NewTree(v, roots)
		for _, nb := range v.Neighbors {
			t.arcs.Insert(Arc{From: v, To: nb.To, Weight: nb.Weight})
		}
		l.Append(t)
	}

	return l
}

// Step performs one merge and returns the arc it added to the MST.
// A Solver still in Initializing is initialized first.
//
// Errors:
//   - ErrDisconnected: the front tree has no arc leaving its component.
//   - ErrEmptyList:    the run is already Done.
//   - ErrNoMatch:      union-find inconsistency (should be unreachable).
//   - any error returned by the OnMerge hook.
//
// After an error the Solver is Done and keeps returning that error.
func (s *Solver) Step() (Arc, error) {
	if s.err != nil {
		return Arc{}, s.err
	}
	if s.state == Initializing {
		s.Initialize()
	}
	if s.state == Done {
		return Arc{}, fmt.Errorf("partialtree: step with %d trees: %w", s.list.Size(), ErrEmptyList)
	}

	a, discarded, err := mergeStep(s.list)
	s.stats.Discarded += discarded
	if err != nil {
		return Arc{}, s.fail(err)
	}
	s.arcs = append(s.arcs, a)
	s.stats.Steps++

	if err = s.opts.report(s.stats.Steps, a, discarded, s.list.Size()); err != nil {
		return Arc{}, s.fail(err)
	}

	if s.list.Size() <= 1 {
		s.state = Done
	}

	return a, nil
}

// forest builds the run's root table for n vertices.
func (o Options) forest(n int) *core.Forest {
	if o.PathCompression {
		return core.NewForest(n, core.WithPathCompression())
	}

	return core.NewForest(n)
}

// report logs a finished step and runs the OnMerge hook.
func (o Options) report(step int, a Arc, discarded, remaining int) error {
	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"step":      step,
			"arc":       a.String(),
			"discarded": discarded,
			"remaining": remaining,
		}).Debug("merged partial trees")
	}
	if o.OnMerge != nil {
		if err := o.OnMerge(step, a); err != nil {
			return fmt.Errorf("partialtree: OnMerge at step %d: %w", step, err)
		}
	}

	return nil
}

func (s *Solver) fail(err error) error {
	s.err = err
	s.state = Done

	return err
}

// Run initializes the Solver if needed and steps until Done.
// It returns the MST arcs in the order they were added.
func (s *Solver) Run() ([]Arc, error) {
	if s.state == Initializing {
		s.Initialize()
	}
	for s.state == Merging {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}
	if s.err != nil {
		return nil, s.err
	}

	return s.Arcs(), nil
}

// mergeStep pops the front tree, finds its cheapest arc leaving the component,
// removes the tree on the far side, merges the two and re-appends the result.
// It returns the chosen arc and how many arcs were discarded on the way.
func mergeStep(l *List) (Arc, int, error) {
	tx, err := l.Remove()
	if err != nil {
		return Arc{}, 0, err
	}

	roots := l.Forest()
	rx := roots.Root(tx.root.Index)
	discarded := 0

	var a Arc
	for {
		a, err = tx.arcs.DeleteMin()
		if errors.Is(err, minheap.ErrEmpty) {
			return Arc{}, discarded, fmt.Errorf("partialtree: component of %s has no outgoing arc: %w", tx.root, ErrDisconnected)
		}
		if err != nil {
			return Arc{}, discarded, err
		}
		if roots.Root(a.To.Index) != rx {
			break
		}
		discarded++ // same component: would close a cycle
	}

	ty, err := l.RemoveTreeContaining(a.To)
	if err != nil {
		return Arc{}, discarded, fmt.Errorf("partialtree: locate tree of %s: %w", a.To, err)
	}

	tx.Merge(ty)
	l.Append(tx)

	return a, discarded, nil
}

// Initialize builds the initial partial tree list for g: one singleton tree
// per vertex, each seeded with that vertex's arcs.
//
// Errors: ErrNilGraph if g is nil.
func Initialize(g *core.Graph, opts ...Option) (*List, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolveOptions(opts)

	return seed(g, o.forest(g.Order())), nil
}

// Execute merges the trees of l until one is left and returns the arcs that
// were added, in order. Only the OnMerge and Logger options apply; the
// list's Forest was fixed by Initialize.
//
// Errors: ErrDisconnected, ErrNoMatch, or the OnMerge hook's error.
func Execute(l *List, opts ...Option) ([]Arc, error) {
	o := resolveOptions(opts)
	arcs := make([]Arc, 0, max(l.Size()-1, 0))
	for step := 1; l.Size() > 1; step++ {
		a, discarded, err := mergeStep(l)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, a)
		if err = o.report(step, a, discarded, l.Size()); err != nil {
			return nil, err
		}
	}

	return arcs, nil
}

// MST computes the minimum spanning tree of g and returns its arcs (in the
// order they were added) and their total weight.
//
// A single-vertex graph yields an empty tree with weight 0.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDisconnected, or the OnMerge hook's error.
func MST(g *core.Graph, opts ...Option) ([]Arc, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, 0, ErrEmptyGraph
	}

	s, err := NewSolver(g, opts...)
	if err != nil {
		return nil, 0, err
	}
	arcs, err := s.Run()
	if err != nil {
		return nil, 0, err
	}

	return arcs, TotalWeight(arcs), nil
}
