package partialtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/partialtree"
)

// singletons returns n isolated vertices named A, B, ... and one tree per
// vertex over a shared Forest.
func singletons(t *testing.T, n int) ([]*core.Vertex, []*partialtree.Tree, *core.Forest) {
	t.Helper()
	g := core.NewGraph()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		v, err := g.AddVertex(string(rune('A' + i)))
		require.NoError(t, err)
		vs[i] = v
	}
	f := core.NewForest(n)
	ts := make([]*partialtree.Tree, n)
	for i, v := range vs {
		ts[i] = partialtree.NewTree(v, f)
	}

	return vs, ts, f
}

// rootNames lists the anchor names of l front to back.
func rootNames(l *partialtree.List) []string {
	var out []string
	for tr := range l.All() {
		out = append(out, tr.Root().Name)
	}

	return out
}

func TestList_FIFO(t *testing.T) {
	_, ts, f := singletons(t, 3)
	l := partialtree.NewList(f)
	for _, tr := range ts {
		l.Append(tr)
	}
	require.Equal(t, 3, l.Size())
	assert.Equal(t, []string{"A", "B", "C"}, rootNames(l))

	for _, want := range ts {
		got, err := l.Remove()
		require.NoError(t, err)
		assert.Same(t, want, got)
	}
	assert.Equal(t, 0, l.Size())

	_, err := l.Remove()
	assert.ErrorIs(t, err, partialtree.ErrEmptyList)
}

func TestList_RemoveAppendRotates(t *testing.T) {
	_, ts, f := singletons(t, 3)
	l := partialtree.NewList(f)
	for _, tr := range ts {
		l.Append(tr)
	}
	front, err := l.Remove()
	require.NoError(t, err)
	l.Append(front)
	assert.Equal(t, []string{"B", "C", "A"}, rootNames(l))
}

func TestList_RemoveTreeContaining_OneNode(t *testing.T) {
	vs, ts, f := singletons(t, 2)
	l := partialtree.NewList(f)
	l.Append(ts[0])

	_, err := l.RemoveTreeContaining(vs[1])
	assert.ErrorIs(t, err, partialtree.ErrNoMatch)
	assert.Equal(t, 1, l.Size())

	got, err := l.RemoveTreeContaining(vs[0])
	require.NoError(t, err)
	assert.Same(t, ts[0], got)
	assert.Equal(t, 0, l.Size())
	assert.Empty(t, rootNames(l))

	_, err = l.RemoveTreeContaining(vs[0])
	assert.ErrorIs(t, err, partialtree.ErrNoMatch)
	_, err = l.RemoveTreeContaining(nil)
	assert.ErrorIs(t, err, partialtree.ErrNoMatch)
}

func TestList_RemoveTreeContaining_RearFixup(t *testing.T) {
	vs, ts, f := singletons(t, 4)
	l := partialtree.NewList(f)
	for _, tr := range ts[:3] {
		l.Append(tr)
	}

	got, err := l.RemoveTreeContaining(vs[2]) // rear
	require.NoError(t, err)
	assert.Same(t, ts[2], got)
	assert.Equal(t, 2, l.Size())

	l.Append(ts[3])
	assert.Equal(t, []string{"A", "B", "D"}, rootNames(l))

	got, err = l.RemoveTreeContaining(vs[0]) // front
	require.NoError(t, err)
	assert.Same(t, ts[0], got)
	assert.Equal(t, []string{"B", "D"}, rootNames(l))
}

func TestList_RemoveTreeContaining_FollowsRoots(t *testing.T) {
	vs, ts, f := singletons(t, 3)
	ts[0].Merge(ts[1]) // B now resolves to A
	l := partialtree.NewList(f)
	l.Append(ts[2])
	l.Append(ts[0])

	got, err := l.RemoveTreeContaining(vs[1])
	require.NoError(t, err)
	assert.Same(t, ts[0], got)
	assert.True(t, got.Contains(vs[1]))
	assert.False(t, got.Contains(vs[2]))
}

func TestList_Iterator(t *testing.T) {
	_, ts, f := singletons(t, 3)
	l := partialtree.NewList(f)

	_, ok := l.Iterator().Next()
	assert.False(t, ok)

	for _, tr := range ts {
		l.Append(tr)
	}
	it := l.Iterator()
	var seen []*partialtree.Tree
	for tr, ok := it.Next(); ok; tr, ok = it.Next() {
		seen = append(seen, tr)
	}
	assert.Equal(t, ts, seen)

	_, ok = it.Next()
	assert.False(t, ok, "iterator is one-shot")

	// Early exit from range-over-func.
	n := 0
	for range l.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTree_MergeMovesArcs(t *testing.T) {
	vs, ts, f := singletons(t, 2)
	ts[0].Arcs().Insert(partialtree.Arc{From: vs[0], To: vs[1], Weight: 4})
	ts[1].Arcs().Insert(partialtree.Arc{From: vs[1], To: vs[0], Weight: 4})

	ts[0].Merge(ts[1])
	assert.Equal(t, 2, ts[0].Arcs().Len())
	assert.Equal(t, 0, ts[1].Arcs().Len())
	assert.Equal(t, 0, f.Root(1))
	assert.Equal(t, "root=A arcs=2", ts[0].String())

	// Equal weights come out in insertion order: own arc first.
	a, err := ts[0].Arcs().DeleteMin()
	require.NoError(t, err)
	assert.Equal(t, "A-B(4)", a.String())

	ts[0].Merge(ts[0])
	ts[0].Merge(nil)
	assert.Equal(t, 1, ts[0].Arcs().Len())
}
