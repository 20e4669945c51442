package spanning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/builder"
	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/spanning"
)

// buildTriangle constructs A-B(1), B-C(2), A-C(3); its MST is A-B, B-C with weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	return g
}

// buildMediumGraph creates a connected graph with n vertices and n-1+extra
// edges, deterministic for the fixed seed.
func buildMediumGraph(t *testing.T, n, extra int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithPrefixIDs("V"), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(n, extra))
	require.NoError(t, err)

	return g
}

func TestValidation_EmptyOrDisconnected(t *testing.T) {
	g := core.NewGraph()
	_, _, err := spanning.Kruskal(g)
	assert.ErrorIs(t, err, spanning.ErrDisconnected)
	_, _, err = spanning.Prim(g, "A")
	assert.ErrorIs(t, err, spanning.ErrDisconnected)

	_, _ = g.AddVertex("A")
	_, _ = g.AddVertex("B")
	_, _, err = spanning.Kruskal(g)
	assert.ErrorIs(t, err, spanning.ErrDisconnected)
	_, _, err = spanning.Prim(g, "A")
	assert.ErrorIs(t, err, spanning.ErrDisconnected)

	_, _, err = spanning.Kruskal(nil)
	assert.ErrorIs(t, err, spanning.ErrNilGraph)
	_, _, err = spanning.Prim(nil, "A")
	assert.ErrorIs(t, err, spanning.ErrNilGraph)
}

func TestPrim_RootValidation(t *testing.T) {
	g := buildTriangle(t)
	_, _, err := spanning.Prim(g, "")
	assert.ErrorIs(t, err, spanning.ErrEmptyRoot)
	_, _, err = spanning.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	single := core.NewGraph()
	_, err = single.AddVertex("A")
	require.NoError(t, err)
	_, _, err = spanning.Prim(single, "")
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
	assert.NotErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("A")

	edges, w, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, w)

	edges, w, err = spanning.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, w)
}

func TestTriangle(t *testing.T) {
	g := buildTriangle(t)

	edges, w, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From.Name)
	assert.Equal(t, "B", edges[0].To.Name)

	edges, w, err = spanning.Prim(g, "C")
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	assert.NoError(t, spanning.Verify(g, edges))
}

func TestParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 0))
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("A", "B", 4))

	_, w, err := spanning.Kruskal(g)
	require.NoError(t, err)
	assert.EqualValues(t, 4, w)

	_, w, err = spanning.Prim(g, "B")
	require.NoError(t, err)
	assert.EqualValues(t, 4, w)
}

func TestMediumGraph_PrimEqualsKruskal(t *testing.T) {
	g := buildMediumGraph(t, 200, 600)

	ke, kw, err := spanning.Kruskal(g)
	require.NoError(t, err)
	pe, pw, err := spanning.Prim(g, "V0")
	require.NoError(t, err)

	assert.Equal(t, kw, pw)
	assert.Equal(t, kw, spanning.Weight(ke))
	assert.NoError(t, spanning.Verify(g, ke))
	assert.NoError(t, spanning.Verify(g, pe))
}

func TestVerify_Failures(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Vertex("A")
	b, _ := g.Vertex("B")
	c, _ := g.Vertex("C")

	err := spanning.Verify(g, []core.Edge{{From: a, To: b, Weight: 1}})
	assert.ErrorIs(t, err, spanning.ErrEdgeCount)

	err = spanning.Verify(g, []core.Edge{{From: a, To: b, Weight: 1}, {From: b, To: a, Weight: 1}})
	assert.ErrorIs(t, err, spanning.ErrCycle)

	err = spanning.Verify(g, []core.Edge{{From: a, To: b, Weight: 1}, {From: b, To: c, Weight: 7}})
	assert.ErrorIs(t, err, spanning.ErrForeignEdge)

	other := core.NewGraph()
	_ = other.AddEdge("A", "B", 1)
	oa, _ := other.Vertex("A")
	ob, _ := other.Vertex("B")
	err = spanning.Verify(g, []core.Edge{{From: oa, To: ob, Weight: 1}, {From: b, To: c, Weight: 2}})
	assert.ErrorIs(t, err, spanning.ErrForeignEdge)

	assert.ErrorIs(t, spanning.Verify(nil, nil), spanning.ErrNilGraph)
	assert.NoError(t, spanning.Verify(g, []core.Edge{{From: c, To: a, Weight: 3}, {From: b, To: c, Weight: 2}}))
}
