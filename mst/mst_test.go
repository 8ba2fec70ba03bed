package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/mst"
)

const eps = 1e-9

// we is a compact weighted-edge literal for fixtures.
type we struct {
	v, w   int
	weight float64
}

// buildGraph fills a weighted undirected graph from edge literals.
func buildGraph(t *testing.T, v int, edges []we) *core.EdgeWeightedGraph {
	t.Helper()
	g, err := core.NewEdgeWeightedGraph(v)
	require.NoError(t, err)
	for _, x := range edges {
		e, err := core.NewEdge(x.v, x.w, x.weight)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

// tinyEdges is the classic 8-vertex fixture whose MST weighs 1.81.
var tinyEdges = []we{
	{4, 5, 0.35}, {4, 7, 0.37}, {5, 7, 0.28}, {0, 7, 0.16},
	{1, 5, 0.32}, {0, 4, 0.38}, {2, 3, 0.17}, {1, 7, 0.19},
	{0, 2, 0.26}, {1, 2, 0.36}, {1, 3, 0.29}, {2, 7, 0.34},
	{6, 2, 0.40}, {3, 6, 0.52}, {6, 0, 0.58}, {6, 4, 0.93},
}

// allFour runs every algorithm against g.
func allFour(t *testing.T, g *core.EdgeWeightedGraph) map[string]mst.Forest {
	t.Helper()
	lazy, err := mst.LazyPrim(g)
	require.NoError(t, err)
	eager, err := mst.Prim(g)
	require.NoError(t, err)
	kruskal, err := mst.Kruskal(g)
	require.NoError(t, err)
	boruvka, err := mst.Boruvka(g)
	require.NoError(t, err)

	return map[string]mst.Forest{
		"lazyprim": lazy,
		"prim":     eager,
		"kruskal":  kruskal,
		"boruvka":  boruvka,
	}
}

// TestConnectedGraph: all four agree on the weight, emit V-1 edges and
// pass the verifier.
func TestConnectedGraph(t *testing.T) {
	g := buildGraph(t, 8, tinyEdges)

	for name, f := range allFour(t, g) {
		assert.InDelta(t, 1.81, f.Weight(), eps, name)
		assert.Len(t, f.Edges(), 7, name)
		assert.NoError(t, mst.Verify(g, f), name)
	}
}

// TestDisconnectedGraph: two components yield a forest of V-C edges, one
// tree per component.
func TestDisconnectedGraph(t *testing.T) {
	g := buildGraph(t, 6, []we{
		{0, 1, 1.0}, {1, 2, 2.0}, {0, 2, 3.0}, // component {0,1,2}
		{3, 4, 0.5}, {4, 5, 0.25}, {3, 5, 4.0}, // component {3,4,5}
	})

	for name, f := range allFour(t, g) {
		assert.Len(t, f.Edges(), 4, name)
		assert.InDelta(t, 1.0+2.0+0.5+0.25, f.Weight(), eps, name)
		assert.NoError(t, mst.Verify(g, f), name)
	}
}

// TestSelfLoopsAndParallels: self-loops never join, the cheaper of two
// parallel edges wins.
func TestSelfLoopsAndParallels(t *testing.T) {
	g := buildGraph(t, 3, []we{
		{0, 0, 9.0},
		{0, 1, 2.0}, {0, 1, 1.0},
		{1, 2, 0.5},
	})

	for name, f := range allFour(t, g) {
		assert.Len(t, f.Edges(), 2, name)
		assert.InDelta(t, 1.5, f.Weight(), eps, name)
		assert.NoError(t, mst.Verify(g, f), name)
	}
}

// TestEdgelessAndEmpty: no edges means an empty forest.
func TestEdgelessAndEmpty(t *testing.T) {
	for _, n := range []int{0, 4} {
		g := buildGraph(t, n, nil)
		for name, f := range allFour(t, g) {
			assert.Empty(t, f.Edges(), "%s V=%d", name, n)
			assert.Zero(t, f.Weight(), "%s V=%d", name, n)
			assert.NoError(t, mst.Verify(g, f), "%s V=%d", name, n)
		}
	}
}

// TestVerify_RejectsBadCandidates exercises each verifier failure mode.
func TestVerify_RejectsBadCandidates(t *testing.T) {
	g := buildGraph(t, 8, tinyEdges)
	good, err := mst.Kruskal(g)
	require.NoError(t, err)

	// Cycle: duplicate a tree edge.
	cyclic := &fakeForest{edges: append(append([]core.Edge{}, good.Edges()...), good.Edges()[0])}
	cyclic.reweigh()
	assert.ErrorIs(t, mst.Verify(g, cyclic), mst.ErrNotForest)

	// Not spanning: drop a tree edge.
	sparse := &fakeForest{edges: good.Edges()[:6]}
	sparse.reweigh()
	assert.ErrorIs(t, mst.Verify(g, sparse), mst.ErrNotSpanning)

	// Not minimal: swap the 0-7 0.16 edge for the 0-4 0.38 detour.
	swapped := &fakeForest{}
	for _, e := range good.Edges() {
		if e.Weight != 0.16 {
			swapped.edges = append(swapped.edges, e)
		}
	}
	heavy, err := core.NewEdge(0, 4, 0.38)
	require.NoError(t, err)
	swapped.edges = append(swapped.edges, heavy)
	swapped.reweigh()
	assert.ErrorIs(t, mst.Verify(g, swapped), mst.ErrNotMinimal)

	// Weight mismatch: lie about the total.
	lying := &fakeForest{edges: good.Edges(), weight: good.Weight() + 1}
	assert.ErrorIs(t, mst.Verify(g, lying), mst.ErrWeightMismatch)
}

// TestNilInputs are rejected uniformly.
func TestNilInputs(t *testing.T) {
	_, err := mst.LazyPrim(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, err = mst.Prim(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, err = mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, err = mst.Boruvka(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	g := buildGraph(t, 1, nil)
	assert.ErrorIs(t, mst.Verify(nil, nil), mst.ErrNilGraph)
	assert.ErrorIs(t, mst.Verify(g, nil), mst.ErrNilForest)
}

// fakeForest is a hand-built Forest for verifier failure tests.
type fakeForest struct {
	edges  []core.Edge
	weight float64
}

func (f *fakeForest) Edges() []core.Edge { return f.edges }
func (f *fakeForest) Weight() float64    { return f.weight }

// reweigh makes the reported weight consistent with the edges.
func (f *fakeForest) reweigh() {
	f.weight = 0
	for _, e := range f.edges {
		f.weight += e.Weight
	}
}
