package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/toposort"
)

// buildDAG returns the 7-vertex scheduling DAG used across the tests.
func buildDAG(t *testing.T) *core.Digraph {
	t.Helper()
	d, err := core.NewDigraph(7)
	require.NoError(t, err)
	for _, e := range [][2]int{
		{0, 1}, {0, 2}, {0, 5},
		{1, 4}, {3, 2}, {3, 4},
		{3, 5}, {3, 6}, {5, 2},
		{6, 4},
	} {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}

	return d
}

// assertValidOrder checks the defining property: for every edge v→w the
// rank of v precedes the rank of w, and the order is a permutation.
func assertValidOrder(t *testing.T, d *core.Digraph, o *toposort.Order) {
	t.Helper()
	require.True(t, o.HasOrder())
	require.Len(t, o.Order(), d.V())

	seen := make([]bool, d.V())
	for _, v := range o.Order() {
		require.False(t, seen[v], "vertex %d emitted twice", v)
		seen[v] = true
	}
	for v := 0; v < d.V(); v++ {
		adj, err := d.Adj(v)
		require.NoError(t, err)
		rv, err := o.Rank(v)
		require.NoError(t, err)
		for _, w := range adj {
			rw, err := o.Rank(w)
			require.NoError(t, err)
			assert.Less(t, rv, rw, "edge %d->%d violates the order", v, w)
		}
	}
}

// TestDFS_ValidOrder checks the reverse-postorder construction on a DAG.
func TestDFS_ValidOrder(t *testing.T) {
	d := buildDAG(t)

	o, err := toposort.DFS(d)
	require.NoError(t, err)
	assertValidOrder(t, d, o)
}

// TestKahn_ValidOrder checks the peeling construction on the same DAG.
func TestKahn_ValidOrder(t *testing.T) {
	d := buildDAG(t)

	o, err := toposort.Kahn(d)
	require.NoError(t, err)
	assertValidOrder(t, d, o)
}

// TestCyclicDigraph_NoOrder: 0→1→2→0 admits no order; both constructions
// must agree, Order is nil and every rank is -1.
func TestCyclicDigraph_NoOrder(t *testing.T) {
	d, err := core.NewDigraph(3)
	require.NoError(t, err)
	require.NoError(t, d.AddEdge(0, 1))
	require.NoError(t, d.AddEdge(1, 2))
	require.NoError(t, d.AddEdge(2, 0))

	for name, build := range map[string]func(*core.Digraph) (*toposort.Order, error){
		"dfs":  toposort.DFS,
		"kahn": toposort.Kahn,
	} {
		o, err := build(d)
		require.NoError(t, err, name)
		assert.False(t, o.HasOrder(), name)
		assert.Nil(t, o.Order(), name)
		for v := 0; v < 3; v++ {
			r, err := o.Rank(v)
			require.NoError(t, err, name)
			assert.Equal(t, -1, r, name)
		}
	}
}

// TestEdgelessDigraph: with no edges every permutation is valid; the
// identity permutation is produced by both constructions.
func TestEdgelessDigraph(t *testing.T) {
	d, err := core.NewDigraph(4)
	require.NoError(t, err)

	o, err := toposort.Kahn(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, o.Order())
}

// TestRank_Errors rejects out-of-range queries and nil graphs.
func TestRank_Errors(t *testing.T) {
	d := buildDAG(t)
	o, err := toposort.DFS(d)
	require.NoError(t, err)

	_, err = o.Rank(-1)
	assert.ErrorIs(t, err, toposort.ErrVertexRange)
	_, err = o.Rank(7)
	assert.ErrorIs(t, err, toposort.ErrVertexRange)

	_, err = toposort.DFS(nil)
	assert.ErrorIs(t, err, toposort.ErrNilGraph)
	_, err = toposort.Kahn(nil)
	assert.ErrorIs(t, err, toposort.ErrNilGraph)
}
