package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/connectivity"
	"github.com/katalvlaran/lvldense/core"
)

// buildTwoComponents is a 7-vertex undirected fixture:
//
//	component A: 0—1, 1—2, 2—0 (triangle)
//	component B: 3—4, 4—5
//	vertex 6 isolated
func buildTwoComponents(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(7)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestComponents_LabelsAndSizes pins the id convention (first-visited
// vertex), sizes and the O(1) Connected query.
func TestComponents_LabelsAndSizes(t *testing.T) {
	g := buildTwoComponents(t)
	cc, err := connectivity.NewComponents(g)
	require.NoError(t, err)

	assert.Equal(t, 3, cc.Count())

	// id = first-visited vertex of the component: 0, 3 and 6.
	for v, want := range map[int]int{0: 0, 1: 0, 2: 0, 3: 3, 4: 3, 5: 3, 6: 6} {
		id, errID := cc.ID(v)
		require.NoError(t, errID)
		assert.Equal(t, want, id, "vertex %d", v)
	}

	s1, err := cc.Size(1)
	require.NoError(t, err)
	assert.Equal(t, 3, s1)
	s6, err := cc.Size(6)
	require.NoError(t, err)
	assert.Equal(t, 1, s6)

	conn, err := cc.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, conn)
	conn, err = cc.Connected(2, 5)
	require.NoError(t, err)
	assert.False(t, conn)

	_, err = cc.Connected(0, 7)
	assert.ErrorIs(t, err, connectivity.ErrVertexRange)
	_, err = connectivity.NewComponents(nil)
	assert.ErrorIs(t, err, connectivity.ErrNilGraph)
}

// TestTransitiveClosure_Reachability checks O(1) directed reachability,
// including the self-reachability convention.
func TestTransitiveClosure_Reachability(t *testing.T) {
	// 0→1→2, 3→1; 2 reaches nothing.
	d, err := core.NewDigraph(4)
	require.NoError(t, err)
	require.NoError(t, d.AddEdge(0, 1))
	require.NoError(t, d.AddEdge(1, 2))
	require.NoError(t, d.AddEdge(3, 1))

	tc, err := connectivity.NewTransitiveClosure(d)
	require.NoError(t, err)

	cases := []struct {
		v, w int
		want bool
	}{
		{0, 2, true},
		{3, 2, true},
		{2, 0, false},
		{1, 3, false},
		{2, 2, true}, // self
	}
	for _, c := range cases {
		got, errR := tc.Reachable(c.v, c.w)
		require.NoError(t, errR)
		assert.Equal(t, c.want, got, "%d→%d", c.v, c.w)
	}

	_, err = tc.Reachable(4, 0)
	assert.ErrorIs(t, err, connectivity.ErrVertexRange)
	_, err = tc.Reachable(0, -1)
	assert.ErrorIs(t, err, connectivity.ErrVertexRange)
}

// TestBipartite_EvenCycle colors a square; adjacent vertices differ.
func TestBipartite_EvenCycle(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	b, err := connectivity.NewBipartite(g)
	require.NoError(t, err)
	require.True(t, b.IsBipartite())
	assert.Nil(t, b.OddCycle())

	c0, err := b.Color(0)
	require.NoError(t, err)
	c1, err := b.Color(1)
	require.NoError(t, err)
	c3, err := b.Color(3)
	require.NoError(t, err)
	assert.NotEqual(t, c0, c1)
	assert.NotEqual(t, c0, c3)
}

// TestBipartite_OddCycle queries fail only at query time and the witness
// cycle is closed with odd length.
func TestBipartite_OddCycle(t *testing.T) {
	g := buildTwoComponents(t) // contains triangle 0-1-2

	b, err := connectivity.NewBipartite(g)
	require.NoError(t, err) // construction succeeds
	assert.False(t, b.IsBipartite())

	_, err = b.Color(0)
	assert.ErrorIs(t, err, connectivity.ErrNotBipartite)

	cyc := b.OddCycle()
	require.NotEmpty(t, cyc)
	assert.Equal(t, cyc[0], cyc[len(cyc)-1], "cycle must be closed")
	assert.Equal(t, 1, (len(cyc)-1)%2, "open length of an odd cycle is odd")
}
