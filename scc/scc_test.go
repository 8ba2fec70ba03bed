package scc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/connectivity"
	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/scc"
)

// buildDigraph returns the 13-vertex digraph with five strong components:
// {1}, {0,2,3,4,5}, {9,10,11,12}, {6,8} and {7}.
func buildDigraph(t *testing.T) *core.Digraph {
	t.Helper()
	d, err := core.NewDigraph(13)
	require.NoError(t, err)
	for _, e := range [][2]int{
		{4, 2}, {2, 3}, {3, 2}, {6, 0}, {0, 1}, {2, 0},
		{11, 12}, {12, 9}, {9, 10}, {9, 11}, {7, 9}, {10, 12},
		{11, 4}, {4, 3}, {3, 5}, {6, 8}, {8, 6}, {5, 4},
		{0, 5}, {6, 4}, {6, 9}, {7, 6},
	} {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}

	return d
}

// allThree runs every implementation against d.
func allThree(t *testing.T, d *core.Digraph) map[string]scc.StronglyConnected {
	t.Helper()
	tarjan, err := scc.Tarjan(d)
	require.NoError(t, err)
	kosaraju, err := scc.KosarajuSharir(d)
	require.NoError(t, err)
	gabow, err := scc.Gabow(d)
	require.NoError(t, err)

	return map[string]scc.StronglyConnected{
		"tarjan":   tarjan,
		"kosaraju": kosaraju,
		"gabow":    gabow,
	}
}

// TestCount is identical across algorithms.
func TestCount(t *testing.T) {
	d := buildDigraph(t)
	for name, s := range allThree(t, d) {
		assert.Equal(t, 5, s.Count(), name)
	}
}

// TestPartitionAgreement: the three algorithms may number components
// differently but must induce the same equivalence relation.
func TestPartitionAgreement(t *testing.T) {
	d := buildDigraph(t)
	impls := allThree(t, d)
	tarjan := impls["tarjan"]

	for name, s := range impls {
		for v := 0; v < d.V(); v++ {
			for w := 0; w < d.V(); w++ {
				want, err := tarjan.Connected(v, w)
				require.NoError(t, err)
				got, err := s.Connected(v, w)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s disagrees on (%d,%d)", name, v, w)
			}
		}
	}
}

// TestAgainstTransitiveClosure pins the definition: v and w are strongly
// connected exactly when each reaches the other.
func TestAgainstTransitiveClosure(t *testing.T) {
	d := buildDigraph(t)
	tc, err := connectivity.NewTransitiveClosure(d)
	require.NoError(t, err)
	tarjan, err := scc.Tarjan(d)
	require.NoError(t, err)

	for v := 0; v < d.V(); v++ {
		for w := 0; w < d.V(); w++ {
			vw, err := tc.Reachable(v, w)
			require.NoError(t, err)
			wv, err := tc.Reachable(w, v)
			require.NoError(t, err)
			got, err := tarjan.Connected(v, w)
			require.NoError(t, err)
			assert.Equal(t, vw && wv, got, "(%d,%d)", v, w)
		}
	}
}

// TestKnownComponents pins the component membership of the fixture.
func TestKnownComponents(t *testing.T) {
	d := buildDigraph(t)
	s, err := scc.Gabow(d)
	require.NoError(t, err)

	groups := [][]int{
		{1},
		{0, 2, 3, 4, 5},
		{9, 10, 11, 12},
		{6, 8},
		{7},
	}
	for _, grp := range groups {
		for i := 1; i < len(grp); i++ {
			ok, err := s.Connected(grp[0], grp[i])
			require.NoError(t, err)
			assert.True(t, ok, "%d and %d should share a component", grp[0], grp[i])
		}
	}
	// Representatives of distinct groups never connect.
	reps := []int{1, 0, 9, 6, 7}
	for i := range reps {
		for j := range reps {
			if i == j {
				continue
			}
			ok, err := s.Connected(reps[i], reps[j])
			require.NoError(t, err)
			assert.False(t, ok, "%d and %d should be separate", reps[i], reps[j])
		}
	}
}

// TestSingleVertexAndEmpty covers trivial inputs.
func TestSingleVertexAndEmpty(t *testing.T) {
	empty, err := core.NewDigraph(0)
	require.NoError(t, err)
	for name, s := range allThree(t, empty) {
		assert.Equal(t, 0, s.Count(), name)
	}

	one, err := core.NewDigraph(1)
	require.NoError(t, err)
	for name, s := range allThree(t, one) {
		assert.Equal(t, 1, s.Count(), name)
		ok, err := s.Connected(0, 0)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

// TestErrors rejects nil digraphs and out-of-range queries.
func TestErrors(t *testing.T) {
	_, err := scc.Tarjan(nil)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
	_, err = scc.KosarajuSharir(nil)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
	_, err = scc.Gabow(nil)
	assert.ErrorIs(t, err, scc.ErrNilGraph)

	d, err := core.NewDigraph(2)
	require.NoError(t, err)
	s, err := scc.Tarjan(d)
	require.NoError(t, err)
	_, err = s.ID(2)
	assert.ErrorIs(t, err, scc.ErrVertexRange)
	_, err = s.Connected(0, -1)
	assert.ErrorIs(t, err, scc.ErrVertexRange)
}
