package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/core"
)

// mustEdge builds a weighted undirected edge or fails the test.
func mustEdge(t *testing.T, v, w int, weight float64) core.Edge {
	t.Helper()
	e, err := core.NewEdge(v, w, weight)
	require.NoError(t, err)

	return e
}

// mustDirected builds a weighted directed edge or fails the test.
func mustDirected(t *testing.T, from, to int, weight float64) core.DirectedEdge {
	t.Helper()
	e, err := core.NewDirectedEdge(from, to, weight)
	require.NoError(t, err)

	return e
}

// TestNewGraph_NegativeVertexCount verifies the shared construction contract.
func TestNewGraph_NegativeVertexCount(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
	_, err = core.NewDigraph(-3)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
	_, err = core.NewEdgeWeightedGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
	_, err = core.NewEdgeWeightedDigraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
	_, err = core.NewAdjMatrixEdgeWeightedDigraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

// TestGraph_AddEdgeAndDegrees exercises the undirected container: adjacency
// insertion order, degree accounting (self-loops count twice), counters.
func TestGraph_AddEdgeAndDegrees(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.V())

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 3)) // self-loop
	require.NoError(t, g.AddEdge(0, 1)) // parallel

	assert.Equal(t, 5, g.E())
	assert.Equal(t, 1, g.Loops())
	assert.Equal(t, 1, g.Parallels())
	assert.False(t, g.Simple())

	// Insertion order is preserved in adjacency lists.
	adj0, err := g.Adj(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, adj0)

	// A self-loop contributes two to the degree.
	d3, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d3)

	// Out-of-range endpoints are rejected, E unchanged.
	assert.ErrorIs(t, g.AddEdge(0, 4), core.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexRange)
	assert.Equal(t, 5, g.E())

	_, err = g.Adj(17)
	assert.ErrorIs(t, err, core.ErrVertexRange)
}

// TestDigraph_IndegreeAndReverse checks the directed container's indegree
// bookkeeping and edge flipping.
func TestDigraph_IndegreeAndReverse(t *testing.T) {
	d, err := core.NewDigraph(3)
	require.NoError(t, err)
	require.NoError(t, d.AddEdge(0, 1))
	require.NoError(t, d.AddEdge(1, 2))
	require.NoError(t, d.AddEdge(2, 0))
	require.NoError(t, d.AddEdge(0, 2))

	in2, err := d.Indegree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, in2)
	out0, err := d.Outdegree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, out0)

	r := d.Reverse()
	assert.Equal(t, d.V(), r.V())
	assert.Equal(t, d.E(), r.E())
	// Edge 0→1 becomes 1→0 in the reverse.
	radj1, err := r.Adj(1)
	require.NoError(t, err)
	assert.Contains(t, radj1, 0)
	rin0, err := r.Indegree(0)
	require.NoError(t, err)
	assert.Equal(t, out0, rin0) // outdegree in d equals indegree in r
}

// TestEdgeWeightedGraph_Edges verifies each edge is reported exactly once,
// including self-loops that occupy two adjacency slots.
func TestEdgeWeightedGraph_Edges(t *testing.T) {
	g, err := core.NewEdgeWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(mustEdge(t, 0, 1, 1.0)))
	require.NoError(t, g.AddEdge(mustEdge(t, 1, 2, 2.0)))
	require.NoError(t, g.AddEdge(mustEdge(t, 2, 2, 9.0))) // self-loop

	assert.Equal(t, 3, g.E())
	edges := g.Edges()
	assert.Len(t, edges, 3)

	// Self-loop doubles the degree of its vertex.
	d2, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d2)

	// Endpoint outside this graph's range is rejected even though the
	// Edge value itself is well-formed.
	assert.ErrorIs(t, g.AddEdge(mustEdge(t, 0, 9, 1.0)), core.ErrVertexRange)
}

// TestEdgeWeightedDigraph_Basics covers adjacency, degrees and Edges order.
func TestEdgeWeightedDigraph_Basics(t *testing.T) {
	d, err := core.NewEdgeWeightedDigraph(3)
	require.NoError(t, err)
	require.NoError(t, d.AddEdge(mustDirected(t, 0, 1, 1.5)))
	require.NoError(t, d.AddEdge(mustDirected(t, 0, 2, 2.5)))
	require.NoError(t, d.AddEdge(mustDirected(t, 2, 1, 0.5)))

	assert.Equal(t, 3, d.E())
	in1, err := d.Indegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, in1)

	adj0, err := d.Adj(0)
	require.NoError(t, err)
	require.Len(t, adj0, 2)
	assert.Equal(t, 1, adj0[0].To)
	assert.Equal(t, 2, adj0[1].To)

	edges := d.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, 0, edges[0].From) // vertex-then-insertion order
	assert.Equal(t, 2, edges[2].From)
}

// TestAdjMatrix_ParallelIgnoredLoopKept pins the dense container contract:
// second edge on the same ordered pair is silently dropped, self-loops stay.
func TestAdjMatrix_ParallelIgnoredLoopKept(t *testing.T) {
	m, err := core.NewAdjMatrixEdgeWeightedDigraph(3)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(mustDirected(t, 0, 1, 1.0)))
	require.NoError(t, m.AddEdge(mustDirected(t, 0, 1, 99.0))) // ignored
	require.NoError(t, m.AddEdge(mustDirected(t, 1, 1, 3.0)))  // self-loop kept

	assert.Equal(t, 2, m.E())

	e, ok, err := m.EdgeBetween(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Weight) // first edge wins

	_, ok, err = m.EdgeBetween(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	adj1, err := m.Adj(1)
	require.NoError(t, err)
	require.Len(t, adj1, 1)
	assert.Equal(t, 1, adj1[0].To)

	out0, err := m.Outdegree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, out0)
}

// TestGraph_StringDump sanity-checks the debug rendering header.
func TestGraph_StringDump(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, "2 1\n0: 1\n1: 0\n", g.String())
}
