package symgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/symgraph"
	"github.com/katalvlaran/lvldense/traverse"
)

const routes = `JFK ORD
ORD DEN
ORD HOU
DFW PHX
JFK DFW
ORD DFW
ORD ATL
DEN PHX
PHX LAX
JFK MCO
ATL HOU
DEN LAS
PHX LAS
LAX LAS
HOU MCO
LAS PHX
`

// TestUndirected_RoutesFixture: names intern in first-appearance order
// and adjacency follows the input edges.
func TestUndirected_RoutesFixture(t *testing.T) {
	sg, err := symgraph.New(strings.NewReader(routes), " ")
	require.NoError(t, err)

	assert.Equal(t, 10, sg.V())
	assert.Equal(t, 16, sg.Graph().E())

	// First-appearance order pins the index assignment.
	jfk, err := sg.Index("JFK")
	require.NoError(t, err)
	assert.Equal(t, 0, jfk)
	ord, err := sg.Index("ORD")
	require.NoError(t, err)
	assert.Equal(t, 1, ord)

	name, err := sg.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "JFK", name)

	assert.True(t, sg.Contains("LAS"))
	assert.False(t, sg.Contains("SFO"))

	// JFK's neighbors by name.
	adj, err := sg.Graph().Adj(jfk)
	require.NoError(t, err)
	var names []string
	for _, w := range adj {
		n, err := sg.Name(w)
		require.NoError(t, err)
		names = append(names, n)
	}
	assert.Equal(t, []string{"ORD", "DFW", "MCO"}, names)
}

// TestDigraph_EdgeDirection: edges point from the first field outward.
func TestDigraph_EdgeDirection(t *testing.T) {
	input := "a>b>c\nb>c\n"
	sg, err := symgraph.NewDigraph(strings.NewReader(input), ">")
	require.NoError(t, err)

	require.Equal(t, 3, sg.V())
	a, err := sg.Index("a")
	require.NoError(t, err)
	c, err := sg.Index("c")
	require.NoError(t, err)

	out, err := sg.Graph().Outdegree(a)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	in, err := sg.Graph().Indegree(c)
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	out, err = sg.Graph().Outdegree(c)
	require.NoError(t, err)
	assert.Zero(t, out)
}

// TestWorksWithTraversal: the built graph plugs into the traversal layer.
func TestWorksWithTraversal(t *testing.T) {
	sg, err := symgraph.New(strings.NewReader(routes), " ")
	require.NoError(t, err)
	jfk, err := sg.Index("JFK")
	require.NoError(t, err)
	las, err := sg.Index("LAS")
	require.NoError(t, err)

	p, err := traverse.BFS(sg.Graph(), jfk)
	require.NoError(t, err)
	ok, err := p.HasPathTo(las)
	require.NoError(t, err)
	assert.True(t, ok)
	d, err := p.DistTo(las)
	require.NoError(t, err)
	assert.Equal(t, 3, d) // JFK ORD DEN LAS
}

// TestBlankLinesAndErrors: blank lines skip, bad queries and inputs fail.
func TestBlankLinesAndErrors(t *testing.T) {
	sg, err := symgraph.New(strings.NewReader("x y\n\n \ny z\n"), " ")
	require.NoError(t, err)
	assert.Equal(t, 3, sg.V())

	_, err = sg.Index("nope")
	assert.ErrorIs(t, err, symgraph.ErrUnknownName)
	_, err = sg.Name(3)
	assert.ErrorIs(t, err, symgraph.ErrVertexRange)

	_, err = symgraph.New(nil, " ")
	assert.ErrorIs(t, err, symgraph.ErrNilReader)
	_, err = symgraph.New(strings.NewReader("a b"), "")
	assert.ErrorIs(t, err, symgraph.ErrEmptyDelimiter)
}
