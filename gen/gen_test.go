package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/gen"
	"github.com/katalvlaran/lvldense/mst"
	"github.com/katalvlaran/lvldense/shortest"
)

// TestSimple_ExactCountsAndSimplicity: requested sizes are honored and no
// degenerate edges appear.
func TestSimple_ExactCountsAndSimplicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	g, err := gen.Simple(rng, 20, 50)
	require.NoError(t, err)
	assert.Equal(t, 20, g.V())
	assert.Equal(t, 50, g.E())
	assert.True(t, g.Simple())
}

// TestDeterminism: the same seed yields byte-identical graphs.
func TestDeterminism(t *testing.T) {
	a, err := gen.Simple(rand.New(rand.NewSource(7)), 15, 30)
	require.NoError(t, err)
	b, err := gen.Simple(rand.New(rand.NewSource(7)), 15, 30)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

// TestSimpleP_Extremes: p=0 is edgeless, p=1 is complete.
func TestSimpleP_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	empty, err := gen.SimpleP(rng, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.E())

	complete, err := gen.SimpleP(rng, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 45, complete.E())
	assert.True(t, complete.Simple())
}

// TestSimpleDigraph allows both orientations of a pair.
func TestSimpleDigraph(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// 4·3 = 12 is the full ordered capacity.
	d, err := gen.SimpleDigraph(rng, 4, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, d.E())
	assert.True(t, d.Simple())
}

// TestWeightedGenerators_FeedAlgorithms: generated graphs are valid
// inputs downstream, and weights stay in [0, 1).
func TestWeightedGenerators_FeedAlgorithms(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	wg, err := gen.EdgeWeighted(rng, 12, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, wg.E())
	for _, e := range wg.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.Less(t, e.Weight, 1.0)
	}
	f, err := mst.Kruskal(wg)
	require.NoError(t, err)
	assert.NoError(t, mst.Verify(wg, f))

	wd, err := gen.EdgeWeightedDigraph(rng, 12, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, wd.E())
	_, err = shortest.Dijkstra(wd, 0)
	require.NoError(t, err)
}

// TestArgumentValidation covers every rejection path.
func TestArgumentValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	_, err := gen.Simple(nil, 3, 1)
	assert.ErrorIs(t, err, gen.ErrNilRand)
	_, err = gen.Simple(rng, -1, 0)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
	_, err = gen.Simple(rng, 3, -1)
	assert.ErrorIs(t, err, core.ErrNegativeEdgeCount)
	_, err = gen.Simple(rng, 3, 4) // K3 holds only 3 edges
	assert.ErrorIs(t, err, gen.ErrTooManyEdges)
	_, err = gen.SimpleDigraph(rng, 3, 7) // ordered capacity is 6
	assert.ErrorIs(t, err, gen.ErrTooManyEdges)
	_, err = gen.SimpleP(rng, 3, 1.5)
	assert.ErrorIs(t, err, gen.ErrBadProbability)
	_, err = gen.SimpleP(rng, 3, -0.1)
	assert.ErrorIs(t, err, gen.ErrBadProbability)
}
