package ipq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldense/ipq"
)

// TestNew_Validation rejects negative capacities.
func TestNew_Validation(t *testing.T) {
	_, err := ipq.New(-1)
	assert.ErrorIs(t, err, ipq.ErrNegativeCapacity)

	q, err := ipq.New(0)
	require.NoError(t, err)
	assert.True(t, q.Empty())
	_, _, err = q.DelMin()
	assert.ErrorIs(t, err, ipq.ErrEmpty)
}

// TestInsertDelMin_Ordering pops indices in strictly non-decreasing key order.
func TestInsertDelMin_Ordering(t *testing.T) {
	q, err := ipq.New(10)
	require.NoError(t, err)

	keys := []float64{5, 1, 9, 3, 7}
	for i, k := range keys {
		require.NoError(t, q.Insert(i, k))
	}
	assert.Equal(t, 5, q.Len())

	// Min peeks without removing.
	m, err := q.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, m) // index 1 holds key 1

	var popped []float64
	for !q.Empty() {
		_, k, errDel := q.DelMin()
		require.NoError(t, errDel)
		popped = append(popped, k)
	}
	assert.True(t, sort.Float64sAreSorted(popped))
	assert.Len(t, popped, 5)
}

// TestDecreaseKey_ReordersHeap lowers a key and expects it to surface first.
func TestDecreaseKey_ReordersHeap(t *testing.T) {
	q, err := ipq.New(4)
	require.NoError(t, err)
	require.NoError(t, q.Insert(0, 10))
	require.NoError(t, q.Insert(1, 20))
	require.NoError(t, q.Insert(2, 30))

	require.NoError(t, q.DecreaseKey(2, 5))
	k, err := q.KeyOf(2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, k)

	idx, key, err := q.DelMin()
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 5.0, key)

	// Increasing is rejected; absent index is rejected.
	assert.ErrorIs(t, q.DecreaseKey(0, 50), ipq.ErrKeyNotSmaller)
	assert.ErrorIs(t, q.DecreaseKey(3, 1), ipq.ErrIndexAbsent)
}

// TestContains_DuplicateAndRange pins membership bookkeeping.
func TestContains_DuplicateAndRange(t *testing.T) {
	q, err := ipq.New(3)
	require.NoError(t, err)
	require.NoError(t, q.Insert(1, 2.5))

	ok, err := q.Contains(1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = q.Contains(0)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, q.Insert(1, 7), ipq.ErrDuplicateIndex)
	assert.ErrorIs(t, q.Insert(3, 7), ipq.ErrIndexRange)
	_, err = q.Contains(-1)
	assert.ErrorIs(t, err, ipq.ErrIndexRange)

	// After DelMin the index can be re-inserted.
	_, _, err = q.DelMin()
	require.NoError(t, err)
	require.NoError(t, q.Insert(1, 9))
}

// TestRandomized_HeapSortAgreement drains a shuffled load and compares
// against a sorted copy of the keys.
func TestRandomized_HeapSortAgreement(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))

	q, err := ipq.New(n)
	require.NoError(t, err)

	keys := make([]float64, n)
	for i := range keys {
		keys[i] = rng.Float64() * 1000
		require.NoError(t, q.Insert(i, keys[i]))
	}

	sorted := append([]float64(nil), keys...)
	sort.Float64s(sorted)

	for i := 0; i < n; i++ {
		_, k, errDel := q.DelMin()
		require.NoError(t, errDel)
		assert.Equal(t, sorted[i], k)
	}
	assert.True(t, q.Empty())
}
