// Package ipq provides an indexed min-priority queue over float64 keys.
//
// Unlike the lazy duplicate-insertion heaps built directly on
// container/heap elsewhere in this module, IndexMin supports DecreaseKey
// by index, which Dijkstra (eager) and Prim (eager) rely on: each vertex
// occupies at most one heap slot, keyed by its best known distance or
// crossing-edge weight.
//
// Complexity: Insert, DecreaseKey and DelMin are O(log n);
// Contains, KeyOf and Min are O(1).
package ipq

import (
	"errors"
	"fmt"
)

// Sentinel errors for indexed priority queue operations.
var (
	// ErrNegativeCapacity indicates New was called with n < 0.
	ErrNegativeCapacity = errors.New("ipq: capacity must be non-negative")

	// ErrIndexRange indicates an index outside [0, n).
	ErrIndexRange = errors.New("ipq: index out of range")

	// ErrDuplicateIndex indicates Insert on an index already in the queue.
	ErrDuplicateIndex = errors.New("ipq: index already in queue")

	// ErrIndexAbsent indicates DecreaseKey/KeyOf on an index not in the queue.
	ErrIndexAbsent = errors.New("ipq: index not in queue")

	// ErrKeyNotSmaller indicates DecreaseKey with a key >= the current key.
	ErrKeyNotSmaller = errors.New("ipq: new key is not smaller")

	// ErrEmpty indicates DelMin/Min on an empty queue.
	ErrEmpty = errors.New("ipq: queue is empty")
)

// IndexMin is a binary min-heap whose entries are external indices in
// [0, n), each with a float64 key. The classic three-array layout:
// heap holds indices in heap order, pos inverts it, keys stores priorities.
type IndexMin struct {
	n    int       // capacity: valid indices are [0, n)
	heap []int     // heap[i] = external index at heap slot i (1-based)
	pos  []int     // pos[idx] = heap slot of idx, 0 when absent
	keys []float64 // keys[idx] = priority of idx
}

// New creates an empty indexed min-priority queue for indices [0, n).
// Fails with ErrNegativeCapacity when n < 0.
func New(n int) (*IndexMin, error) {
	if n < 0 {
		return nil, fmt.Errorf("ipq.New(%d): %w", n, ErrNegativeCapacity)
	}

	return &IndexMin{
		n:    n,
		heap: make([]int, 1, n+1), // slot 0 unused (1-based heap math)
		pos:  make([]int, n),
		keys: make([]float64, n),
	}, nil
}

// Len returns the number of indices currently queued.
func (q *IndexMin) Len() int { return len(q.heap) - 1 }

// Empty reports whether no indices are queued.
func (q *IndexMin) Empty() bool { return q.Len() == 0 }

// validate checks an external index against [0, n).
func (q *IndexMin) validate(idx int) error {
	if idx < 0 || idx >= q.n {
		return fmt.Errorf("index %d not in [0,%d): %w", idx, q.n, ErrIndexRange)
	}

	return nil
}

// Contains reports whether idx is currently queued.
func (q *IndexMin) Contains(idx int) (bool, error) {
	if err := q.validate(idx); err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}

	return q.pos[idx] != 0, nil
}

// KeyOf returns the current key of a queued index.
func (q *IndexMin) KeyOf(idx int) (float64, error) {
	if err := q.validate(idx); err != nil {
		return 0, fmt.Errorf("KeyOf: %w", err)
	}
	if q.pos[idx] == 0 {
		return 0, fmt.Errorf("KeyOf(%d): %w", idx, ErrIndexAbsent)
	}

	return q.keys[idx], nil
}

// Insert queues idx with the given key.
// Fails with ErrDuplicateIndex when idx is already queued.
func (q *IndexMin) Insert(idx int, key float64) error {
	if err := q.validate(idx); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	if q.pos[idx] != 0 {
		return fmt.Errorf("Insert(%d): %w", idx, ErrDuplicateIndex)
	}

	q.keys[idx] = key
	q.heap = append(q.heap, idx)
	q.pos[idx] = len(q.heap) - 1
	q.swim(len(q.heap) - 1)

	return nil
}

// DecreaseKey lowers the key of a queued index and restores heap order.
// Fails when idx is absent or key is not strictly smaller.
func (q *IndexMin) DecreaseKey(idx int, key float64) error {
	if err := q.validate(idx); err != nil {
		return fmt.Errorf("DecreaseKey: %w", err)
	}
	if q.pos[idx] == 0 {
		return fmt.Errorf("DecreaseKey(%d): %w", idx, ErrIndexAbsent)
	}
	if key >= q.keys[idx] {
		return fmt.Errorf("DecreaseKey(%d, %v>=%v): %w", idx, key, q.keys[idx], ErrKeyNotSmaller)
	}

	q.keys[idx] = key
	q.swim(q.pos[idx])

	return nil
}

// Min returns the index with the smallest key without removing it.
func (q *IndexMin) Min() (int, error) {
	if q.Empty() {
		return 0, fmt.Errorf("Min: %w", ErrEmpty)
	}

	return q.heap[1], nil
}

// DelMin removes and returns the index with the smallest key.
func (q *IndexMin) DelMin() (int, float64, error) {
	if q.Empty() {
		return 0, 0, fmt.Errorf("DelMin: %w", ErrEmpty)
	}

	min := q.heap[1]
	key := q.keys[min]
	last := len(q.heap) - 1
	q.swap(1, last)
	q.heap = q.heap[:last]
	q.pos[min] = 0
	if q.Len() > 0 {
		q.sink(1)
	}

	return min, key, nil
}

// swim restores heap order upward from slot i.
func (q *IndexMin) swim(i int) {
	for i > 1 && q.keys[q.heap[i/2]] > q.keys[q.heap[i]] {
		q.swap(i, i/2)
		i /= 2
	}
}

// sink restores heap order downward from slot i.
func (q *IndexMin) sink(i int) {
	n := q.Len()
	for 2*i <= n {
		j := 2 * i
		if j < n && q.keys[q.heap[j+1]] < q.keys[q.heap[j]] {
			j++
		}
		if q.keys[q.heap[i]] <= q.keys[q.heap[j]] {
			break
		}
		q.swap(i, j)
		i = j
	}
}

// swap exchanges two heap slots, keeping pos in sync.
func (q *IndexMin) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}
