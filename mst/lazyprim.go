package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// edgeHeap is a min-heap of edges ordered by weight, ties kept in push
// order by the heap's own stability-free semantics.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// LazyPrimMST is a spanning forest computed by the lazy Prim variant.
type LazyPrimMST struct {
	forest
}

// LazyPrim grows one tree per connected component: every edge incident to
// a newly absorbed vertex goes onto a heap, and popped edges with both
// endpoints already in the tree are stale and discarded.
// Complexity: O(E log E) time, O(E) space.
func LazyPrim(g *core.EdgeWeightedGraph) (*LazyPrimMST, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("mst.LazyPrim: %w", ErrNilGraph)
	}

	// 2. Sweep all vertices so a disconnected graph yields a forest.
	n := g.V()
	f := &LazyPrimMST{}
	marked := make([]bool, n)
	pq := &edgeHeap{}

	// absorb marks v and enqueues its edges that still leave the tree.
	absorb := func(v int) error {
		marked[v] = true
		adj, err := g.Adj(v)
		if err != nil {
			return fmt.Errorf("Adj(%d): %w", v, err)
		}
		for _, e := range adj {
			w, errOther := e.Other(v)
			if errOther != nil {
				return errOther
			}
			if !marked[w] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	for s := 0; s < n; s++ {
		if marked[s] {
			continue
		}
		if err := absorb(s); err != nil {
			return nil, fmt.Errorf("mst.LazyPrim: %w", err)
		}

		// 3. Pop the cheapest crossing edge, skipping stale entries.
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			v := e.Either()
			w, err := e.Other(v)
			if err != nil {
				return nil, fmt.Errorf("mst.LazyPrim: %w", err)
			}
			if marked[v] && marked[w] {
				continue // stale: both ends absorbed since the push
			}
			f.add(e)
			if !marked[v] {
				if err = absorb(v); err != nil {
					return nil, fmt.Errorf("mst.LazyPrim: %w", err)
				}
			}
			if !marked[w] {
				if err = absorb(w); err != nil {
					return nil, fmt.Errorf("mst.LazyPrim: %w", err)
				}
			}
		}
	}

	return f, nil
}
