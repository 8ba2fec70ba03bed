package connectivity

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/traverse"
)

// TransitiveClosure answers directed reachability in O(1) after running a
// directed DFS from every vertex. The precomputation costs O(V·(V+E))
// time and O(V²) space, which is the accepted trade for small dense-index
// digraphs.
type TransitiveClosure struct {
	reach []*traverse.Marks // reach[v] = marks of the DFS rooted at v
}

// NewTransitiveClosure runs traverse.DFS from each vertex of d.
func NewTransitiveClosure(d *core.Digraph) (*TransitiveClosure, error) {
	// 1. Validate input.
	if d == nil {
		return nil, fmt.Errorf("NewTransitiveClosure: %w", ErrNilGraph)
	}

	// 2. One full DFS per source vertex.
	tc := &TransitiveClosure{reach: make([]*traverse.Marks, d.V())}
	for v := 0; v < d.V(); v++ {
		m, err := traverse.DFS(d, v)
		if err != nil {
			return nil, fmt.Errorf("NewTransitiveClosure: DFS(%d): %w", v, err)
		}
		tc.reach[v] = m
	}

	return tc, nil
}

// Reachable reports whether there is a directed path v → … → w.
// Every vertex reaches itself.
func (tc *TransitiveClosure) Reachable(v, w int) (bool, error) {
	if v < 0 || v >= len(tc.reach) {
		return false, fmt.Errorf("Reachable(%d,%d): %w", v, w, ErrVertexRange)
	}
	ok, err := tc.reach[v].Marked(w)
	if err != nil {
		return false, fmt.Errorf("Reachable(%d,%d): %w", v, w, ErrVertexRange)
	}

	return ok, nil
}
