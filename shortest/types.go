package shortest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Sentinel errors for shortest-path computations and queries.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrVertexRange is returned for a vertex outside [0, V).
	ErrVertexRange = errors.New("shortest: vertex out of range")

	// ErrNegativeWeight is returned by the Dijkstra variants when any
	// edge of the input carries a negative weight.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNegativeCycle is returned by distance and path queries after a
	// negative cycle has been detected: no shortest paths exist.
	ErrNegativeCycle = errors.New("shortest: negative cycle detected")

	// ErrCyclicGraph is returned by the acyclic relaxers when the input
	// digraph contains a directed cycle.
	ErrCyclicGraph = errors.New("shortest: digraph is not acyclic")
)

// Tree is a single-source shortest-path (or, for AcyclicLP, longest-path)
// tree. It is built once by a constructor and then queried read-only.
type Tree struct {
	distTo    []float64           // best known distance from the source
	edgeTo    []core.DirectedEdge // last edge on the best path, valid when hasEdge
	hasEdge   []bool              // hasEdge[v] = v has an incoming tree edge
	unreached float64             // distance marking "no path": +Inf or -Inf
	negCycle  []core.DirectedEdge // non-nil once a negative cycle was found
}

// newTree allocates a tree rooted at s with every distance unreached.
func newTree(n, s int, unreached float64) *Tree {
	t := &Tree{
		distTo:    make([]float64, n),
		edgeTo:    make([]core.DirectedEdge, n),
		hasEdge:   make([]bool, n),
		unreached: unreached,
	}
	for v := range t.distTo {
		t.distTo[v] = unreached
	}
	t.distTo[s] = 0

	return t
}

// validate checks a query vertex against [0, V) and refuses all distance
// queries once a negative cycle poisons the tree.
func (t *Tree) validate(v int) error {
	if v < 0 || v >= len(t.distTo) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, len(t.distTo), ErrVertexRange)
	}
	if t.negCycle != nil {
		return ErrNegativeCycle
	}

	return nil
}

// HasNegativeCycle reports whether the computation found a negative cycle.
func (t *Tree) HasNegativeCycle() bool { return t.negCycle != nil }

// NegativeCycle returns the witness cycle as a sequence of edges whose
// weights sum below zero, or nil when none was found.
func (t *Tree) NegativeCycle() []core.DirectedEdge { return t.negCycle }

// DistTo returns the tree distance from the source to v.
// Unreachable vertices answer the infinite unreached distance.
func (t *Tree) DistTo(v int) (float64, error) {
	if err := t.validate(v); err != nil {
		return 0, fmt.Errorf("DistTo(%d): %w", v, err)
	}

	return t.distTo[v], nil
}

// HasPathTo reports whether v is reachable from the source.
func (t *Tree) HasPathTo(v int) (bool, error) {
	if err := t.validate(v); err != nil {
		return false, fmt.Errorf("HasPathTo(%d): %w", v, err)
	}

	return t.distTo[v] != t.unreached, nil
}

// PathTo returns the tree path source → v as a sequence of edges, or nil
// when v is unreachable.
func (t *Tree) PathTo(v int) ([]core.DirectedEdge, error) {
	if err := t.validate(v); err != nil {
		return nil, fmt.Errorf("PathTo(%d): %w", v, err)
	}
	if t.distTo[v] == t.unreached {
		return nil, nil
	}

	// Walk tree edges back to the source, then reverse into path order.
	path := make([]core.DirectedEdge, 0)
	for x := v; t.hasEdge[x]; x = t.edgeTo[x].From {
		path = append(path, t.edgeTo[x])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// validateSource checks a source vertex against [0, n).
func validateSource(n, s int) error {
	if s < 0 || s >= n {
		return fmt.Errorf("source %d not in [0,%d): %w", s, n, ErrVertexRange)
	}

	return nil
}
