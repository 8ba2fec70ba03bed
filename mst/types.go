package mst

import (
	"errors"

	"github.com/katalvlaran/lvldense/core"
)

// Sentinel errors for spanning-forest computation and verification.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNilForest is returned by Verify when the candidate is nil.
	ErrNilForest = errors.New("mst: forest is nil")

	// ErrWeightMismatch is returned by Verify when the reported weight
	// does not match the sum of the forest's edges.
	ErrWeightMismatch = errors.New("mst: forest weight does not match its edges")

	// ErrNotForest is returned by Verify when the candidate contains a cycle.
	ErrNotForest = errors.New("mst: candidate contains a cycle")

	// ErrNotSpanning is returned by Verify when the candidate does not
	// span every connected component of the graph.
	ErrNotSpanning = errors.New("mst: candidate does not span the graph")

	// ErrNotMinimal is returned by Verify when some tree edge is not a
	// minimum-weight edge across the cut it defines.
	ErrNotMinimal = errors.New("mst: candidate violates cut optimality")
)

// Forest is a computed minimum spanning forest. All algorithms in this
// package return an implementation of it.
type Forest interface {
	// Edges returns the forest edges in the order the algorithm added them.
	Edges() []core.Edge

	// Weight returns the total weight of the forest.
	Weight() float64
}

// forest is the shared result backend filled by each algorithm.
type forest struct {
	edges  []core.Edge
	weight float64
}

// Edges returns the forest edges in the order they were added.
func (f *forest) Edges() []core.Edge { return f.edges }

// Weight returns the total weight of the forest.
func (f *forest) Weight() float64 { return f.weight }

// add appends a tree edge and accumulates its weight.
func (f *forest) add(e core.Edge) {
	f.edges = append(f.edges, e)
	f.weight += e.Weight
}
