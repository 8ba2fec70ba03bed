package core

import (
	"fmt"
	"math"
)

// Pair is an immutable unweighted undirected edge {V, W}.
// Endpoint order carries no meaning.
type Pair struct {
	V int // one endpoint
	W int // the other endpoint
}

// NewPair builds an undirected pair, validating both endpoints are non-negative.
// Range against a concrete V is checked by the container on AddEdge.
func NewPair(v, w int) (Pair, error) {
	if v < 0 || w < 0 {
		return Pair{}, fmt.Errorf("pair (%d,%d): %w", v, w, ErrVertexRange)
	}

	return Pair{V: v, W: w}, nil
}

// String renders the pair as "v-w".
func (p Pair) String() string { return fmt.Sprintf("%d-%d", p.V, p.W) }

// Arc is an immutable unweighted directed edge (From → To).
type Arc struct {
	From int // tail vertex
	To   int // head vertex
}

// NewArc builds a directed pair, validating both endpoints are non-negative.
func NewArc(from, to int) (Arc, error) {
	if from < 0 || to < 0 {
		return Arc{}, fmt.Errorf("arc (%d,%d): %w", from, to, ErrVertexRange)
	}

	return Arc{From: from, To: to}, nil
}

// String renders the arc as "from->to".
func (a Arc) String() string { return fmt.Sprintf("%d->%d", a.From, a.To) }

// Edge is an immutable weighted undirected edge {V, W, Weight}.
// Comparison between edges is by weight (see Less).
type Edge struct {
	V      int     // one endpoint
	W      int     // the other endpoint
	Weight float64 // finite edge weight
}

// NewEdge builds a weighted undirected edge.
// It fails on negative endpoints and on NaN or infinite weights.
func NewEdge(v, w int, weight float64) (Edge, error) {
	if v < 0 || w < 0 {
		return Edge{}, fmt.Errorf("edge %d-%d: %w", v, w, ErrVertexRange)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Edge{}, fmt.Errorf("edge %d-%d weight=%v: %w", v, w, weight, ErrBadWeight)
	}

	return Edge{V: v, W: w, Weight: weight}, nil
}

// Either returns one endpoint of the edge (always V).
func (e Edge) Either() int { return e.V }

// Other returns the endpoint that is not x, or ErrNotEndpoint if x is
// neither endpoint.
func (e Edge) Other(x int) (int, error) {
	switch x {
	case e.V:
		return e.W, nil
	case e.W:
		return e.V, nil
	default:
		return 0, fmt.Errorf("edge %s other(%d): %w", e, x, ErrNotEndpoint)
	}
}

// Less reports whether e weighs strictly less than other.
func (e Edge) Less(other Edge) bool { return e.Weight < other.Weight }

// String renders the edge as "v-w weight".
func (e Edge) String() string { return fmt.Sprintf("%d-%d %.5f", e.V, e.W, e.Weight) }

// DirectedEdge is an immutable weighted directed edge (From → To, Weight).
type DirectedEdge struct {
	From   int     // tail vertex
	To     int     // head vertex
	Weight float64 // finite edge weight
}

// NewDirectedEdge builds a weighted directed edge.
// It fails on negative endpoints and on NaN or infinite weights.
func NewDirectedEdge(from, to int, weight float64) (DirectedEdge, error) {
	if from < 0 || to < 0 {
		return DirectedEdge{}, fmt.Errorf("edge %d->%d: %w", from, to, ErrVertexRange)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return DirectedEdge{}, fmt.Errorf("edge %d->%d weight=%v: %w", from, to, weight, ErrBadWeight)
	}

	return DirectedEdge{From: from, To: to, Weight: weight}, nil
}

// Less reports whether e weighs strictly less than other.
func (e DirectedEdge) Less(other DirectedEdge) bool { return e.Weight < other.Weight }

// String renders the edge as "from->to weight".
func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.5f", e.From, e.To, e.Weight)
}
