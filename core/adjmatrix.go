package core

import (
	"fmt"
	"strings"
)

// AdjMatrixEdgeWeightedDigraph is a dense-matrix weighted digraph over
// vertices [0, V). Storage is a flat row-major V×V buffer, so edge lookup
// between an ordered pair is O(1) and space is O(V²) regardless of E.
//
// Parallel edges are disallowed: a second AddEdge on the same ordered pair
// is silently ignored. Self-loops are permitted.
type AdjMatrixEdgeWeightedDigraph struct {
	v       int            // fixed vertex count
	e       int            // running edge count
	edges   []DirectedEdge // flat row-major buffer, edges[from*v+to]
	present []bool         // present[from*v+to] marks a stored edge
}

// NewAdjMatrixEdgeWeightedDigraph creates an empty dense weighted digraph
// with v vertices. Fails with ErrNegativeVertexCount when v < 0.
// Complexity: O(V²) space.
func NewAdjMatrixEdgeWeightedDigraph(v int) (*AdjMatrixEdgeWeightedDigraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewAdjMatrixEdgeWeightedDigraph(%d): %w", v, ErrNegativeVertexCount)
	}

	return &AdjMatrixEdgeWeightedDigraph{
		v:       v,
		edges:   make([]DirectedEdge, v*v),
		present: make([]bool, v*v),
	}, nil
}

// V returns the fixed vertex count.
func (g *AdjMatrixEdgeWeightedDigraph) V() int { return g.v }

// E returns the number of stored edges.
func (g *AdjMatrixEdgeWeightedDigraph) E() int { return g.e }

// validate checks a vertex index against [0, V).
func (g *AdjMatrixEdgeWeightedDigraph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexRange)
	}

	return nil
}

// AddEdge stores directed edge e in the matrix cell (From, To).
// A duplicate ordered pair is silently ignored; self-loops are stored.
// Complexity: O(1).
func (g *AdjMatrixEdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	// 1. Validate endpoints against this container's range.
	if err := g.validate(e.From); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.validate(e.To); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	// 2. Parallel edges are disallowed by the dense representation:
	//    keep the first edge on the ordered pair and drop the rest.
	idx := e.From*g.v + e.To
	if g.present[idx] {
		return nil
	}

	g.edges[idx] = e
	g.present[idx] = true
	g.e++

	return nil
}

// EdgeBetween returns the stored edge from → to and whether one exists.
// Complexity: O(1).
func (g *AdjMatrixEdgeWeightedDigraph) EdgeBetween(from, to int) (DirectedEdge, bool, error) {
	if err := g.validate(from); err != nil {
		return DirectedEdge{}, false, fmt.Errorf("EdgeBetween: %w", err)
	}
	if err := g.validate(to); err != nil {
		return DirectedEdge{}, false, fmt.Errorf("EdgeBetween: %w", err)
	}
	idx := from*g.v + to

	return g.edges[idx], g.present[idx], nil
}

// Adj returns the edges leaving v, scanning row v in head order.
// The slice is freshly built on each call. Complexity: O(V).
func (g *AdjMatrixEdgeWeightedDigraph) Adj(v int) ([]DirectedEdge, error) {
	if err := g.validate(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}
	row := g.edges[v*g.v : (v+1)*g.v]
	mask := g.present[v*g.v : (v+1)*g.v]
	out := make([]DirectedEdge, 0, g.v)
	for to := 0; to < g.v; to++ {
		if mask[to] {
			out = append(out, row[to])
		}
	}

	return out, nil
}

// Outdegree returns the number of edges leaving v. Complexity: O(V).
func (g *AdjMatrixEdgeWeightedDigraph) Outdegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Outdegree: %w", err)
	}
	n := 0
	for _, p := range g.present[v*g.v : (v+1)*g.v] {
		if p {
			n++
		}
	}

	return n, nil
}

// String renders a debug dump: "V E" header, then one adjacency line per
// vertex. Not a stable wire format.
func (g *AdjMatrixEdgeWeightedDigraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for to := 0; to < g.v; to++ {
			if g.present[v*g.v+to] {
				fmt.Fprintf(&sb, " %s", g.edges[v*g.v+to])
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
