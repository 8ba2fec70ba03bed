package core

import (
	"fmt"
	"strings"
)

// EdgeWeightedDigraph is a directed graph over vertices [0, V) whose edges
// carry finite float64 weights.
type EdgeWeightedDigraph struct {
	v        int              // fixed vertex count
	e        int              // running edge count
	adj      [][]DirectedEdge // adj[v] = edges leaving v, insertion order
	indegree []int            // indegree[v] = number of edges entering v
	loops    int              // number of self-loops
	parallel int              // number of parallel edges
	arcSeen  map[[2]int]int   // ordered endpoint pair → multiplicity
}

// NewEdgeWeightedDigraph creates an empty weighted digraph with v vertices.
// Fails with ErrNegativeVertexCount when v < 0.
// Complexity: O(V).
func NewEdgeWeightedDigraph(v int) (*EdgeWeightedDigraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewEdgeWeightedDigraph(%d): %w", v, ErrNegativeVertexCount)
	}

	return &EdgeWeightedDigraph{
		v:        v,
		adj:      make([][]DirectedEdge, v),
		indegree: make([]int, v),
		arcSeen:  make(map[[2]int]int),
	}, nil
}

// V returns the fixed vertex count.
func (g *EdgeWeightedDigraph) V() int { return g.v }

// E returns the number of edges added so far.
func (g *EdgeWeightedDigraph) E() int { return g.e }

// validate checks a vertex index against [0, V).
func (g *EdgeWeightedDigraph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexRange)
	}

	return nil
}

// AddEdge inserts directed edge e.
// Fails with ErrVertexRange when either endpoint is outside [0, V).
// Complexity: O(1) amortized.
func (g *EdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	// 1. Validate endpoints against this container's range.
	if err := g.validate(e.From); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.validate(e.To); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	// 2. Maintain loop/parallel counters for Simple().
	if e.From == e.To {
		g.loops++
	}
	key := [2]int{e.From, e.To}
	if g.arcSeen[key] > 0 {
		g.parallel++
	}
	g.arcSeen[key]++

	// 3. Append, bump indegree and edge count.
	g.adj[e.From] = append(g.adj[e.From], e)
	g.indegree[e.To]++
	g.e++

	return nil
}

// Adj returns the edges leaving v in insertion order.
// The returned slice is owned by the graph and must not be mutated.
func (g *EdgeWeightedDigraph) Adj(v int) ([]DirectedEdge, error) {
	if err := g.validate(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}

	return g.adj[v], nil
}

// Outdegree returns the number of edges leaving v.
func (g *EdgeWeightedDigraph) Outdegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Outdegree: %w", err)
	}

	return len(g.adj[v]), nil
}

// Indegree returns the number of edges entering v.
func (g *EdgeWeightedDigraph) Indegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Indegree: %w", err)
	}

	return g.indegree[v], nil
}

// Edges returns every directed edge, in vertex-then-insertion order.
// Complexity: O(V+E).
func (g *EdgeWeightedDigraph) Edges() []DirectedEdge {
	edges := make([]DirectedEdge, 0, g.e)
	for v := 0; v < g.v; v++ {
		edges = append(edges, g.adj[v]...)
	}

	return edges
}

// Loops returns the number of self-loops added so far.
func (g *EdgeWeightedDigraph) Loops() int { return g.loops }

// Parallels returns the number of parallel edges added so far.
func (g *EdgeWeightedDigraph) Parallels() int { return g.parallel }

// Simple reports whether the digraph contains neither self-loops nor
// parallel edges.
func (g *EdgeWeightedDigraph) Simple() bool { return g.loops == 0 && g.parallel == 0 }

// String renders a debug dump: "V E" header, then one adjacency line per
// vertex. Not a stable wire format.
func (g *EdgeWeightedDigraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, e := range g.adj[v] {
			fmt.Fprintf(&sb, " %s", e)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
