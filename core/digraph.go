package core

import (
	"fmt"
	"strings"
)

// Digraph is a directed, unweighted graph over vertices [0, V).
// Outgoing adjacency lists keep heads in insertion order and indegree
// counters are maintained on every AddEdge.
type Digraph struct {
	v        int     // fixed vertex count
	e        int     // running edge count
	adj      [][]int // adj[v] = heads of edges leaving v, insertion order
	indegree []int   // indegree[v] = number of edges entering v
	loops    int     // number of self-loops
	parallel int     // number of parallel edges
	arcSeen  map[[2]int]int // ordered endpoint pair → multiplicity
}

// NewDigraph creates an empty digraph with v vertices.
// Fails with ErrNegativeVertexCount when v < 0.
// Complexity: O(V).
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewDigraph(%d): %w", v, ErrNegativeVertexCount)
	}

	return &Digraph{
		v:        v,
		adj:      make([][]int, v),
		indegree: make([]int, v),
		arcSeen:  make(map[[2]int]int),
	}, nil
}

// V returns the fixed vertex count.
func (g *Digraph) V() int { return g.v }

// E returns the number of edges added so far.
func (g *Digraph) E() int { return g.e }

// validate checks a vertex index against [0, V).
func (g *Digraph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexRange)
	}

	return nil
}

// AddEdge inserts the directed edge v→w.
// Fails with ErrVertexRange on an invalid endpoint.
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(v, w int) error {
	// 1. Validate both endpoints before mutating anything.
	if err := g.validate(v); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.validate(w); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	// 2. Maintain loop/parallel counters for Simple().
	if v == w {
		g.loops++
	}
	key := [2]int{v, w}
	if g.arcSeen[key] > 0 {
		g.parallel++
	}
	g.arcSeen[key]++

	// 3. Append head, bump indegree and edge count.
	g.adj[v] = append(g.adj[v], w)
	g.indegree[w]++
	g.e++

	return nil
}

// Adj returns the heads of edges leaving v, in insertion order.
// The returned slice is owned by the graph and must not be mutated.
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}

	return g.adj[v], nil
}

// Outdegree returns the number of edges leaving v.
func (g *Digraph) Outdegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Outdegree: %w", err)
	}

	return len(g.adj[v]), nil
}

// Indegree returns the number of edges entering v.
func (g *Digraph) Indegree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Indegree: %w", err)
	}

	return g.indegree[v], nil
}

// Loops returns the number of self-loops added so far.
func (g *Digraph) Loops() int { return g.loops }

// Parallels returns the number of parallel edges added so far.
func (g *Digraph) Parallels() int { return g.parallel }

// Simple reports whether the digraph contains neither self-loops nor
// parallel edges.
func (g *Digraph) Simple() bool { return g.loops == 0 && g.parallel == 0 }

// Reverse returns a new Digraph with every edge flipped w→v.
// Edge insertion order in the reverse follows vertex-then-list scan order.
// Complexity: O(V+E).
func (g *Digraph) Reverse() *Digraph {
	r, _ := NewDigraph(g.v) // v is known valid here
	for v := 0; v < g.v; v++ {
		for _, w := range g.adj[v] {
			_ = r.AddEdge(w, v) // endpoints already validated by g
		}
	}

	return r
}

// String renders a debug dump: "V E" header, then one adjacency line per
// vertex. Not a stable wire format.
func (g *Digraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range g.adj[v] {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
