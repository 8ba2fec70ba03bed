package core

import (
	"fmt"
	"strings"
)

// Graph is an undirected, unweighted graph over vertices [0, V).
// Adjacency lists keep neighbors in insertion order; self-loops and
// parallel edges are permitted and counted.
type Graph struct {
	v        int     // fixed vertex count
	e        int     // running edge count
	adj      [][]int // adj[v] = neighbors of v in insertion order
	loops    int     // number of self-loops
	parallel int     // number of parallel (duplicate endpoint) edges
	pairSeen map[[2]int]int // normalized endpoint pair → multiplicity
}

// NewGraph creates an empty undirected graph with v vertices.
// Fails with ErrNegativeVertexCount when v < 0.
// Complexity: O(V).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", v, ErrNegativeVertexCount)
	}

	return &Graph{
		v:        v,
		adj:      make([][]int, v),
		pairSeen: make(map[[2]int]int),
	}, nil
}

// V returns the fixed vertex count.
func (g *Graph) V() int { return g.v }

// E returns the number of edges added so far.
func (g *Graph) E() int { return g.e }

// validate checks a vertex index against [0, V).
func (g *Graph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexRange)
	}

	return nil
}

// AddEdge inserts the undirected edge v-w, appending w to adj[v] and v to
// adj[w] (a self-loop appears twice in its own list, matching degree
// accounting). Fails with ErrVertexRange on an invalid endpoint.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int) error {
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
	key := normalize(v, w)
	if g.pairSeen[key] > 0 {
		g.parallel++
	}
	g.pairSeen[key]++

	// 3. Append to both adjacency lists and bump the edge count.
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.e++

	return nil
}

// Adj returns the neighbors of v in insertion order.
// The returned slice is owned by the graph and must not be mutated.
func (g *Graph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}

	return g.adj[v], nil
}

// Degree returns the number of edges incident to v; a self-loop counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(g.adj[v]), nil
}

// Loops returns the number of self-loops added so far.
func (g *Graph) Loops() int { return g.loops }

// Parallels returns the number of parallel edges added so far.
func (g *Graph) Parallels() int { return g.parallel }

// Simple reports whether the graph contains neither self-loops nor
// parallel edges.
func (g *Graph) Simple() bool { return g.loops == 0 && g.parallel == 0 }

// String renders a debug dump: "V E" header, then one adjacency line per
// vertex. Not a stable wire format.
func (g *Graph) String() string {
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

// normalize orders an undirected endpoint pair so that {v,w} and {w,v}
// share one multiplicity bucket.
func normalize(v, w int) [2]int {
	if v > w {
		v, w = w, v
	}

	return [2]int{v, w}
}
