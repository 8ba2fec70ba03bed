package core

import (
	"fmt"
	"strings"
)

// EdgeWeightedGraph is an undirected graph over vertices [0, V) whose
// edges carry finite float64 weights. Each Edge value is stored in the
// adjacency list of both endpoints.
type EdgeWeightedGraph struct {
	v        int      // fixed vertex count
	e        int      // running edge count
	adj      [][]Edge // adj[v] = edges incident to v, insertion order
	loops    int      // number of self-loops
	parallel int      // number of parallel edges
	pairSeen map[[2]int]int // normalized endpoint pair → multiplicity
}

// NewEdgeWeightedGraph creates an empty weighted undirected graph with v
// vertices. Fails with ErrNegativeVertexCount when v < 0.
// Complexity: O(V).
func NewEdgeWeightedGraph(v int) (*EdgeWeightedGraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewEdgeWeightedGraph(%d): %w", v, ErrNegativeVertexCount)
	}

	return &EdgeWeightedGraph{
		v:        v,
		adj:      make([][]Edge, v),
		pairSeen: make(map[[2]int]int),
	}, nil
}

// V returns the fixed vertex count.
func (g *EdgeWeightedGraph) V() int { return g.v }

// E returns the number of edges added so far.
func (g *EdgeWeightedGraph) E() int { return g.e }

// validate checks a vertex index against [0, V).
func (g *EdgeWeightedGraph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.v, ErrVertexRange)
	}

	return nil
}

// AddEdge inserts edge e into the adjacency list of both endpoints.
// The Edge value is assumed well-formed (built via NewEdge); endpoints are
// re-validated against this graph's [0, V).
// Complexity: O(1) amortized.
func (g *EdgeWeightedGraph) AddEdge(e Edge) error {
	// 1. Validate endpoints against this container's range.
	if err := g.validate(e.V); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.validate(e.W); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	// 2. Maintain loop/parallel counters for Simple().
	if e.V == e.W {
		g.loops++
	}
	key := normalize(e.V, e.W)
	if g.pairSeen[key] > 0 {
		g.parallel++
	}
	g.pairSeen[key]++

	// 3. Append to both endpoint lists (once for a self-loop would lose
	//    degree parity, so loops appear twice like Graph).
	g.adj[e.V] = append(g.adj[e.V], e)
	if e.V != e.W {
		g.adj[e.W] = append(g.adj[e.W], e)
	} else {
		g.adj[e.V] = append(g.adj[e.V], e)
	}
	g.e++

	return nil
}

// Adj returns the edges incident to v in insertion order.
// The returned slice is owned by the graph and must not be mutated.
func (g *EdgeWeightedGraph) Adj(v int) ([]Edge, error) {
	if err := g.validate(v); err != nil {
		return nil, fmt.Errorf("Adj: %w", err)
	}

	return g.adj[v], nil
}

// Degree returns the number of edges incident to v; a self-loop counts twice.
func (g *EdgeWeightedGraph) Degree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(g.adj[v]), nil
}

// Edges returns every edge exactly once, in vertex-then-insertion order.
// Self-loops, which appear twice in one adjacency list, are emitted once.
// Complexity: O(V+E).
func (g *EdgeWeightedGraph) Edges() []Edge {
	edges := make([]Edge, 0, g.e)
	for v := 0; v < g.v; v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			other, _ := e.Other(v) // v is always an endpoint here
			if other > v {
				edges = append(edges, e)
			} else if other == v {
				// Each self-loop occupies two adjacency slots; keep one.
				if selfLoops%2 == 0 {
					edges = append(edges, e)
				}
				selfLoops++
			}
		}
	}

	return edges
}

// Loops returns the number of self-loops added so far.
func (g *EdgeWeightedGraph) Loops() int { return g.loops }

// Parallels returns the number of parallel edges added so far.
func (g *EdgeWeightedGraph) Parallels() int { return g.parallel }

// Simple reports whether the graph contains neither self-loops nor
// parallel edges.
func (g *EdgeWeightedGraph) Simple() bool { return g.loops == 0 && g.parallel == 0 }

// String renders a debug dump: "V E" header, then one adjacency line per
// vertex. Not a stable wire format.
func (g *EdgeWeightedGraph) String() string {
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
