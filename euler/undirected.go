package euler

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Cycle finds an Eulerian cycle of an undirected graph: a closed trail
// using every edge exactly once. One exists exactly when the graph has at
// least one edge, every vertex has even degree, and all edges lie in one
// connected component.
// Complexity: O(V+E) time and space.
func Cycle(g *core.Graph) (*Trail, error) {
	// 1. Validate input and the degree preconditions.
	if g == nil {
		return nil, fmt.Errorf("euler.Cycle: %w", ErrNilGraph)
	}
	if g.E() == 0 {
		return &Trail{}, nil
	}
	for v := 0; v < g.V(); v++ {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("euler.Cycle: %w", err)
		}
		if deg%2 != 0 {
			return &Trail{}, nil
		}
	}

	// 2. Walk from any vertex with edges; a short trail means the edges
	//    span more than one component.
	adj, used, err := buildHalfedges(g)
	if err != nil {
		return nil, fmt.Errorf("euler.Cycle: %w", err)
	}
	s := firstWithEdges(adj)
	trail := hierholzer(adj, used, s)
	if len(trail) != g.E()+1 {
		return &Trail{}, nil
	}

	return &Trail{vertices: trail}, nil
}

// Path finds an Eulerian path of an undirected graph: a trail using every
// edge exactly once, closed or open. One exists exactly when at most two
// vertices have odd degree and all edges lie in one connected component.
// An edgeless graph admits the degenerate single-vertex path.
// Complexity: O(V+E) time and space.
func Path(g *core.Graph) (*Trail, error) {
	// 1. Validate input and count odd-degree vertices; an odd one, if
	//    present, must be the start.
	if g == nil {
		return nil, fmt.Errorf("euler.Path: %w", ErrNilGraph)
	}
	if g.E() == 0 {
		if g.V() == 0 {
			return &Trail{}, nil
		}

		return &Trail{vertices: []int{0}}, nil
	}
	odd := 0
	start := -1
	for v := 0; v < g.V(); v++ {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("euler.Path: %w", err)
		}
		if deg%2 != 0 {
			odd++
			start = v
		}
	}
	if odd > 2 {
		return &Trail{}, nil
	}

	// 2. Walk from an odd vertex when one exists, otherwise from any
	//    vertex with edges.
	adj, used, err := buildHalfedges(g)
	if err != nil {
		return nil, fmt.Errorf("euler.Path: %w", err)
	}
	if start == -1 {
		start = firstWithEdges(adj)
	}
	trail := hierholzer(adj, used, start)
	if len(trail) != g.E()+1 {
		return &Trail{}, nil
	}

	return &Trail{vertices: trail}, nil
}

// buildHalfedges assigns each undirected edge an id and materializes both
// traversal directions. A self-loop contributes two halfedges at its
// vertex under one id, preserving degree parity while Hierholzer consumes
// it once.
func buildHalfedges(g *core.Graph) ([][]halfedge, []bool, error) {
	n := g.V()
	adj := make([][]halfedge, n)
	used := make([]bool, g.E())
	id := 0
	for v := 0; v < n; v++ {
		neighbors, err := g.Adj(v)
		if err != nil {
			return nil, nil, fmt.Errorf("Adj(%d): %w", v, err)
		}
		selfLoops := 0
		for _, w := range neighbors {
			switch {
			case w > v:
				adj[v] = append(adj[v], halfedge{to: w, id: id})
				adj[w] = append(adj[w], halfedge{to: v, id: id})
				id++
			case w == v:
				// Each self-loop occupies two adjacency slots; emit both
				// halfedges on the first of the pair.
				if selfLoops%2 == 0 {
					adj[v] = append(adj[v], halfedge{to: v, id: id})
					adj[v] = append(adj[v], halfedge{to: v, id: id})
					id++
				}
				selfLoops++
			}
		}
	}

	return adj, used, nil
}

// firstWithEdges returns the first non-isolated vertex, or 0 when all are
// isolated.
func firstWithEdges(adj [][]halfedge) int {
	for v := range adj {
		if len(adj[v]) > 0 {
			return v
		}
	}

	return 0
}
