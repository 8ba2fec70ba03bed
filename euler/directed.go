package euler

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// DirectedCycle finds an Eulerian cycle of a digraph: a closed trail
// following every edge in direction exactly once. One exists exactly when
// the digraph has at least one edge, every vertex has equal in- and
// outdegree, and all edges lie in one strongly reachable cluster.
// Complexity: O(V+E) time and space.
func DirectedCycle(d *core.Digraph) (*Trail, error) {
	// 1. Validate input and the balance precondition.
	if d == nil {
		return nil, fmt.Errorf("euler.DirectedCycle: %w", ErrNilGraph)
	}
	if d.E() == 0 {
		return &Trail{}, nil
	}
	for v := 0; v < d.V(); v++ {
		in, out, err := degrees(d, v)
		if err != nil {
			return nil, fmt.Errorf("euler.DirectedCycle: %w", err)
		}
		if in != out {
			return &Trail{}, nil
		}
	}

	// 2. Walk from any vertex with out-edges; a short trail means the
	//    edges are not mutually reachable.
	adj, used, err := buildArcs(d)
	if err != nil {
		return nil, fmt.Errorf("euler.DirectedCycle: %w", err)
	}
	s := firstWithEdges(adj)
	trail := hierholzer(adj, used, s)
	if len(trail) != d.E()+1 {
		return &Trail{}, nil
	}

	return &Trail{vertices: trail}, nil
}

// DirectedPath finds an Eulerian path of a digraph. One exists exactly
// when at most one vertex has outdegree exceeding indegree by one (the
// forced start), at most one has indegree exceeding outdegree by one,
// every other vertex is balanced, and all edges lie in one reachable
// cluster. An edgeless digraph admits the degenerate single-vertex path.
// Complexity: O(V+E) time and space.
func DirectedPath(d *core.Digraph) (*Trail, error) {
	// 1. Validate input and locate the forced start, if any.
	if d == nil {
		return nil, fmt.Errorf("euler.DirectedPath: %w", ErrNilGraph)
	}
	if d.E() == 0 {
		if d.V() == 0 {
			return &Trail{}, nil
		}

		return &Trail{vertices: []int{0}}, nil
	}
	start := -1
	surplus, deficit := 0, 0
	for v := 0; v < d.V(); v++ {
		in, out, err := degrees(d, v)
		if err != nil {
			return nil, fmt.Errorf("euler.DirectedPath: %w", err)
		}
		switch {
		case out == in+1:
			surplus++
			start = v
		case in == out+1:
			deficit++
		case in != out:
			return &Trail{}, nil
		}
	}
	if surplus > 1 || deficit > 1 {
		return &Trail{}, nil
	}

	// 2. Walk from the surplus vertex when one exists, otherwise from any
	//    vertex with out-edges.
	adj, used, err := buildArcs(d)
	if err != nil {
		return nil, fmt.Errorf("euler.DirectedPath: %w", err)
	}
	if start == -1 {
		start = firstWithEdges(adj)
	}
	trail := hierholzer(adj, used, start)
	if len(trail) != d.E()+1 {
		return &Trail{}, nil
	}

	return &Trail{vertices: trail}, nil
}

// degrees returns the in- and outdegree of v.
func degrees(d *core.Digraph, v int) (in, out int, err error) {
	if in, err = d.Indegree(v); err != nil {
		return 0, 0, err
	}
	if out, err = d.Outdegree(v); err != nil {
		return 0, 0, err
	}

	return in, out, nil
}

// buildArcs assigns each directed edge an id; only the forward direction
// is traversable.
func buildArcs(d *core.Digraph) ([][]halfedge, []bool, error) {
	n := d.V()
	adj := make([][]halfedge, n)
	used := make([]bool, d.E())
	id := 0
	for v := 0; v < n; v++ {
		heads, err := d.Adj(v)
		if err != nil {
			return nil, nil, fmt.Errorf("Adj(%d): %w", v, err)
		}
		for _, w := range heads {
			adj[v] = append(adj[v], halfedge{to: w, id: id})
			id++
		}
	}

	return adj, used, nil
}
