package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/toposort"
)

// AcyclicSP computes the shortest-path tree from s over an edge-weighted
// DAG in a single relaxation sweep along a topological order. Negative
// weights are fine; a directed cycle is not.
// Fails with ErrCyclicGraph when the digraph is not a DAG.
// Complexity: O(V+E) time, O(V) space.
func AcyclicSP(g *core.EdgeWeightedDigraph, s int) (*Tree, error) {
	return acyclicRelax(g, s, "shortest.AcyclicSP", false)
}

// AcyclicLP computes the longest-path tree from s over an edge-weighted
// DAG: same sweep as AcyclicSP with the comparison flipped and distances
// seeded at -Inf.
// Fails with ErrCyclicGraph when the digraph is not a DAG.
// Complexity: O(V+E) time, O(V) space.
func AcyclicLP(g *core.EdgeWeightedDigraph, s int) (*Tree, error) {
	return acyclicRelax(g, s, "shortest.AcyclicLP", true)
}

// acyclicRelax is the shared sweep: topologically order the vertices,
// then relax every out-edge of each reached vertex exactly once.
func acyclicRelax(g *core.EdgeWeightedDigraph, s int, op string, longest bool) (*Tree, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	n := g.V()
	if err := validateSource(n, s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// 2. Topologically order the unweighted shadow of the digraph.
	shadow, err := core.NewDigraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, e := range g.Edges() {
		_ = shadow.AddEdge(e.From, e.To) // endpoints known valid
	}
	order, err := toposort.Kahn(shadow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !order.HasOrder() {
		return nil, fmt.Errorf("%s: %w", op, ErrCyclicGraph)
	}

	// 3. One sweep in topological order; vertices before the source (or
	//    unreached) have nothing to propagate.
	unreached := math.Inf(1)
	if longest {
		unreached = math.Inf(-1)
	}
	t := newTree(n, s, unreached)
	for _, v := range order.Order() {
		if t.distTo[v] == unreached {
			continue
		}
		adj, errAdj := g.Adj(v)
		if errAdj != nil {
			return nil, fmt.Errorf("%s: Adj(%d): %w", op, v, errAdj)
		}
		for _, e := range adj {
			w := e.To
			d := t.distTo[v] + e.Weight
			better := d < t.distTo[w]
			if longest {
				better = d > t.distTo[w]
			}
			if better {
				t.distTo[w] = d
				t.edgeTo[w] = e
				t.hasEdge[w] = true
			}
		}
	}

	return t, nil
}
