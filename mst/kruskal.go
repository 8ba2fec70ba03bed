package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/dsu"
)

// KruskalMST is a spanning forest computed by Kruskal's algorithm.
type KruskalMST struct {
	forest
}

// Kruskal sorts all edges by ascending weight and adds each edge whose
// endpoints lie in different union-find components. The stable sort keeps
// equal-weight edges in discovery order. Self-loops join nothing and are
// skipped by the same component test.
// Complexity: O(E log E) time, O(V+E) space.
func Kruskal(g *core.EdgeWeightedGraph) (*KruskalMST, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("mst.Kruskal: %w", ErrNilGraph)
	}

	// 2. Sort a copy of the edge list by weight.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })

	// 3. Greedy union sweep.
	n := g.V()
	uf, err := dsu.New(n)
	if err != nil {
		return nil, fmt.Errorf("mst.Kruskal: %w", err)
	}
	f := &KruskalMST{}
	for _, e := range edges {
		if len(f.edges) == n-1 {
			break // a forest can never exceed V-1 edges
		}
		merged, errU := uf.Union(e.V, e.W)
		if errU != nil {
			return nil, fmt.Errorf("mst.Kruskal: %w", errU)
		}
		if merged {
			f.add(e)
		}
	}

	return f, nil
}
