package mst

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/dsu"
)

// BoruvkaMST is a spanning forest computed by Boruvka's algorithm.
type BoruvkaMST struct {
	forest
}

// Boruvka runs rounds that pick the cheapest edge leaving every component
// simultaneously and merge along all of them. Each round at least halves
// the component count, so at most log₂V rounds run. The union-find check
// before every merge keeps equal-weight selections from closing a cycle.
// Complexity: O(E log V) time, O(V+E) space.
func Boruvka(g *core.EdgeWeightedGraph) (*BoruvkaMST, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("mst.Boruvka: %w", ErrNilGraph)
	}
	n := g.V()
	edges := g.Edges()
	uf, err := dsu.New(n)
	if err != nil {
		return nil, fmt.Errorf("mst.Boruvka: %w", err)
	}
	f := &BoruvkaMST{}

	// 2. Rounds: closest[r] holds the index of the cheapest edge leaving
	//    the component rooted at r, -1 when none was seen yet.
	closest := make([]int, n)
	for round := 1; round < n && len(f.edges) < n-1; round *= 2 {
		for v := range closest {
			closest[v] = -1
		}
		for i, e := range edges {
			rv, errF := uf.Find(e.V)
			if errF != nil {
				return nil, fmt.Errorf("mst.Boruvka: %w", errF)
			}
			rw, errF := uf.Find(e.W)
			if errF != nil {
				return nil, fmt.Errorf("mst.Boruvka: %w", errF)
			}
			if rv == rw {
				continue // internal to one component (covers self-loops)
			}
			if closest[rv] == -1 || e.Less(edges[closest[rv]]) {
				closest[rv] = i
			}
			if closest[rw] == -1 || e.Less(edges[closest[rw]]) {
				closest[rw] = i
			}
		}

		// 3. Merge along every selected edge; an edge selected by both of
		//    its components merges once and is skipped the second time.
		merged := false
		for v := 0; v < n; v++ {
			i := closest[v]
			if i == -1 {
				continue
			}
			e := edges[i]
			ok, errU := uf.Union(e.V, e.W)
			if errU != nil {
				return nil, fmt.Errorf("mst.Boruvka: %w", errU)
			}
			if ok {
				f.add(e)
				merged = true
			}
		}
		if !merged {
			break // every component is already spanned
		}
	}

	return f, nil
}
