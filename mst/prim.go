package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/ipq"
)

// PrimMST is a spanning forest computed by the eager Prim variant.
type PrimMST struct {
	forest
}

// Prim grows one tree per connected component keeping at most one
// indexed-heap slot per fringe vertex, keyed by the weight of its
// cheapest known crossing edge. Absorbing a vertex commits that edge.
// Complexity: O(E log V) time, O(V) space.
func Prim(g *core.EdgeWeightedGraph) (*PrimMST, error) {
	// 1. Validate input and prepare the fringe state.
	if g == nil {
		return nil, fmt.Errorf("mst.Prim: %w", ErrNilGraph)
	}
	n := g.V()
	f := &PrimMST{}
	marked := make([]bool, n)
	dist := make([]float64, n) // cheapest known crossing-edge weight
	edgeTo := make([]core.Edge, n)
	hasEdge := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	pq, err := ipq.New(n)
	if err != nil {
		return nil, fmt.Errorf("mst.Prim: %w", err)
	}

	// 2. Sweep all vertices so a disconnected graph yields a forest.
	for s := 0; s < n; s++ {
		if marked[s] {
			continue
		}
		dist[s] = 0
		if err = pq.Insert(s, 0); err != nil {
			return nil, fmt.Errorf("mst.Prim: %w", err)
		}

		for !pq.Empty() {
			// 3. Absorb the cheapest fringe vertex; its stored edge
			//    (absent only for tree roots) joins the forest.
			v, _, errMin := pq.DelMin()
			if errMin != nil {
				return nil, fmt.Errorf("mst.Prim: %w", errMin)
			}
			marked[v] = true
			if hasEdge[v] {
				f.add(edgeTo[v])
			}

			// 4. Re-key the fringe against v's incident edges.
			adj, errAdj := g.Adj(v)
			if errAdj != nil {
				return nil, fmt.Errorf("mst.Prim: Adj(%d): %w", v, errAdj)
			}
			for _, e := range adj {
				w, errOther := e.Other(v)
				if errOther != nil {
					return nil, fmt.Errorf("mst.Prim: %w", errOther)
				}
				if marked[w] || e.Weight >= dist[w] {
					continue
				}
				dist[w] = e.Weight
				edgeTo[w] = e
				hasEdge[w] = true
				queued, errC := pq.Contains(w)
				if errC != nil {
					return nil, fmt.Errorf("mst.Prim: %w", errC)
				}
				if queued {
					err = pq.DecreaseKey(w, dist[w])
				} else {
					err = pq.Insert(w, dist[w])
				}
				if err != nil {
					return nil, fmt.Errorf("mst.Prim: %w", err)
				}
			}
		}
	}

	return f, nil
}
