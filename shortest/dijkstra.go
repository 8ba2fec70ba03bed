package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/ipq"
)

// Dijkstra computes the shortest-path tree from s over a non-negatively
// weighted digraph, using the eager variant: each vertex holds at most
// one slot in an indexed min-heap keyed by its best known distance.
// Fails with ErrNegativeWeight before doing any work if the digraph
// carries a negative edge.
// Complexity: O(E log V) time, O(V) space.
func Dijkstra(g *core.EdgeWeightedDigraph, s int) (*Tree, error) {
	// 1. Validate input and the non-negativity precondition.
	if g == nil {
		return nil, fmt.Errorf("shortest.Dijkstra: %w", ErrNilGraph)
	}
	if err := validateSource(g.V(), s); err != nil {
		return nil, fmt.Errorf("shortest.Dijkstra: %w", err)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("shortest.Dijkstra: edge %s: %w", e, ErrNegativeWeight)
		}
	}

	// 2. Seed the tree and the heap with the source at distance 0.
	n := g.V()
	t := newTree(n, s, math.Inf(1))
	pq, err := ipq.New(n)
	if err != nil {
		return nil, fmt.Errorf("shortest.Dijkstra: %w", err)
	}
	if err = pq.Insert(s, 0); err != nil {
		return nil, fmt.Errorf("shortest.Dijkstra: %w", err)
	}

	// 3. Grow the tree in distance order, relaxing out-edges of each
	//    settled vertex.
	for !pq.Empty() {
		v, _, errMin := pq.DelMin()
		if errMin != nil {
			return nil, fmt.Errorf("shortest.Dijkstra: %w", errMin)
		}
		adj, errAdj := g.Adj(v)
		if errAdj != nil {
			return nil, fmt.Errorf("shortest.Dijkstra: Adj(%d): %w", v, errAdj)
		}
		for _, e := range adj {
			if err = relaxDirected(t, pq, e); err != nil {
				return nil, fmt.Errorf("shortest.Dijkstra: %w", err)
			}
		}
	}

	return t, nil
}

// DijkstraUndirected is the undirected counterpart: each undirected edge
// is relaxed in both directions, so the resulting tree stores directed
// edges oriented away from the source.
// Complexity: O(E log V) time, O(V) space.
func DijkstraUndirected(g *core.EdgeWeightedGraph, s int) (*Tree, error) {
	// 1. Validate input and the non-negativity precondition.
	if g == nil {
		return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", ErrNilGraph)
	}
	if err := validateSource(g.V(), s); err != nil {
		return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", err)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("shortest.DijkstraUndirected: edge %s: %w", e, ErrNegativeWeight)
		}
	}

	// 2. Seed the tree and the heap.
	n := g.V()
	t := newTree(n, s, math.Inf(1))
	pq, err := ipq.New(n)
	if err != nil {
		return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", err)
	}
	if err = pq.Insert(s, 0); err != nil {
		return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", err)
	}

	// 3. Grow the tree, orienting each incident edge away from the
	//    settled endpoint before relaxing it.
	for !pq.Empty() {
		v, _, errMin := pq.DelMin()
		if errMin != nil {
			return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", errMin)
		}
		adj, errAdj := g.Adj(v)
		if errAdj != nil {
			return nil, fmt.Errorf("shortest.DijkstraUndirected: Adj(%d): %w", v, errAdj)
		}
		for _, e := range adj {
			w, errOther := e.Other(v)
			if errOther != nil {
				return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", errOther)
			}
			// Weight is already validated finite and non-negative.
			oriented := core.DirectedEdge{From: v, To: w, Weight: e.Weight}
			if err = relaxDirected(t, pq, oriented); err != nil {
				return nil, fmt.Errorf("shortest.DijkstraUndirected: %w", err)
			}
		}
	}

	return t, nil
}

// relaxDirected applies one edge relaxation, keeping the heap position of
// the head in sync with its improved distance.
func relaxDirected(t *Tree, pq *ipq.IndexMin, e core.DirectedEdge) error {
	v, w := e.From, e.To
	if t.distTo[v]+e.Weight >= t.distTo[w] {
		return nil
	}

	t.distTo[w] = t.distTo[v] + e.Weight
	t.edgeTo[w] = e
	t.hasEdge[w] = true

	queued, err := pq.Contains(w)
	if err != nil {
		return err
	}
	if queued {
		return pq.DecreaseKey(w, t.distTo[w])
	}

	return pq.Insert(w, t.distTo[w])
}
