package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/cycle"
)

// BellmanFord computes the shortest-path tree from s over a digraph that
// may carry negative edge weights. The queue-based variant is used: only
// vertices whose distance changed in the previous round are re-relaxed.
// Every V edge relaxations the current tree edges are probed for a cycle;
// any cycle among them is a negative cycle, recorded as the witness and
// poisoning all subsequent distance queries.
// Complexity: O(V·E) time worst case, O(V) space.
func BellmanFord(g *core.EdgeWeightedDigraph, s int) (*Tree, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("shortest.BellmanFord: %w", ErrNilGraph)
	}
	if err := validateSource(g.V(), s); err != nil {
		return nil, fmt.Errorf("shortest.BellmanFord: %w", err)
	}

	// 2. Seed the tree and the FIFO change queue.
	n := g.V()
	t := newTree(n, s, math.Inf(1))
	onQueue := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, s)
	onQueue[s] = true
	cost := 0 // edge relaxations performed

	// 3. Relax until no distance changes or a negative cycle appears.
	for len(queue) > 0 && !t.HasNegativeCycle() {
		v := queue[0]
		queue = queue[1:]
		onQueue[v] = false

		adj, err := g.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("shortest.BellmanFord: Adj(%d): %w", v, err)
		}
		for _, e := range adj {
			w := e.To
			if t.distTo[v]+e.Weight < t.distTo[w] {
				t.distTo[w] = t.distTo[v] + e.Weight
				t.edgeTo[w] = e
				t.hasEdge[w] = true
				if !onQueue[w] {
					queue = append(queue, w)
					onQueue[w] = true
				}
			}

			// 4. Periodic probe: a cycle among current tree edges can
			//    only arise from a negative cycle.
			cost++
			if cost%n == 0 {
				if err = findNegativeCycle(t); err != nil {
					return nil, fmt.Errorf("shortest.BellmanFord: %w", err)
				}
				if t.HasNegativeCycle() {
					break
				}
			}
		}
	}

	return t, nil
}

// findNegativeCycle builds the unweighted shadow of the current tree
// edges and records any directed cycle found there as the witness.
func findNegativeCycle(t *Tree) error {
	n := len(t.distTo)
	shadow, err := core.NewDigraph(n)
	if err != nil {
		return err
	}
	for v := 0; v < n; v++ {
		if t.hasEdge[v] {
			_ = shadow.AddEdge(t.edgeTo[v].From, v) // endpoints known valid
		}
	}

	w, err := cycle.Directed(shadow)
	if err != nil {
		return err
	}
	if !w.HasCycle() {
		return nil
	}

	// The witness is a closed vertex walk in edge direction; each step
	// into walk[i] corresponds to the tree edge entering walk[i].
	walk := w.Cycle()
	cyc := make([]core.DirectedEdge, 0, len(walk)-1)
	for i := 1; i < len(walk); i++ {
		cyc = append(cyc, t.edgeTo[walk[i]])
	}
	t.negCycle = cyc

	return nil
}
