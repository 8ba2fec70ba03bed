package cycle

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Undirected detects a cycle in an undirected graph.
// Self-loops and parallel edges are degenerate cycles and are reported
// before the general DFS runs.
// Complexity: O(V+E) time, O(V) space.
func Undirected(g *core.Graph) (*Witness, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("cycle.Undirected: %w", ErrNilGraph)
	}

	// 2. Degenerate cases first; both scans are skipped on simple graphs.
	if !g.Simple() {
		if w, err := findSelfLoop(g); err != nil {
			return nil, err
		} else if w != nil {
			return w, nil
		}
		if w, err := findParallel(g); err != nil {
			return nil, err
		} else if w != nil {
			return w, nil
		}
	}

	// 3. General case: DFS tracking the parent of each tree vertex.
	//    A back-edge to a marked vertex other than the parent closes a
	//    cycle, traced through edgeTo.
	n := g.V()
	marked := make([]bool, n)
	edgeTo := make([]int, n)

	type frame struct {
		v      int // vertex being expanded
		parent int // DFS tree parent of v (-1 at roots)
		next   int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	for s := 0; s < n; s++ {
		if marked[s] {
			continue
		}
		marked[s] = true
		stack = append(stack, frame{v: s, parent: -1})

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := g.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("cycle.Undirected: Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !marked[w] {
					marked[w] = true
					edgeTo[w] = top.v
					stack = append(stack, frame{v: w, parent: top.v})
					continue expand
				}
				if w != top.parent {
					// Back-edge top.v—w: walk tree parents from top.v
					// down to the ancestor w, then close through w.
					cyc := []int{w}
					for x := top.v; x != w; x = edgeTo[x] {
						cyc = append(cyc, x)
					}
					cyc = append(cyc, w)

					return &Witness{cycle: cyc}, nil
				}
			}
			stack = stack[:len(stack)-1]
		}
	}

	return &Witness{}, nil
}

// findSelfLoop scans adjacency lists for a vertex adjacent to itself and
// reports the degenerate cycle [v, v].
func findSelfLoop(g *core.Graph) (*Witness, error) {
	for v := 0; v < g.V(); v++ {
		adj, err := g.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("cycle.Undirected: Adj(%d): %w", v, err)
		}
		for _, w := range adj {
			if w == v {
				return &Witness{cycle: []int{v, v}}, nil
			}
		}
	}

	return nil, nil
}

// findParallel scans each adjacency list for a repeated neighbor and
// reports the degenerate cycle [v, w, v].
func findParallel(g *core.Graph) (*Witness, error) {
	seen := make(map[int]bool)
	for v := 0; v < g.V(); v++ {
		adj, err := g.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("cycle.Undirected: Adj(%d): %w", v, err)
		}
		clear(seen)
		for _, w := range adj {
			if w == v {
				continue // self-loops handled separately
			}
			if seen[w] {
				return &Witness{cycle: []int{v, w, v}}, nil
			}
			seen[w] = true
		}
	}

	return nil, nil
}
