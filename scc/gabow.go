package scc

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// GabowSCC answers strong-connectivity queries computed by Gabow's
// path-based algorithm.
type GabowSCC struct {
	components
}

// Gabow computes strong components with two vertex stacks instead of
// low-link values: one stack of all vertices not yet assigned to a
// component, and one "path" stack that is contracted on every back-edge
// into an unassigned vertex. A vertex still on top of the path stack when
// it finishes is a component root.
// Complexity: O(V+E) time, O(V) space.
func Gabow(d *core.Digraph) (*GabowSCC, error) {
	// 1. Validate input and prepare the bookkeeping arrays.
	if d == nil {
		return nil, fmt.Errorf("scc.Gabow: %w", ErrNilGraph)
	}
	n := d.V()
	pre := make([]int, n) // preorder number, -1 = unvisited
	id := make([]int, n)  // component id, -1 = unassigned
	for v := 0; v < n; v++ {
		pre[v] = -1
		id[v] = -1
	}
	all := make([]int, 0, n)  // every visited, unassigned vertex
	path := make([]int, 0, n) // the contracted current path
	counter := 0
	count := 0

	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	enter := func(v int) {
		pre[v] = counter
		counter++
		all = append(all, v)
		path = append(path, v)
		stack = append(stack, frame{v: v})
	}

	// 2. DFS forest with path contraction.
	for s := 0; s < n; s++ {
		if pre[s] != -1 {
			continue
		}
		enter(s)

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := d.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("scc.Gabow: Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if pre[w] == -1 {
					enter(w)
					continue expand
				}
				if id[w] == -1 {
					// Back-edge into the current path: contract it down
					// to the first vertex discovered no later than w.
					for pre[path[len(path)-1]] > pre[w] {
						path = path[:len(path)-1]
					}
				}
			}

			// 3. top.v finished: if it survived contraction it is a root,
			//    and everything above it on `all` is its component.
			v := top.v
			stack = stack[:len(stack)-1]
			if path[len(path)-1] == v {
				path = path[:len(path)-1]
				for {
					x := all[len(all)-1]
					all = all[:len(all)-1]
					id[x] = count
					if x == v {
						break
					}
				}
				count++
			}
		}
	}

	return &GabowSCC{components{id: id, count: count}}, nil
}
