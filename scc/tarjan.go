package scc

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// TarjanSCC answers strong-connectivity queries computed by Tarjan's
// low-link algorithm.
type TarjanSCC struct {
	components
}

// Tarjan computes strong components in a single DFS: every vertex gets a
// preorder index and a low-link (the smallest index reachable through
// the DFS subtree plus one back-edge), and a vertex whose low-link equals
// its own index is the root of a component, which is peeled off an
// auxiliary vertex stack.
// Complexity: O(V+E) time, O(V) space.
func Tarjan(d *core.Digraph) (*TarjanSCC, error) {
	// 1. Validate input and prepare the bookkeeping arrays.
	if d == nil {
		return nil, fmt.Errorf("scc.Tarjan: %w", ErrNilGraph)
	}
	n := d.V()
	index := make([]int, n) // preorder number, -1 = unvisited
	low := make([]int, n)   // low-link value
	id := make([]int, n)
	onStack := make([]bool, n)
	for v := 0; v < n; v++ {
		index[v] = -1
	}
	vstack := make([]int, 0, n) // vertices awaiting component assignment
	counter := 0                // next preorder number
	count := 0                  // next component id

	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	// enter starts the DFS bookkeeping for a freshly discovered vertex.
	enter := func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		onStack[v] = true
		vstack = append(vstack, v)
		stack = append(stack, frame{v: v})
	}

	// 2. DFS forest with low-link maintenance.
	for s := 0; s < n; s++ {
		if index[s] != -1 {
			continue
		}
		enter(s)

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := d.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("scc.Tarjan: Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if index[w] == -1 {
					enter(w)
					continue expand
				}
				if onStack[w] && index[w] < low[top.v] {
					low[top.v] = index[w]
				}
			}

			// 3. top.v is finished. A root peels its component off vstack.
			v := top.v
			stack = stack[:len(stack)-1]
			if low[v] == index[v] {
				for {
					x := vstack[len(vstack)-1]
					vstack = vstack[:len(vstack)-1]
					onStack[x] = false
					id[x] = count
					if x == v {
						break
					}
				}
				count++
			}

			// 4. Propagate the low-link into the parent frame.
			if len(stack) > 0 {
				p := &stack[len(stack)-1]
				if low[v] < low[p.v] {
					low[p.v] = low[v]
				}
			}
		}
	}

	return &TarjanSCC{components{id: id, count: count}}, nil
}
