package cycle

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Directed detects a directed cycle via DFS with an onStack marker: an
// edge into a vertex still on the traversal stack is a back-edge, and the
// cycle is traced through the edgeTo array.
// Complexity: O(V+E) time, O(V) space.
func Directed(d *core.Digraph) (*Witness, error) {
	// 1. Validate input.
	if d == nil {
		return nil, fmt.Errorf("cycle.Directed: %w", ErrNilGraph)
	}

	// 2. Prepare marks, the recursion-stack membership flags and parents.
	n := d.V()
	marked := make([]bool, n)
	onStack := make([]bool, n)
	edgeTo := make([]int, n)

	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	// 3. DFS forest; stop at the first back-edge.
	for s := 0; s < n; s++ {
		if marked[s] {
			continue
		}
		marked[s] = true
		onStack[s] = true
		stack = append(stack, frame{v: s})

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := d.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("cycle.Directed: Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !marked[w] {
					marked[w] = true
					onStack[w] = true
					edgeTo[w] = top.v
					stack = append(stack, frame{v: w})
					continue expand
				}
				if onStack[w] {
					// Back-edge top.v→w: the tree path w→…→top.v plus
					// this edge is a directed cycle. Collect tail-first
					// through edgeTo, then reverse into edge order.
					rev := make([]int, 0, n)
					for x := top.v; x != w; x = edgeTo[x] {
						rev = append(rev, x)
					}
					rev = append(rev, w)
					for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
						rev[i], rev[j] = rev[j], rev[i]
					}
					rev = append(rev, w) // close the walk

					return &Witness{cycle: rev}, nil
				}
			}
			onStack[top.v] = false
			stack = stack[:len(stack)-1]
		}
	}

	return &Witness{}, nil
}
