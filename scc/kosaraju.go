package scc

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// KosarajuSharirSCC answers strong-connectivity queries computed by the
// Kosaraju-Sharir two-pass algorithm.
type KosarajuSharirSCC struct {
	components
}

// KosarajuSharir computes strong components in two passes: first the
// reverse postorder of the reverse digraph, then a plain DFS over the
// original digraph taking sources from that order — each DFS tree of the
// second pass is exactly one strong component.
// Complexity: O(V+E) time, O(V) space.
func KosarajuSharir(d *core.Digraph) (*KosarajuSharirSCC, error) {
	// 1. Validate input.
	if d == nil {
		return nil, fmt.Errorf("scc.KosarajuSharir: %w", ErrNilGraph)
	}
	n := d.V()

	// 2. Pass one: reverse postorder of the reverse digraph.
	order, err := reversePostorder(d.Reverse())
	if err != nil {
		return nil, fmt.Errorf("scc.KosarajuSharir: %w", err)
	}

	// 3. Pass two: DFS the original digraph in that order, labeling every
	//    tree with the next component id.
	id := make([]int, n)
	marked := make([]bool, n)
	count := 0

	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	for _, s := range order {
		if marked[s] {
			continue
		}
		marked[s] = true
		id[s] = count
		stack = append(stack, frame{v: s})

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, errAdj := d.Adj(top.v)
			if errAdj != nil {
				return nil, fmt.Errorf("scc.KosarajuSharir: Adj(%d): %w", top.v, errAdj)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !marked[w] {
					marked[w] = true
					id[w] = count
					stack = append(stack, frame{v: w})
					continue expand
				}
			}
			stack = stack[:len(stack)-1]
		}
		count++
	}

	return &KosarajuSharirSCC{components{id: id, count: count}}, nil
}

// reversePostorder runs a DFS forest over d and returns the vertices in
// reverse order of completion.
func reversePostorder(d *core.Digraph) ([]int, error) {
	n := d.V()
	marked := make([]bool, n)
	post := make([]int, 0, n)

	type frame struct {
		v    int
		next int
	}
	stack := make([]frame, 0, n)

	for s := 0; s < n; s++ {
		if marked[s] {
			continue
		}
		marked[s] = true
		stack = append(stack, frame{v: s})

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := d.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !marked[w] {
					marked[w] = true
					stack = append(stack, frame{v: w})
					continue expand
				}
			}
			post = append(post, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse in place.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}
