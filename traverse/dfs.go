package traverse

import "fmt"

// Marks records which vertices a traversal reached.
type Marks struct {
	marked []bool // marked[v] = reached from some source
	count  int    // number of reached vertices
	order  []int  // vertices in the order they were first reached
}

// Marked reports whether v was reached.
func (m *Marks) Marked(v int) (bool, error) {
	if v < 0 || v >= len(m.marked) {
		return false, fmt.Errorf("Marked(%d): %w", v, ErrVertexRange)
	}

	return m.marked[v], nil
}

// Count returns the number of reached vertices.
func (m *Marks) Count() int { return m.count }

// Order returns the vertices in first-visit order.
// The returned slice is owned by the result and must not be mutated.
func (m *Marks) Order() []int { return m.order }

// DFS marks every vertex reachable from the given sources using an
// explicit-stack depth-first search. Works on core.Graph (undirected
// reachability) and core.Digraph (directed reachability).
// Complexity: O(V+E) time, O(V) space.
func DFS(g Unweighted, sources ...int) (*Marks, error) {
	// 1. Validate graph and sources.
	if err := validateSources(g, sources); err != nil {
		return nil, fmt.Errorf("DFS: %w", err)
	}

	// 2. Prepare marks and the explicit stack of (vertex, neighbor cursor)
	//    frames. Cursors let the loop resume a vertex's adjacency scan
	//    exactly where recursion would have.
	n := g.V()
	res := &Marks{marked: make([]bool, n), order: make([]int, 0, n)}
	type frame struct {
		v    int // vertex being expanded
		next int // index of the next neighbor to inspect
	}
	stack := make([]frame, 0, n)

	// 3. Run one bounded DFS per source.
	for _, s := range sources {
		if res.marked[s] {
			continue
		}
		res.visit(s)
		stack = append(stack, frame{v: s})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := g.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("DFS: Adj(%d): %w", top.v, err)
			}
			// Advance the cursor to the first unmarked neighbor.
			advanced := false
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !res.marked[w] {
					res.visit(w)
					stack = append(stack, frame{v: w})
					advanced = true
					break
				}
			}
			if !advanced {
				stack = stack[:len(stack)-1] // vertex fully expanded
			}
		}
	}

	return res, nil
}

// DFSRecursive is the classical recursive formulation of DFS.
// Recursion depth equals the longest explored path; prefer DFS for inputs
// of unknown shape.
func DFSRecursive(g Unweighted, sources ...int) (*Marks, error) {
	if err := validateSources(g, sources); err != nil {
		return nil, fmt.Errorf("DFSRecursive: %w", err)
	}

	res := &Marks{marked: make([]bool, g.V()), order: make([]int, 0, g.V())}
	for _, s := range sources {
		if !res.marked[s] {
			if err := dfsVisit(g, s, res); err != nil {
				return nil, fmt.Errorf("DFSRecursive: %w", err)
			}
		}
	}

	return res, nil
}

// dfsVisit recursively expands v.
func dfsVisit(g Unweighted, v int, res *Marks) error {
	res.visit(v)
	adj, err := g.Adj(v)
	if err != nil {
		return fmt.Errorf("Adj(%d): %w", v, err)
	}
	for _, w := range adj {
		if !res.marked[w] {
			if err = dfsVisit(g, w, res); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit marks v and records its discovery.
func (m *Marks) visit(v int) {
	m.marked[v] = true
	m.count++
	m.order = append(m.order, v)
}
