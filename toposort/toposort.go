// Package toposort produces a topological order of a directed acyclic
// graph, or reports that none exists.
//
// Two independent constructions are provided and must agree on validity:
//
//   - DFS: reverse postorder of an explicit-stack depth-first search,
//     guarded by directed-cycle detection.
//   - Kahn: the emission order of indegree-0 peeling.
//
// Both expose Order, HasOrder and Rank; Rank(v) is -1 for every vertex
// when the digraph is cyclic. For every edge v→w of a DAG,
// Rank(v) < Rank(w).
//
// Complexity: O(V+E) time, O(V) space.
package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/cycle"
)

// Sentinel errors for topological ordering.
var (
	// ErrNilGraph is returned when a nil digraph is supplied.
	ErrNilGraph = errors.New("toposort: digraph is nil")

	// ErrVertexRange is returned for a query vertex outside [0, V).
	ErrVertexRange = errors.New("toposort: vertex out of range")
)

// Order is a computed topological order (possibly absent).
type Order struct {
	order []int // vertices in topological order, nil when cyclic
	rank  []int // rank[v] = position of v in order, -1 when cyclic
}

// HasOrder reports whether the digraph admits a topological order.
func (o *Order) HasOrder() bool { return o.order != nil }

// Order returns the vertices in topological order, nil when none exists.
// The returned slice is owned by the result and must not be mutated.
func (o *Order) Order() []int { return o.order }

// Rank returns the position of v in the order, or -1 when no order exists.
func (o *Order) Rank(v int) (int, error) {
	if v < 0 || v >= len(o.rank) {
		return 0, fmt.Errorf("Rank(%d): %w", v, ErrVertexRange)
	}

	return o.rank[v], nil
}

// DFS computes a topological order as the reverse postorder of a
// depth-first search, after verifying acyclicity with cycle.Directed.
func DFS(d *core.Digraph) (*Order, error) {
	// 1. Validate and check the acyclicity precondition.
	if d == nil {
		return nil, fmt.Errorf("toposort.DFS: %w", ErrNilGraph)
	}
	w, err := cycle.Directed(d)
	if err != nil {
		return nil, fmt.Errorf("toposort.DFS: %w", err)
	}
	n := d.V()
	if w.HasCycle() {
		return noOrder(n), nil
	}

	// 2. Explicit-stack DFS collecting postorder: a vertex is emitted
	//    only after all of its descendants have been emitted.
	marked := make([]bool, n)
	post := make([]int, 0, n)
	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
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
			adj, errAdj := d.Adj(top.v)
			if errAdj != nil {
				return nil, fmt.Errorf("toposort.DFS: Adj(%d): %w", top.v, errAdj)
			}
			for top.next < len(adj) {
				u := adj[top.next]
				top.next++
				if !marked[u] {
					marked[u] = true
					stack = append(stack, frame{v: u})
					continue expand
				}
			}
			post = append(post, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// 3. Reverse postorder is the topological order.
	order := make([]int, n)
	for i, v := range post {
		order[n-1-i] = v
	}

	return withOrder(order), nil
}

// Kahn computes a topological order by indegree-0 peeling; the emission
// order is the topological order. No separate cycle check is needed —
// an incomplete peel is the cycle witness.
func Kahn(d *core.Digraph) (*Order, error) {
	// 1. Validate input.
	if d == nil {
		return nil, fmt.Errorf("toposort.Kahn: %w", ErrNilGraph)
	}

	// 2. Copy indegrees and seed the queue with roots.
	n := d.V()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		in, err := d.Indegree(v)
		if err != nil {
			return nil, fmt.Errorf("toposort.Kahn: %w", err)
		}
		indeg[v] = in
	}
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 3. Peel and emit.
	order := make([]int, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		adj, err := d.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("toposort.Kahn: Adj(%d): %w", v, err)
		}
		for _, u := range adj {
			indeg[u]--
			if indeg[u] == 0 {
				queue = append(queue, u)
			}
		}
	}

	// 4. An incomplete emission means a cycle blocked some vertices.
	if len(order) != n {
		return noOrder(n), nil
	}

	return withOrder(order), nil
}

// withOrder builds the result and its rank index.
func withOrder(order []int) *Order {
	rank := make([]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	return &Order{order: order, rank: rank}
}

// noOrder builds the "cyclic digraph" result: nil order, all ranks -1.
func noOrder(n int) *Order {
	rank := make([]int, n)
	for v := range rank {
		rank[v] = -1
	}

	return &Order{rank: rank}
}
