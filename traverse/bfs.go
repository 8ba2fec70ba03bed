package traverse

import "fmt"

// Paths is the result of a breadth-first traversal: per-vertex edge-count
// distances and a predecessor array for shortest unweighted paths.
type Paths struct {
	marked []bool // marked[v] = reachable from some source
	edgeTo []int  // edgeTo[v] = predecessor of v on a shortest path
	distTo []int  // distTo[v] = #edges on a shortest path, -1 if unreachable
}

// HasPathTo reports whether v is reachable from any source.
func (p *Paths) HasPathTo(v int) (bool, error) {
	if v < 0 || v >= len(p.marked) {
		return false, fmt.Errorf("HasPathTo(%d): %w", v, ErrVertexRange)
	}

	return p.marked[v], nil
}

// DistTo returns the fewest number of edges from a source to v,
// or -1 when v is unreachable.
func (p *Paths) DistTo(v int) (int, error) {
	if v < 0 || v >= len(p.marked) {
		return 0, fmt.Errorf("DistTo(%d): %w", v, ErrVertexRange)
	}

	return p.distTo[v], nil
}

// PathTo reconstructs a shortest path from the nearest source to v by
// walking edgeTo back to a vertex at distance 0. Returns nil when v is
// unreachable.
func (p *Paths) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(p.marked) {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrVertexRange)
	}
	if !p.marked[v] {
		return nil, nil
	}

	// Walk predecessors, then reverse into source→v order.
	rev := make([]int, 0, p.distTo[v]+1)
	for x := v; p.distTo[x] != 0; x = p.edgeTo[x] {
		rev = append(rev, x)
	}
	rev = append(rev, p.sourceOf(v))
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// sourceOf walks edgeTo from v to the distance-0 vertex of its tree.
func (p *Paths) sourceOf(v int) int {
	x := v
	for p.distTo[x] != 0 {
		x = p.edgeTo[x]
	}

	return x
}

// BFS runs level-order expansion from one or more sources over an
// unweighted graph or digraph, producing shortest edge-count paths.
// Complexity: O(V+E) time, O(V) space.
func BFS(g Unweighted, sources ...int) (*Paths, error) {
	// 1. Validate graph and sources.
	if err := validateSources(g, sources); err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}

	// 2. Initialize distances to "unreachable" and seed the queue with
	//    every source at distance 0.
	n := g.V()
	p := &Paths{
		marked: make([]bool, n),
		edgeTo: make([]int, n),
		distTo: make([]int, n),
	}
	for v := range p.distTo {
		p.distTo[v] = -1
	}
	queue := make([]int, 0, n)
	for _, s := range sources {
		if !p.marked[s] {
			p.marked[s] = true
			p.distTo[s] = 0
			queue = append(queue, s)
		}
	}

	// 3. Standard FIFO expansion: the first time a vertex is seen is via
	//    a fewest-edges path.
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		adj, err := g.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("BFS: Adj(%d): %w", v, err)
		}
		for _, w := range adj {
			if !p.marked[w] {
				p.marked[w] = true
				p.edgeTo[w] = v
				p.distTo[w] = p.distTo[v] + 1
				queue = append(queue, w)
			}
		}
	}

	return p, nil
}
