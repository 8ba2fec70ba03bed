package connectivity

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Bipartite two-colors an undirected graph, or records an odd cycle when
// no two-coloring exists. Color fails at query time, not at construction:
// the violation is only discovered when the offending branch completes.
type Bipartite struct {
	bipartite bool
	color     []bool // color[v] = side of v in the two-coloring (valid when bipartite)
	oddCycle  []int  // witness odd cycle, closed (first == last), when not bipartite
}

// NewBipartite colors the graph with an explicit-stack DFS, tracking the
// parent edge of each vertex so an odd cycle can be traced when two
// same-colored vertices meet.
// Complexity: O(V+E) time, O(V) space.
func NewBipartite(g *core.Graph) (*Bipartite, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("NewBipartite: %w", ErrNilGraph)
	}

	// 2. Prepare colors, marks and parent links.
	n := g.V()
	b := &Bipartite{bipartite: true, color: make([]bool, n)}
	marked := make([]bool, n)
	edgeTo := make([]int, n)

	type frame struct {
		v    int // vertex being expanded
		next int // cursor into adj[v]
	}
	stack := make([]frame, 0, n)

	// 3. DFS forest; stop at the first odd cycle.
	for s := 0; s < n && b.bipartite; s++ {
		if marked[s] {
			continue
		}
		marked[s] = true
		stack = append(stack, frame{v: s})

	expand:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := g.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("NewBipartite: Adj(%d): %w", top.v, err)
			}
			for top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if !marked[w] {
					marked[w] = true
					edgeTo[w] = top.v
					b.color[w] = !b.color[top.v]
					stack = append(stack, frame{v: w})
					continue expand
				}
				if b.color[w] == b.color[top.v] {
					// Same color across an edge: the tree paths to w and
					// top.v plus this edge close an odd cycle.
					b.bipartite = false
					b.oddCycle = traceOddCycle(edgeTo, top.v, w)
					stack = stack[:0]
					break expand
				}
			}
			if len(stack) > 0 && top.next >= len(adj) {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if b.bipartite {
		b.oddCycle = nil
	}

	return b, nil
}

// traceOddCycle walks edgeTo from v back to w and closes the walk w…v w.
// w is an ancestor of v in the DFS tree when the violating edge is found.
func traceOddCycle(edgeTo []int, v, w int) []int {
	// Collect v, parent(v), ... down to w.
	seg := []int{v}
	for x := v; x != w; {
		x = edgeTo[x]
		seg = append(seg, x)
	}
	// Close the cycle through the violating edge w—v.
	seg = append(seg, v)

	return seg
}

// IsBipartite reports whether a two-coloring exists.
func (b *Bipartite) IsBipartite() bool { return b.bipartite }

// Color returns v's side of the two-coloring.
// Fails with ErrNotBipartite when the graph has an odd cycle.
func (b *Bipartite) Color(v int) (bool, error) {
	if v < 0 || v >= len(b.color) {
		return false, fmt.Errorf("Color(%d): %w", v, ErrVertexRange)
	}
	if !b.bipartite {
		return false, fmt.Errorf("Color(%d): %w", v, ErrNotBipartite)
	}

	return b.color[v], nil
}

// OddCycle returns a closed odd cycle when the graph is not bipartite,
// nil otherwise. The returned slice is owned by the result.
func (b *Bipartite) OddCycle() []int { return b.oddCycle }
