package connectivity

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
)

// Components is the connected-components labeling of an undirected graph.
// Each vertex's id is the first-visited vertex of its component, so ids
// are themselves vertices and components are discovered in index order.
type Components struct {
	id    []int // id[v] = representative (first-visited vertex) of v's component
	size  []int // size[r] = number of vertices labeled r (indexed by representative)
	count int   // number of components
}

// NewComponents runs one explicit-stack DFS per undiscovered vertex and
// labels every vertex with its component representative.
// Complexity: O(V+E) time, O(V) space.
func NewComponents(g *core.Graph) (*Components, error) {
	// 1. Validate input.
	if g == nil {
		return nil, fmt.Errorf("NewComponents: %w", ErrNilGraph)
	}

	// 2. Prepare labels: -1 marks "not yet visited".
	n := g.V()
	c := &Components{
		id:   make([]int, n),
		size: make([]int, n),
	}
	for v := range c.id {
		c.id[v] = -1
	}

	// 3. One DFS per component; the root becomes the component id.
	stack := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if c.id[s] != -1 {
			continue
		}
		c.count++
		c.id[s] = s
		c.size[s]++
		stack = append(stack, s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			adj, err := g.Adj(v)
			if err != nil {
				return nil, fmt.Errorf("NewComponents: Adj(%d): %w", v, err)
			}
			for _, w := range adj {
				if c.id[w] == -1 {
					c.id[w] = s
					c.size[s]++
					stack = append(stack, w)
				}
			}
		}
	}

	return c, nil
}

// Count returns the number of connected components.
func (c *Components) Count() int { return c.count }

// ID returns the component representative of v.
func (c *Components) ID(v int) (int, error) {
	if v < 0 || v >= len(c.id) {
		return 0, fmt.Errorf("ID(%d): %w", v, ErrVertexRange)
	}

	return c.id[v], nil
}

// Size returns the number of vertices in v's component.
func (c *Components) Size(v int) (int, error) {
	if v < 0 || v >= len(c.id) {
		return 0, fmt.Errorf("Size(%d): %w", v, ErrVertexRange)
	}

	return c.size[c.id[v]], nil
}

// Connected reports whether v and w share a component — an O(1) id compare.
func (c *Components) Connected(v, w int) (bool, error) {
	iv, err := c.ID(v)
	if err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	iw, err := c.ID(w)
	if err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return iv == iw, nil
}
