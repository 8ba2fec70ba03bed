package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
)

// AllPairs holds the Floyd-Warshall distance and predecessor matrices.
// Built once, then queried read-only.
type AllPairs struct {
	n       int
	distTo  [][]float64           // distTo[v][w] = best known distance v → w
	edgeTo  [][]core.DirectedEdge // last edge on the best v → w path
	hasEdge [][]bool              // hasEdge[v][w] = edgeTo[v][w] is valid
	hasNeg  bool                  // a negative cycle poisons all queries
}

// FloydWarshall computes all-pairs shortest paths on a dense-matrix
// digraph with arbitrary edge weights. Relaxation runs k → i → j; a row i
// with no path to the pivot k is skipped whole. A negative value on the
// distance diagonal means a negative cycle: the computation stops and all
// queries answer ErrNegativeCycle.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *core.AdjMatrixEdgeWeightedDigraph) (*AllPairs, error) {
	// 1. Validate input and allocate the matrices at +Inf.
	if g == nil {
		return nil, fmt.Errorf("shortest.FloydWarshall: %w", ErrNilGraph)
	}
	n := g.V()
	ap := &AllPairs{
		n:       n,
		distTo:  make([][]float64, n),
		edgeTo:  make([][]core.DirectedEdge, n),
		hasEdge: make([][]bool, n),
	}
	for v := 0; v < n; v++ {
		ap.distTo[v] = make([]float64, n)
		ap.edgeTo[v] = make([]core.DirectedEdge, n)
		ap.hasEdge[v] = make([]bool, n)
		for w := 0; w < n; w++ {
			ap.distTo[v][w] = math.Inf(1)
		}
	}

	// 2. Copy edges in, then floor each diagonal entry at 0: the empty
	//    path beats any non-negative self-loop.
	for v := 0; v < n; v++ {
		adj, err := g.Adj(v)
		if err != nil {
			return nil, fmt.Errorf("shortest.FloydWarshall: Adj(%d): %w", v, err)
		}
		for _, e := range adj {
			ap.distTo[v][e.To] = e.Weight
			ap.edgeTo[v][e.To] = e
			ap.hasEdge[v][e.To] = true
		}
		if ap.distTo[v][v] >= 0 {
			ap.distTo[v][v] = 0
			ap.hasEdge[v][v] = false
		}
	}

	// 3. Relax through every pivot k.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(ap.distTo[i][k], 1) {
				continue // nothing routes through k from i
			}
			for j := 0; j < n; j++ {
				if ap.distTo[i][k]+ap.distTo[k][j] < ap.distTo[i][j] {
					ap.distTo[i][j] = ap.distTo[i][k] + ap.distTo[k][j]
					ap.edgeTo[i][j] = ap.edgeTo[k][j]
					ap.hasEdge[i][j] = true
				}
			}
			if ap.distTo[i][i] < 0 {
				ap.hasNeg = true

				return ap, nil
			}
		}
	}

	return ap, nil
}

// HasNegativeCycle reports whether a negative cycle was found.
func (ap *AllPairs) HasNegativeCycle() bool { return ap.hasNeg }

// validate checks a query pair and refuses queries on a poisoned result.
func (ap *AllPairs) validate(v, w int) error {
	if v < 0 || v >= ap.n || w < 0 || w >= ap.n {
		return fmt.Errorf("pair (%d,%d) not in [0,%d)²: %w", v, w, ap.n, ErrVertexRange)
	}
	if ap.hasNeg {
		return ErrNegativeCycle
	}

	return nil
}

// Dist returns the shortest distance v → w, +Inf when unreachable.
func (ap *AllPairs) Dist(v, w int) (float64, error) {
	if err := ap.validate(v, w); err != nil {
		return 0, fmt.Errorf("Dist: %w", err)
	}

	return ap.distTo[v][w], nil
}

// HasPath reports whether any directed path v → w exists.
func (ap *AllPairs) HasPath(v, w int) (bool, error) {
	if err := ap.validate(v, w); err != nil {
		return false, fmt.Errorf("HasPath: %w", err)
	}

	return !math.IsInf(ap.distTo[v][w], 1), nil
}

// Path returns the shortest path v → w as a sequence of edges, or nil
// when w is unreachable from v.
func (ap *AllPairs) Path(v, w int) ([]core.DirectedEdge, error) {
	if err := ap.validate(v, w); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	if math.IsInf(ap.distTo[v][w], 1) {
		return nil, nil
	}

	// Walk predecessor edges back to v, then reverse into path order.
	path := make([]core.DirectedEdge, 0)
	for x := w; ap.hasEdge[v][x]; x = ap.edgeTo[v][x].From {
		path = append(path, ap.edgeTo[v][x])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
