// Package dsu provides a dense-index disjoint-set (union-find) structure
// with path halving and union by rank. It backs the union-find-guided
// greedy selection in mst (Kruskal, Boruvka) and the MST verifier.
//
// Complexity: Find/Union/Connected run in near-constant amortized time
// (inverse Ackermann); construction is O(n).
package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("dsu: size must be non-negative")

	// ErrIndexRange indicates an element outside [0, n).
	ErrIndexRange = errors.New("dsu: element out of range")
)

// DSU is a disjoint-set forest over elements [0, n).
type DSU struct {
	parent []int // parent[i] = parent of i in its set tree
	rank   []int // rank[i] = depth upper bound of the tree rooted at i
	count  int   // number of disjoint sets
}

// New creates a DSU with n singleton sets.
// Fails with ErrNegativeSize when n < 0.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("dsu.New(%d): %w", n, ErrNegativeSize)
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// validate checks an element index against [0, n).
func (d *DSU) validate(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", x, len(d.parent), ErrIndexRange)
	}

	return nil
}

// Find returns the representative of x's set, compressing the walked path
// by halving (each visited node points to its grandparent).
func (d *DSU) Find(x int) (int, error) {
	if err := d.validate(x); err != nil {
		return 0, fmt.Errorf("Find: %w", err)
	}
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path halving
		x = d.parent[x]
	}

	return x, nil
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return rx == ry, nil
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank root. Returns true when a merge happened, false
// when x and y were already in the same set.
func (d *DSU) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}
	if rx == ry {
		return false, nil
	}

	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true, nil
}
