package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/dsu"
)

// weightTolerance absorbs float64 accumulation error when comparing the
// reported forest weight against the recomputed edge sum.
const weightTolerance = 1e-9

// Verify checks a candidate spanning forest against its graph:
//
//  1. the reported weight equals the sum of the forest's edges,
//  2. the forest is acyclic,
//  3. it spans every connected component of g,
//  4. every tree edge is a minimum-weight edge crossing the cut obtained
//     by removing it (cut optimality, checked in O(E·V) overall).
//
// A nil error means the candidate is a minimum spanning forest of g.
func Verify(g *core.EdgeWeightedGraph, f Forest) error {
	// 1. Validate inputs and the weight sum.
	if g == nil {
		return fmt.Errorf("mst.Verify: %w", ErrNilGraph)
	}
	if f == nil {
		return fmt.Errorf("mst.Verify: %w", ErrNilForest)
	}
	sum := 0.0
	for _, e := range f.Edges() {
		sum += e.Weight
	}
	if math.Abs(sum-f.Weight()) > weightTolerance {
		return fmt.Errorf("mst.Verify: reported %v, edges sum to %v: %w",
			f.Weight(), sum, ErrWeightMismatch)
	}

	// 2. Acyclic: every forest edge must merge two components.
	n := g.V()
	uf, err := dsu.New(n)
	if err != nil {
		return fmt.Errorf("mst.Verify: %w", err)
	}
	for _, e := range f.Edges() {
		merged, errU := uf.Union(e.V, e.W)
		if errU != nil {
			return fmt.Errorf("mst.Verify: %w", errU)
		}
		if !merged {
			return fmt.Errorf("mst.Verify: edge %s closes a cycle: %w", e, ErrNotForest)
		}
	}

	// 3. Spanning: no graph edge may still cross between forest components.
	for _, e := range g.Edges() {
		same, errC := uf.Connected(e.V, e.W)
		if errC != nil {
			return fmt.Errorf("mst.Verify: %w", errC)
		}
		if !same {
			return fmt.Errorf("mst.Verify: edge %s crosses unspanned components: %w",
				e, ErrNotSpanning)
		}
	}

	// 4. Cut optimality: rebuild the forest without each tree edge in
	//    turn; every graph edge crossing the resulting cut must weigh at
	//    least as much as the removed edge.
	for i, removed := range f.Edges() {
		cut, errNew := dsu.New(n)
		if errNew != nil {
			return fmt.Errorf("mst.Verify: %w", errNew)
		}
		for j, e := range f.Edges() {
			if j == i {
				continue
			}
			if _, errU := cut.Union(e.V, e.W); errU != nil {
				return fmt.Errorf("mst.Verify: %w", errU)
			}
		}
		for _, e := range g.Edges() {
			sameSide, errC := cut.Connected(e.V, e.W)
			if errC != nil {
				return fmt.Errorf("mst.Verify: %w", errC)
			}
			if !sameSide && e.Weight < removed.Weight-weightTolerance {
				return fmt.Errorf("mst.Verify: edge %s beats tree edge %s across its cut: %w",
					e, removed, ErrNotMinimal)
			}
		}
	}

	return nil
}
