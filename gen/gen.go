// Package gen produces random graphs for tests, benchmarks and the CLI.
//
// Every generator takes an explicit *rand.Rand so callers control
// determinism: the same source state always yields the same graph. The
// exact-count generators (Simple, SimpleDigraph, EdgeWeighted,
// EdgeWeightedDigraph) draw endpoint pairs until the requested number of
// distinct edges is reached, deduplicating through an ordered set, and
// never emit self-loops or parallel edges. SimpleP instead includes each
// possible edge independently with probability p.
//
// Weights are uniform in [0, 1).
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/lvldense/core"
)

// Sentinel errors for graph generation.
var (
	// ErrNilRand is returned when a nil random source is supplied.
	ErrNilRand = errors.New("gen: rand source is nil")

	// ErrTooManyEdges is returned when the requested edge count exceeds
	// what a simple graph on v vertices can hold.
	ErrTooManyEdges = errors.New("gen: edge count exceeds simple graph capacity")

	// ErrBadProbability is returned for an edge probability outside [0, 1].
	ErrBadProbability = errors.New("gen: probability outside [0,1]")
)

// validate checks the shared generator arguments. maxE is the simple
// capacity for the requested orientation.
func validate(rng *rand.Rand, v, e, maxE int) error {
	if rng == nil {
		return ErrNilRand
	}
	if v < 0 {
		return fmt.Errorf("v=%d: %w", v, core.ErrNegativeVertexCount)
	}
	if e < 0 {
		return fmt.Errorf("e=%d: %w", e, core.ErrNegativeEdgeCount)
	}
	if e > maxE {
		return fmt.Errorf("e=%d > %d: %w", e, maxE, ErrTooManyEdges)
	}

	return nil
}

// drawPairs yields e distinct ordered or unordered endpoint pairs.
// Unordered pairs are normalized low-high before deduplication, so the
// undirected generators never produce parallel edges in either direction.
func drawPairs(rng *rand.Rand, v, e int, ordered bool) [][2]int {
	seen := treeset.NewWithIntComparator()
	pairs := make([][2]int, 0, e)
	for len(pairs) < e {
		a, b := rng.Intn(v), rng.Intn(v)
		if a == b {
			continue
		}
		if !ordered && a > b {
			a, b = b, a
		}
		key := a*v + b
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		pairs = append(pairs, [2]int{a, b})
	}

	return pairs
}

// Simple generates a uniformly random simple undirected graph with
// exactly v vertices and e edges.
func Simple(rng *rand.Rand, v, e int) (*core.Graph, error) {
	if err := validate(rng, v, e, v*(v-1)/2); err != nil {
		return nil, fmt.Errorf("gen.Simple: %w", err)
	}
	g, err := core.NewGraph(v)
	if err != nil {
		return nil, fmt.Errorf("gen.Simple: %w", err)
	}
	for _, p := range drawPairs(rng, v, e, false) {
		if err = g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("gen.Simple: %w", err)
		}
	}

	return g, nil
}

// SimpleP generates a simple undirected graph on v vertices where each of
// the v·(v-1)/2 possible edges is present independently with probability p.
func SimpleP(rng *rand.Rand, v int, p float64) (*core.Graph, error) {
	if err := validate(rng, v, 0, 0); err != nil {
		return nil, fmt.Errorf("gen.SimpleP: %w", err)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("gen.SimpleP: p=%v: %w", p, ErrBadProbability)
	}
	g, err := core.NewGraph(v)
	if err != nil {
		return nil, fmt.Errorf("gen.SimpleP: %w", err)
	}
	for a := 0; a < v; a++ {
		for b := a + 1; b < v; b++ {
			if rng.Float64() < p {
				if err = g.AddEdge(a, b); err != nil {
					return nil, fmt.Errorf("gen.SimpleP: %w", err)
				}
			}
		}
	}

	return g, nil
}

// SimpleDigraph generates a uniformly random simple digraph with exactly
// v vertices and e edges.
func SimpleDigraph(rng *rand.Rand, v, e int) (*core.Digraph, error) {
	if err := validate(rng, v, e, v*(v-1)); err != nil {
		return nil, fmt.Errorf("gen.SimpleDigraph: %w", err)
	}
	g, err := core.NewDigraph(v)
	if err != nil {
		return nil, fmt.Errorf("gen.SimpleDigraph: %w", err)
	}
	for _, p := range drawPairs(rng, v, e, true) {
		if err = g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("gen.SimpleDigraph: %w", err)
		}
	}

	return g, nil
}

// EdgeWeighted generates a random simple weighted undirected graph with
// exactly v vertices and e edges, weights uniform in [0, 1).
func EdgeWeighted(rng *rand.Rand, v, e int) (*core.EdgeWeightedGraph, error) {
	if err := validate(rng, v, e, v*(v-1)/2); err != nil {
		return nil, fmt.Errorf("gen.EdgeWeighted: %w", err)
	}
	g, err := core.NewEdgeWeightedGraph(v)
	if err != nil {
		return nil, fmt.Errorf("gen.EdgeWeighted: %w", err)
	}
	for _, p := range drawPairs(rng, v, e, false) {
		edge, errE := core.NewEdge(p[0], p[1], rng.Float64())
		if errE != nil {
			return nil, fmt.Errorf("gen.EdgeWeighted: %w", errE)
		}
		if err = g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("gen.EdgeWeighted: %w", err)
		}
	}

	return g, nil
}

// EdgeWeightedDigraph generates a random simple weighted digraph with
// exactly v vertices and e edges, weights uniform in [0, 1).
func EdgeWeightedDigraph(rng *rand.Rand, v, e int) (*core.EdgeWeightedDigraph, error) {
	if err := validate(rng, v, e, v*(v-1)); err != nil {
		return nil, fmt.Errorf("gen.EdgeWeightedDigraph: %w", err)
	}
	g, err := core.NewEdgeWeightedDigraph(v)
	if err != nil {
		return nil, fmt.Errorf("gen.EdgeWeightedDigraph: %w", err)
	}
	for _, p := range drawPairs(rng, v, e, true) {
		edge, errE := core.NewDirectedEdge(p[0], p[1], rng.Float64())
		if errE != nil {
			return nil, fmt.Errorf("gen.EdgeWeightedDigraph: %w", errE)
		}
		if err = g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("gen.EdgeWeightedDigraph: %w", err)
		}
	}

	return g, nil
}
