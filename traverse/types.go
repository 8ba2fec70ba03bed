package traverse

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal construction and queries.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNoSources is returned when no source vertices are supplied.
	ErrNoSources = errors.New("traverse: at least one source vertex required")

	// ErrVertexRange is returned for a source or query vertex outside [0, V).
	ErrVertexRange = errors.New("traverse: vertex out of range")
)

// Unweighted is the adjacency contract shared by core.Graph and
// core.Digraph: a fixed vertex count and insertion-ordered neighbor lists.
type Unweighted interface {
	V() int
	Adj(v int) ([]int, error)
}

// validateSources checks graph and source vertices before any traversal.
func validateSources(g Unweighted, sources []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(sources) == 0 {
		return ErrNoSources
	}
	for _, s := range sources {
		if s < 0 || s >= g.V() {
			return fmt.Errorf("source %d not in [0,%d): %w", s, g.V(), ErrVertexRange)
		}
	}

	return nil
}
