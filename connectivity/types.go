package connectivity

import "errors"

// Sentinel errors for connectivity preprocessing and queries.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("connectivity: graph is nil")

	// ErrVertexRange is returned for a query vertex outside [0, V).
	ErrVertexRange = errors.New("connectivity: vertex out of range")

	// ErrNotBipartite is returned by Color when the graph has an odd cycle.
	ErrNotBipartite = errors.New("connectivity: graph is not bipartite")
)
