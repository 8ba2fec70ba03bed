package core

import "errors"

// Sentinel errors for container construction and queries.
var (
	// ErrNegativeVertexCount indicates a container was requested with V < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrNegativeEdgeCount indicates an edge count E < 0 was requested.
	ErrNegativeEdgeCount = errors.New("core: edge count must be non-negative")

	// ErrVertexRange indicates a vertex index outside [0, V).
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrNotEndpoint indicates Other(x) was called with a vertex that is
	// neither endpoint of the edge.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of this edge")
)
