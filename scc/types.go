package scc

import (
	"errors"
	"fmt"
)

// Sentinel errors for strong-connectivity queries.
var (
	// ErrNilGraph is returned when a nil digraph is supplied.
	ErrNilGraph = errors.New("scc: digraph is nil")

	// ErrVertexRange is returned for a query vertex outside [0, V).
	ErrVertexRange = errors.New("scc: vertex out of range")
)

// StronglyConnected answers component queries after a one-shot
// computation. All implementations in this package satisfy it.
type StronglyConnected interface {
	// Count returns the number of strong components.
	Count() int

	// ID returns the component identifier of v, in [0, Count).
	ID(v int) (int, error)

	// Connected reports whether v and w share a strong component.
	Connected(v, w int) (bool, error)
}

// components is the shared query backend: a vertex→component map plus
// the component count. Each algorithm fills one in its own way.
type components struct {
	id    []int // id[v] = component of v
	count int   // number of components
}

// Count returns the number of strong components.
func (c *components) Count() int { return c.count }

// ID returns the component identifier of v.
func (c *components) ID(v int) (int, error) {
	if v < 0 || v >= len(c.id) {
		return 0, fmt.Errorf("ID(%d): %w", v, ErrVertexRange)
	}

	return c.id[v], nil
}

// Connected reports whether v and w share a strong component.
func (c *components) Connected(v, w int) (bool, error) {
	iv, err := c.ID(v)
	if err != nil {
		return false, err
	}
	iw, err := c.ID(w)
	if err != nil {
		return false, err
	}

	return iv == iw, nil
}
