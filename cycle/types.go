package cycle

import "errors"

// ErrNilGraph is returned when a nil graph is supplied.
var ErrNilGraph = errors.New("cycle: graph is nil")

// Witness is the shared accessor surface of the three detectors.
type Witness struct {
	cycle []int // closed walk (first == last), nil when acyclic
}

// HasCycle reports whether a cycle was found.
func (w *Witness) HasCycle() bool { return w.cycle != nil }

// Cycle returns the witness closed walk, nil when acyclic.
// The returned slice is owned by the result and must not be mutated.
func (w *Witness) Cycle() []int { return w.cycle }
