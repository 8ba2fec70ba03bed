package euler

import "errors"

// ErrNilGraph is returned when a nil graph is supplied.
var ErrNilGraph = errors.New("euler: graph is nil")

// Trail is the result of an Eulerian search: a vertex sequence using
// every edge exactly once, or the absence of one.
type Trail struct {
	vertices []int // the trail, nil when none exists
}

// Exists reports whether an Eulerian trail was found.
func (t *Trail) Exists() bool { return t.vertices != nil }

// Vertices returns the trail as a vertex sequence of length E+1, nil when
// none exists. For a cycle the first and last vertex coincide.
// The returned slice is owned by the result and must not be mutated.
func (t *Trail) Vertices() []int { return t.vertices }

// halfedge is one traversable direction of an edge: the far endpoint plus
// the shared edge id used to mark the edge consumed.
type halfedge struct {
	to int // far endpoint
	id int // edge id shared by both directions
}

// hierholzer runs the explicit-stack edge-consuming walk from s and
// returns the emitted vertex sequence reversed into trail order. The
// used slice is consumed: one slot per edge id, true once traversed.
func hierholzer(adj [][]halfedge, used []bool, s int) []int {
	cursor := make([]int, len(adj))
	stack := []int{s}
	out := make([]int, 0, len(used)+1)

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Follow unused edges until v has none left.
		for cursor[v] < len(adj[v]) {
			h := adj[v][cursor[v]]
			cursor[v]++
			if used[h.id] {
				continue
			}
			used[h.id] = true
			stack = append(stack, v)
			v = h.to
		}
		out = append(out, v)
	}

	// The stuck-emission order is the trail reversed.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
