// Package connectivity answers reachability questions after linear-time
// preprocessing of a core container.
//
//   - Components labels each vertex of an undirected core.Graph with the
//     first-visited vertex of its component; Connected(v, w) is then an O(1)
//     id comparison and per-component sizes are tracked.
//   - TransitiveClosure precomputes directed reachability from every vertex
//     of a core.Digraph — O(V·(V+E)) time and O(V²) space — so
//     Reachable(v, w) answers in O(1).
//   - Bipartite two-colors an undirected graph; when an odd cycle exists
//     Color fails at query time (bipartiteness is only known violated once
//     the relevant branch completes) and OddCycle returns the witness.
//
// All traversal runs on explicit stacks/queues.
//
// Errors:
//
//	ErrNilGraph     — nil graph supplied
//	ErrVertexRange  — query vertex outside [0, V)
//	ErrNotBipartite — Color queried on a non-bipartite graph
package connectivity
