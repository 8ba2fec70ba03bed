// Package traverse implements depth-first and breadth-first traversal over
// the dense-index containers in core.
//
// Both entry points accept any unweighted adjacency source through the
// Unweighted interface, so a single implementation serves core.Graph and
// core.Digraph (directed reachability is DFS/BFS over a Digraph).
//
// DFS runs on an explicit stack by default; pathological path lengths
// cannot exhaust the call stack. DFSRecursive keeps the classical
// recursive formulation for callers that want pre/post hooks to fire in
// textbook order — its depth is bounded only by the goroutine stack.
//
// BFS performs level-order expansion from one or more sources and records
// edge-count distances plus a predecessor array for path reconstruction.
//
// Complexity: all traversals are O(V+E) time and O(V) extra space.
//
// Errors:
//
//	ErrNilGraph    — nil graph supplied
//	ErrNoSources   — no source vertices supplied
//	ErrVertexRange — a source or query vertex outside [0, V)
package traverse
