// Package shortest computes single-source and all-pairs shortest paths
// over the weighted dense-index containers.
//
// Single-source algorithms return a *Tree, queried through DistTo,
// HasPathTo and PathTo:
//
//   - Dijkstra / DijkstraUndirected — eager, indexed-heap based,
//     O(E log V); fails fast on any negative edge weight.
//   - BellmanFord — queue-based, O(V·E) worst case; tolerates negative
//     weights and reports a reachable negative cycle as a witness, after
//     which distance queries are refused.
//   - AcyclicSP / AcyclicLP — one relaxation sweep in topological order,
//     O(V+E); arbitrary weights, but only on DAGs. AcyclicLP maximizes
//     instead of minimizing.
//
// FloydWarshall computes all-pairs distances on the dense-matrix digraph
// in O(V³) time and O(V²) space, and likewise refuses queries once a
// negative cycle is discovered.
//
// Unreachable targets answer HasPathTo=false, PathTo=nil and an infinite
// distance (+Inf when minimizing, -Inf when maximizing).
package shortest
