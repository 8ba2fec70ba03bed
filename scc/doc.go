// Package scc computes the strongly connected components of a digraph.
//
// Three classical algorithms are implemented behind the same
// StronglyConnected interface:
//
//   - Tarjan        — single DFS with low-link values.
//   - KosarajuSharir — DFS over the reverse digraph to obtain an order,
//     then DFS over the original in that order.
//   - Gabow         — single DFS with two vertex stacks instead of
//     low-link arithmetic.
//
// All three run in O(V+E) time and O(V) space, and all three induce the
// same partition of the vertices; only the numbering of components may
// differ between algorithms. Two vertices are strongly connected exactly
// when each is reachable from the other.
package scc
