// Package mst computes minimum spanning forests of weighted undirected
// graphs.
//
// Four classical algorithms are implemented behind the same Forest
// interface:
//
//   - LazyPrim — grows one tree at a time, keeping every crossing edge
//     ever seen in a binary heap and discarding stale ones on pop.
//   - Prim     — the eager variant: one indexed-heap slot per vertex,
//     keyed by its cheapest known crossing edge.
//   - Kruskal  — processes all edges by ascending weight, joining
//     components through a union-find structure.
//   - Boruvka  — repeated rounds that add the cheapest edge leaving
//     every component at once.
//
// On a disconnected graph each algorithm returns a spanning forest: one
// minimum spanning tree per connected component, V - C edges in total.
// Equal-weight edges are broken by discovery order, so different
// algorithms may return different forests of identical total weight.
//
// Verify checks a candidate forest against its graph: consistent weight,
// acyclicity, spanning each component, and the cut optimality condition
// on every tree edge.
package mst
