// Package core defines the dense-index graph containers and immutable edge
// value types that every algorithm package in lvldense operates on.
//
// Vertices are integers in [0, V). V is fixed when a container is built;
// there is no renumbering and no vertex deletion. The only mutator is
// AddEdge, which validates both endpoints and appends to the relevant
// adjacency list(s) in insertion order.
//
// Containers:
//
//	Graph                        — undirected, unweighted
//	Digraph                      — directed, unweighted (maintains indegrees)
//	EdgeWeightedGraph            — undirected, float64 weights
//	EdgeWeightedDigraph          — directed, float64 weights
//	AdjMatrixEdgeWeightedDigraph — directed, dense V×V matrix storage
//
// Edge value types:
//
//	Pair         — unweighted undirected {v, w}
//	Arc          — unweighted directed (from, to)
//	Edge         — weighted undirected {v, w, weight}, Other(x) resolves endpoints
//	DirectedEdge — weighted directed (from, to, weight)
//
// Weights must be finite: NaN and ±Inf are rejected at construction.
// Self-loops and parallel edges are permitted by the adjacency-list
// containers (the matrix container ignores parallels); per-container loop
// and parallel counters let algorithms that require simple graphs check
// Simple() instead of rescanning.
//
// Concurrency: containers perform no internal locking. Once a graph is
// fully built it is safe for any number of goroutines to read it
// concurrently; adding edges while another goroutine reads is undefined
// behavior and must be prevented by the caller.
//
// Errors:
//
//	ErrNegativeVertexCount — container built with V < 0
//	ErrNegativeEdgeCount   — generator/reader asked for E < 0
//	ErrVertexRange         — endpoint or query vertex outside [0, V)
//	ErrBadWeight           — NaN or infinite edge weight
//	ErrNotEndpoint         — Other(x) called with x not an endpoint
package core
