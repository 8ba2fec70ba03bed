// Package euler finds Eulerian cycles and paths: trails that use every
// edge of the graph exactly once.
//
// Four entry points cover both orientations:
//
//   - Cycle / Path                 — undirected graphs,
//   - DirectedCycle / DirectedPath — digraphs.
//
// All run the non-recursive Hierholzer construction: follow unused edges
// from the current vertex until stuck, emit the stuck vertex, backtrack.
// The emitted sequence, reversed, is the trail. Degree preconditions
// (all even for an undirected cycle, at most two odd for a path; in- and
// outdegree balance for the directed variants) reject most non-Eulerian
// inputs up front, and the final length check — a trail over E edges
// visits exactly E+1 vertices — rejects graphs whose edges span more than
// one component.
//
// A graph with no edges admits the single-vertex degenerate path but no
// cycle. Self-loops and parallel edges are ordinary edges here.
//
// Complexity: O(V+E) time and space for every variant.
package euler
