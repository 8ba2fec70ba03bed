// Package cycle detects cycles in undirected and directed core containers
// and reports a concrete witness walk.
//
//   - Undirected: self-loops and parallel edges are reported as degenerate
//     cycles before the general search; otherwise a parent-tracking DFS
//     finds a back-edge to a marked non-parent vertex and traces the cycle
//     through the edgeTo array.
//   - Directed: DFS with an onStack marker; an edge into a vertex still on
//     the traversal stack is a back-edge closing a cycle.
//   - DirectedKahn: the queue-based alternative — peel vertices of
//     indegree 0; whatever retains positive indegree afterwards lies on a
//     cycle, recovered by walking a predecessor array until a vertex
//     repeats.
//
// Every witness is a closed walk: the first and last vertex coincide and
// each consecutive pair is a real edge of the graph, oriented along edge
// direction for digraphs.
//
// All DFS runs on explicit stacks. Complexity: O(V+E) time, O(V) space.
package cycle
