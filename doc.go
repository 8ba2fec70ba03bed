// Package lvldense is a library of classical graph algorithms over
// dense-index graphs: vertices are the integers [0, V), so every
// per-vertex table is a plain slice and every algorithm runs without a
// hash map on its hot path.
//
// 🚀 What is lvldense?
//
//	A focused collection of the algorithms everyone reaches for:
//		• Core containers: Graph, Digraph and their weighted and
//		  dense-matrix counterparts, with self-loop/parallel accounting
//		• Traversals: explicit-stack DFS and multi-source BFS
//		• Connectivity: components, transitive closure, bipartiteness
//		• Cycles & ordering: undirected/directed detection with
//		  witnesses, topological sort (DFS and Kahn)
//		• Strong components: Tarjan, Kosaraju-Sharir, Gabow
//		• Shortest paths: Dijkstra, Bellman-Ford, Floyd-Warshall,
//		  DAG shortest/longest
//		• Spanning forests: lazy/eager Prim, Kruskal, Boruvka + verifier
//		• Eulerian trails: cycles and paths, both orientations
//		• Support: union-find, indexed priority queue, symbol graphs,
//		  random generators and a small CLI
//
// ✨ Design conventions, kept uniform across every package:
//
//   - Constructors run the whole computation; results answer queries
//     read-only afterwards
//   - Explicit error returns with package-level sentinel values,
//     matchable via errors.Is
//   - Deep recursion is never used: traversals keep their own stacks,
//     so million-vertex graphs cannot blow the goroutine stack
//   - Randomized helpers take an explicit *rand.Rand for reproducibility
//
// Package map:
//
//	core/         — edge values and the five graph containers
//	traverse/     — DFS, BFS and the shared Unweighted interface
//	connectivity/ — components, transitive closure, bipartite
//	cycle/        — cycle detection with witnesses
//	toposort/     — topological ordering
//	scc/          — strong components
//	shortest/     — single-source and all-pairs shortest paths
//	mst/          — minimum spanning forests and their verifier
//	euler/        — Eulerian cycles and paths
//	dsu/, ipq/    — union-find and indexed heap building blocks
//	symgraph/     — string-named vertices over dense indices
//	gen/          — random graph generators
//	cmd/lvldense  — the command-line interface
//
//	go get github.com/katalvlaran/lvldense
package lvldense
