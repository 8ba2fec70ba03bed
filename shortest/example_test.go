package shortest_test

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/shortest"
)

// ExampleDijkstra routes around a direct but expensive edge.
func ExampleDijkstra() {
	g, _ := core.NewEdgeWeightedDigraph(3)
	for _, x := range []struct {
		from, to int
		wt       float64
	}{
		{0, 1, 1.5}, {1, 2, 1.0}, {0, 2, 3.0},
	} {
		e, _ := core.NewDirectedEdge(x.from, x.to, x.wt)
		_ = g.AddEdge(e)
	}

	tree, _ := shortest.Dijkstra(g, 0)
	d, _ := tree.DistTo(2)
	path, _ := tree.PathTo(2)
	fmt.Printf("%.2f\n", d)
	for _, e := range path {
		fmt.Println(e)
	}
	// Output:
	// 2.50
	// 0->1 1.50000
	// 1->2 1.00000
}
