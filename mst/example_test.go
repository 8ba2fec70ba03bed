package mst_test

import (
	"fmt"

	"github.com/katalvlaran/lvldense/core"
	"github.com/katalvlaran/lvldense/mst"
)

// ExampleKruskal builds a square with one diagonal and prints the
// spanning tree weight.
func ExampleKruskal() {
	g, _ := core.NewEdgeWeightedGraph(4)
	for _, x := range []struct {
		v, w int
		wt   float64
	}{
		{0, 1, 1.0}, {1, 2, 2.0}, {2, 3, 3.0}, {3, 0, 4.0}, {0, 2, 2.5},
	} {
		e, _ := core.NewEdge(x.v, x.w, x.wt)
		_ = g.AddEdge(e)
	}

	f, _ := mst.Kruskal(g)
	fmt.Printf("%.2f\n", f.Weight())
	for _, e := range f.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 6.00
	// 0-1 1.00000
	// 1-2 2.00000
	// 2-3 3.00000
}
