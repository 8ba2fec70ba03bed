package traverse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldense/gen"
	"github.com/katalvlaran/lvldense/traverse"
)

// BenchmarkBFS measures multi-source BFS over a fixed sparse random graph.
func BenchmarkBFS(b *testing.B) {
	g, err := gen.Simple(rand.New(rand.NewSource(1)), 10_000, 40_000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDFS measures the explicit-stack DFS over the same graph.
func BenchmarkDFS(b *testing.B) {
	g, err := gen.Simple(rand.New(rand.NewSource(1)), 10_000, 40_000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
