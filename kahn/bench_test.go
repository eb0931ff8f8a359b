package kahn_test

import (
	"fmt"
	"testing"

	"github.com/topobench/topobench/builder"
	"github.com/topobench/topobench/digraph"
	"github.com/topobench/topobench/kahn"
)

// The two benchmarks below exhibit the central asymmetry: SortList scales
// with V+E while SortMatrix stays quadratic even on sparse inputs.

func benchGraph(b *testing.B, n int, density float64) *digraph.Graph {
	b.Helper()
	g, err := builder.Generate(n, density, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkSortList(b *testing.B) {
	for _, n := range []int{100, 400, 1600} {
		for _, density := range []float64{0.01, 0.1} {
			g := benchGraph(b, n, density)
			b.Run(fmt.Sprintf("n=%d/d=%v", n, density), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := kahn.SortList(g.List); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSortMatrix(b *testing.B) {
	for _, n := range []int{100, 400, 1600} {
		for _, density := range []float64{0.01, 0.1} {
			g := benchGraph(b, n, density)
			b.Run(fmt.Sprintf("n=%d/d=%v", n, density), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := kahn.SortMatrix(g.Matrix); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
