package builder_test

import (
	"fmt"

	"github.com/topobench/topobench/builder"
)

// ExampleGenerate demonstrates seeded generation with a percent density.
func ExampleGenerate() {
	g, err := builder.Generate(5, 20, builder.WithSeed(123))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	fmt.Println("vertices:", g.N)
	fmt.Println("edges:", g.List.EdgeCount())
	// Output:
	// vertices: 5
	// edges: 4
}
