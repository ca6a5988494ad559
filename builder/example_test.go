package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/builder"
)

// ExampleGenerate draws a reproducible graph and checks whether it can be
// handed to the algorithms.
func ExampleGenerate() {
	params := builder.Params{
		Nodes:   builder.Range{Min: 12, Max: 12},
		Weights: builder.Range{Min: 1, Max: 20},
		Width:   1000,
		Height:  700,
	}
	g, err := builder.Generate(params, builder.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("has edges:", g.EdgeCount() > 0)
	_ = bfs.Connected(g) // not guaranteed; regenerate when false
	// Output:
	// nodes: 12
	// has edges: true
}
