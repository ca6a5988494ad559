package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
)

// ExampleDijkstra shows the steps emitted on a triangle where the direct
// edge 0-2 is longer than the detour through 1.
func ExampleDijkstra() {
	g, _ := core.NewGraphFrom(
		[]core.Node{{ID: 0}, {ID: 1, X: 100}, {ID: 2, X: 50, Y: 80}},
		[]core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 5}},
	)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range res.Steps {
		fmt.Println(s)
	}
	path, _ := res.PathTo(2)
	fmt.Println("path:", path)
	// Output:
	// visit-node node=0
	// relax-edge 0-1 node=1 distance=1
	// relax-edge 0-2 node=2 distance=5
	// visit-node node=1
	// relax-edge 1-2 node=2 distance=3
	// visit-node node=2
	// path: [0 1 2]
}
