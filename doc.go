// Package pathviz generates random planar graphs and turns Dijkstra's
// shortest-path search and Prim's minimum spanning tree into step sequences
// a renderer can animate.
//
// Packages:
//
//	core/         Graph, Node and Edge with canonical edge IDs
//	geometry/     segment intersection, node proximity and the R-tree edge index
//	builder/      the clustered planar random graph generator
//	bfs/          traversal and connected components
//	animation/    Step, Sequence and the speed-controlled Player
//	dijkstra/     shortest paths emitting visit-node and relax-edge steps
//	prim_kruskal/ minimum spanning trees; Prim emits visit-node and add-edge steps
//	engine/       the facade: generate, check connectivity, run an algorithm
//	record/       the persisted graph record and its memory, file and postgres stores
//	config/       YAML, .env and environment configuration
//	logger/       pluggable logging with a charmbracelet console backend
//	metrics/      Prometheus collectors
//	server/       the echo HTTP API
//	cmd/pathviz/  the command line
//
// A typical run:
//
//	g, _ := engine.GenerateGraph(builder.Range{Min: 10, Max: 15}, builder.Range{Min: 1, Max: 20},
//		engine.Bounds{Width: 1000, Height: 700})
//	if engine.IsConnected(g) {
//		steps, _ := engine.RunDijkstra(g, nil)
//		animation.NewPlayer(steps).Play(ctx, render)
//	}
package pathviz
