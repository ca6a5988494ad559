package record

import "github.com/katalvlaran/pathviz/core"

// Presets returns the built-in graphs: a square with a heavy diagonal and
// two triangles with no edge between them.
func Presets() []Record {
	canvas := Canvas{Width: 1000, Height: 700}

	sq := []core.Node{{ID: 0, X: 200, Y: 200}, {ID: 1, X: 500, Y: 200}, {ID: 2, X: 500, Y: 500}, {ID: 3, X: 200, Y: 500}}
	tri := []core.Node{
		{ID: 0, X: 150, Y: 150}, {ID: 1, X: 350, Y: 150}, {ID: 2, X: 250, Y: 320},
		{ID: 3, X: 650, Y: 380}, {ID: 4, X: 850, Y: 380}, {ID: 5, X: 750, Y: 550},
	}
	edge := func(nodes []core.Node, a, b int, w int64) Edge {
		return Edge{ID: core.EdgeID(a, b), Weight: w, FirstNode: nodes[a], SecondNode: nodes[b]}
	}

	return []Record{
		{
			ID:     IDPrefix + "square",
			Canvas: canvas,
			Nodes:  sq,
			Edges: []Edge{
				edge(sq, 0, 1, 1), edge(sq, 1, 2, 1), edge(sq, 2, 3, 1),
				edge(sq, 3, 0, 1), edge(sq, 0, 2, 5),
			},
		},
		{
			ID:     IDPrefix + "split",
			Canvas: canvas,
			Nodes:  tri,
			Edges: []Edge{
				edge(tri, 0, 1, 3), edge(tri, 1, 2, 4), edge(tri, 2, 0, 5),
				edge(tri, 3, 4, 3), edge(tri, 4, 5, 4), edge(tri, 5, 3, 5),
			},
		},
	}
}
