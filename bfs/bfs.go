package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

type walker struct {
	graph *core.Graph
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from startID. Neighbors are expanded
// in ascending ID order, so Order is deterministic.
func BFS(g *core.Graph, startID int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, id)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrNeighbors, id, err)
		}
		next := w.res.Depth[id] + 1
		for _, nbr := range neighbors {
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
