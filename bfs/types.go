package bfs

import "errors"

var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Result holds the nodes reached from the start, in visit order, and their
// hop distance from it.
type Result struct {
	Order []int
	Depth map[int]int
}

// Reached reports whether id was discovered by the traversal.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]

	return ok
}
