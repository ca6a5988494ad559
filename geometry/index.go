package geometry

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// minExtent keeps every stored and queried rectangle non-degenerate;
// rtreego rejects zero-length sides.
const minExtent = 1e-9

// entry wraps an indexed point or segment for R-tree storage.
type entry struct {
	id   int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Index is a 2-D R-tree of identified points and segments.
// It is not safe for concurrent mutation.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)}
}

// InsertPoint stores p under id.
func (ix *Index) InsertPoint(id int, p orb.Point) {
	ix.insert(id, p.Bound())
}

// InsertSegment stores the bounding box of a–b under id.
func (ix *Index) InsertSegment(id int, a, b orb.Point) {
	ix.insert(id, SegmentBound(a, b, 0))
}

// Query returns the IDs of every item whose box intersects b, ascending.
func (ix *Index) Query(b orb.Bound) []int {
	hits := ix.tree.SearchIntersect(toRect(b))
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*entry).id)
	}
	sort.Ints(ids)

	return ids
}

// Len returns the number of stored items.
func (ix *Index) Len() int { return ix.size }

func (ix *Index) insert(id int, b orb.Bound) {
	ix.tree.Insert(&entry{id: id, rect: toRect(b)})
	ix.size++
}

// toRect converts b to an rtreego rectangle, widening it by minExtent so
// points and axis-parallel segments remain valid rectangles.
func toRect(b orb.Bound) rtreego.Rect {
	b = b.Pad(minExtent)
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{
			math.Max(b.Max.X()-b.Min.X(), minExtent),
			math.Max(b.Max.Y()-b.Min.Y(), minExtent),
		},
	)
	if err != nil {
		// lengths are clamped positive above
		panic("geometry: invalid bound: " + err.Error())
	}

	return rect
}
