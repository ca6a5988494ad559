// Package geometry provides the planar predicates used to keep generated
// graphs drawable: proper segment crossing, point–segment proximity, and an
// R-tree index that narrows both tests to nearby candidates.
//
// Coordinates are github.com/paulmach/orb points in canvas units.
//
// Predicates:
//
//	SegmentsIntersect(a1, a2, b1, b2)     // proper interior crossing only
//	PointSegmentDistance(p, a, b)         // distance to the line + projection test
//	TooClose(p, a, b, threshold)          // dist ≤ threshold and projection on segment
//
// Index:
//
//	idx := geometry.NewIndex()
//	idx.InsertPoint(id, p)
//	idx.InsertSegment(id, a, b)
//	ids := idx.Query(bound)               // sorted IDs whose boxes meet bound
//
// The index is a pre-filter: every item a brute-force scan would reject also
// appears in the Query result for the padded bounding box of the candidate,
// so using it never changes a decision.
package geometry
