package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ProximityThreshold is the minimum clearance, in canvas units, between an
// edge and any node that is not one of its endpoints.
const ProximityThreshold = 40.0

// SegmentsIntersect reports whether segments a1–a2 and b1–b2 cross at a
// point strictly inside both of them.
//
// Parallel and collinear segments (zero determinant) never intersect, and
// neither do segments that merely touch at an endpoint: both parametric
// positions must lie in the open interval (0,1). Segments sharing an endpoint
// are reported as not intersecting without further arithmetic.
func SegmentsIntersect(a1, a2, b1, b2 orb.Point) bool {
	if a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2 {
		return false
	}

	det := (a2.X()-a1.X())*(b2.Y()-b1.Y()) - (b2.X()-b1.X())*(a2.Y()-a1.Y())
	if det == 0 {
		return false
	}

	lambda := ((b2.Y()-b1.Y())*(b2.X()-a1.X()) + (b1.X()-b2.X())*(b2.Y()-a1.Y())) / det
	gamma := ((a1.Y()-a2.Y())*(b2.X()-a1.X()) + (a2.X()-a1.X())*(b2.Y()-a1.Y())) / det

	return 0 < lambda && lambda < 1 && 0 < gamma && gamma < 1
}

// PointSegmentDistance returns the perpendicular distance from p to the
// infinite line through a and b, and whether the projection of p falls
// within the segment (0 ≤ dot ≤ |ab|²).
//
// A degenerate segment (a == b) yields the plain distance from p to a with
// onSegment true.
func PointSegmentDistance(p, a, b orb.Point) (dist float64, onSegment bool) {
	dxL, dyL := b.X()-a.X(), b.Y()-a.Y()
	squareLen := dxL*dxL + dyL*dyL
	if squareLen == 0 {
		return planar.Distance(p, a), true
	}

	dxP, dyP := p.X()-a.X(), p.Y()-a.Y()
	dot := dxP*dxL + dyP*dyL
	cross := dyP*dxL - dxP*dyL

	return math.Abs(cross) / math.Sqrt(squareLen), dot >= 0 && dot <= squareLen
}

// TooClose reports whether p lies within threshold of segment a–b, counting
// only points whose projection lands on the segment.
func TooClose(p, a, b orb.Point, threshold float64) bool {
	dist, on := PointSegmentDistance(p, a, b)

	return on && dist <= threshold
}

// SegmentBound returns the axis-aligned bounding box of a–b grown by pad on
// every side.
func SegmentBound(a, b orb.Point, pad float64) orb.Bound {
	return orb.LineString{a, b}.Bound().Pad(pad)
}
