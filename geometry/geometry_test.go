package geometry_test

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/geometry"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		a1, a2, b1, b2 orb.Point
		want           bool
	}{
		{"proper cross", orb.Point{0, 0}, orb.Point{10, 10}, orb.Point{0, 10}, orb.Point{10, 0}, true},
		{"T touch at endpoint", orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{5, 0}, orb.Point{5, 10}, false},
		{"shared endpoint", orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{0, 0}, orb.Point{0, 10}, false},
		{"parallel", orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{0, 5}, orb.Point{10, 5}, false},
		{"collinear overlap", orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{5, 0}, orb.Point{15, 0}, false},
		{"disjoint", orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{5, -1}, orb.Point{5, 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.SegmentsIntersect(tc.a1, tc.a2, tc.b1, tc.b2))
			assert.Equal(t, tc.want, geometry.SegmentsIntersect(tc.b1, tc.b2, tc.a1, tc.a2), "symmetric")
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a, b := orb.Point{0, 0}, orb.Point{10, 0}

	d, on := geometry.PointSegmentDistance(orb.Point{5, 3}, a, b)
	assert.InDelta(t, 3.0, d, 1e-12)
	assert.True(t, on)

	_, on = geometry.PointSegmentDistance(orb.Point{15, 0}, a, b)
	assert.False(t, on, "projection beyond b")

	_, on = geometry.PointSegmentDistance(orb.Point{-1, 0}, a, b)
	assert.False(t, on, "projection before a")

	d, on = geometry.PointSegmentDistance(orb.Point{3, 4}, a, a)
	assert.InDelta(t, 5.0, d, 1e-12, "degenerate segment falls back to point distance")
	assert.True(t, on)
}

func TestTooClose(t *testing.T) {
	a, b := orb.Point{0, 0}, orb.Point{100, 0}

	assert.True(t, geometry.TooClose(orb.Point{50, 40}, a, b, geometry.ProximityThreshold), "boundary is inclusive")
	assert.False(t, geometry.TooClose(orb.Point{50, 40.5}, a, b, geometry.ProximityThreshold))
	assert.False(t, geometry.TooClose(orb.Point{120, 1}, a, b, geometry.ProximityThreshold), "off the segment")
}

func TestIndex_QuerySorted(t *testing.T) {
	ix := geometry.NewIndex()
	ix.InsertPoint(3, orb.Point{10, 10})
	ix.InsertPoint(1, orb.Point{12, 12})
	ix.InsertPoint(2, orb.Point{500, 500})
	ix.InsertSegment(7, orb.Point{0, 11}, orb.Point{20, 11})

	assert.Equal(t, 4, ix.Len())
	got := ix.Query(orb.Bound{Min: orb.Point{9, 9}, Max: orb.Point{13, 13}})
	assert.Equal(t, []int{1, 3, 7}, got)
	assert.Empty(t, ix.Query(orb.Bound{Min: orb.Point{100, 100}, Max: orb.Point{200, 200}}))
}

// TestIndex_MatchesBruteForce checks that pre-filtering with the index never
// loses a segment crossing or a proximity hit.
func TestIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randPoint := func() orb.Point { return orb.Point{rng.Float64() * 800, rng.Float64() * 600} }

	points := make([]orb.Point, 60)
	pointIdx := geometry.NewIndex()
	for i := range points {
		points[i] = randPoint()
		pointIdx.InsertPoint(i, points[i])
	}
	segs := make([][2]orb.Point, 40)
	segIdx := geometry.NewIndex()
	for i := range segs {
		segs[i] = [2]orb.Point{randPoint(), randPoint()}
		segIdx.InsertSegment(i, segs[i][0], segs[i][1])
	}

	for trial := 0; trial < 200; trial++ {
		a, b := randPoint(), randPoint()

		wantCross := map[int]bool{}
		for i, s := range segs {
			if geometry.SegmentsIntersect(a, b, s[0], s[1]) {
				wantCross[i] = true
			}
		}
		gotCross := map[int]bool{}
		for _, i := range segIdx.Query(geometry.SegmentBound(a, b, 0)) {
			if geometry.SegmentsIntersect(a, b, segs[i][0], segs[i][1]) {
				gotCross[i] = true
			}
		}
		assert.Equal(t, wantCross, gotCross)

		wantNear := map[int]bool{}
		for i, p := range points {
			if geometry.TooClose(p, a, b, geometry.ProximityThreshold) {
				wantNear[i] = true
			}
		}
		gotNear := map[int]bool{}
		for _, i := range pointIdx.Query(geometry.SegmentBound(a, b, geometry.ProximityThreshold)) {
			if geometry.TooClose(points[i], a, b, geometry.ProximityThreshold) {
				gotNear[i] = true
			}
		}
		assert.Equal(t, wantNear, gotNear)
	}
}
