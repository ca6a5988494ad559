// File: generate_test.go
// Package builder_test verifies parameter validation, determinism and the
// geometric invariants of generated graphs across many seeds.
package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/geometry"
)

var defaultParams = builder.Params{
	Nodes:   builder.Range{Min: 10, Max: 15},
	Weights: builder.Range{Min: 1, Max: 20},
	Width:   1200,
	Height:  800,
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *builder.Params)
		want   error
	}{
		{"zero nodes", func(p *builder.Params) { p.Nodes = builder.Range{Min: 0, Max: 5} }, builder.ErrBadRange},
		{"too many nodes", func(p *builder.Params) { p.Nodes = builder.Range{Min: 10, Max: builder.MaxNodes + 1} }, builder.ErrBadRange},
		{"inverted nodes", func(p *builder.Params) { p.Nodes = builder.Range{Min: 9, Max: 3} }, builder.ErrBadRange},
		{"zero max weight", func(p *builder.Params) { p.Weights = builder.Range{Min: 0, Max: 0} }, builder.ErrBadRange},
		{"inverted weights", func(p *builder.Params) { p.Weights = builder.Range{Min: 8, Max: 2} }, builder.ErrBadRange},
		{"zero width", func(p *builder.Params) { p.Width = 0 }, builder.ErrBadBounds},
		{"negative height", func(p *builder.Params) { p.Height = -1 }, builder.ErrBadBounds},
		{"NaN width", func(p *builder.Params) { p.Width = math.NaN() }, builder.ErrBadBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := defaultParams
			tc.mutate(&p)
			g, err := builder.Generate(p)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
			if g != nil {
				t.Errorf("graph must be nil on error")
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(defaultParams, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Generate(defaultParams, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Edges(), b.Edges())

	// The default source is fixed-seeded as well.
	c, err := builder.Generate(defaultParams)
	require.NoError(t, err)
	d, err := builder.Generate(defaultParams, builder.WithSeed(builder.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, c.Edges(), d.Edges())

	// WithRand shares caller state: two draws from one source differ.
	rng := rand.New(rand.NewSource(5))
	e, err := builder.Generate(defaultParams, builder.WithRand(rng))
	require.NoError(t, err)
	f, err := builder.Generate(defaultParams, builder.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, e.Nodes(), f.Nodes())
}

// TestGenerate_Invariants checks every structural and geometric property of
// generator output over many seeds.
func TestGenerate_Invariants(t *testing.T) {
	params := defaultParams
	params.Weights = builder.Range{Min: 1, Max: 7}

	for seed := int64(0); seed < 200; seed++ {
		g, err := builder.Generate(params, builder.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		nodes := g.Nodes()
		n := len(nodes)
		require.GreaterOrEqual(t, n, params.Nodes.Min, "seed %d", seed)
		require.LessOrEqual(t, n, params.Nodes.Max, "seed %d", seed)
		for i, node := range nodes {
			require.Equal(t, i, node.ID, "IDs are sequential (seed %d)", seed)
		}

		edges := g.Edges()
		pairs := map[[2]int]bool{}
		for _, e := range edges {
			require.NotEqual(t, e.From, e.To)
			require.Equal(t, core.EdgeID(e.From, e.To), e.ID)
			require.GreaterOrEqual(t, e.Weight, int64(1))
			require.LessOrEqual(t, e.Weight, int64(params.Weights.Max))

			key := [2]int{min(e.From, e.To), max(e.From, e.To)}
			require.False(t, pairs[key], "seed %d: duplicate pair %v", seed, key)
			pairs[key] = true
		}

		for i := 0; i < len(edges); i++ {
			a1, a2 := nodes[edges[i].From].Point(), nodes[edges[i].To].Point()
			for j := i + 1; j < len(edges); j++ {
				b1, b2 := nodes[edges[j].From].Point(), nodes[edges[j].To].Point()
				require.False(t, geometry.SegmentsIntersect(a1, a2, b1, b2),
					"seed %d: %s crosses %s", seed, edges[i].ID, edges[j].ID)
			}
			for _, p := range nodes {
				if edges[i].Has(p.ID) {
					continue
				}
				require.False(t, geometry.TooClose(p.Point(), a1, a2, geometry.ProximityThreshold),
					"seed %d: node %d too close to %s", seed, p.ID, edges[i].ID)
			}
		}
	}
}

// TestGenerate_ClusterLayout checks that every node sits on the ellipse of
// one of the five cluster centers and that cluster sizes differ by at most one.
func TestGenerate_ClusterLayout(t *testing.T) {
	w, h := defaultParams.Width, defaultParams.Height
	centers := [][2]float64{
		{w / 6, h / 5}, {w - w/5, h / 5}, {w / 2, h / 2}, {w / 5, h - h/5}, {w - w/6, h - h/5},
	}
	rx, ry := w*builder.DefaultClusterRadius, h*builder.DefaultClusterRadius

	for seed := int64(0); seed < 50; seed++ {
		g, err := builder.Generate(defaultParams, builder.WithSeed(seed))
		require.NoError(t, err)

		counts := make([]int, len(centers))
		for _, node := range g.Nodes() {
			found := false
			for ci, c := range centers {
				dx, dy := (node.X-c[0])/rx, (node.Y-c[1])/ry
				if math.Abs(dx*dx+dy*dy-1) < 1e-9 {
					counts[ci]++
					found = true

					break
				}
			}
			require.True(t, found, "seed %d: node %d off every cluster", seed, node.ID)
		}

		n := g.NodeCount()
		sort.Ints(counts)
		assert.LessOrEqual(t, counts[len(counts)-1]-counts[0], 1, "seed %d: %v", seed, counts)
		assert.Equal(t, n/5, counts[0], "seed %d", seed)
	}
}

func TestGenerate_WeightFloor(t *testing.T) {
	params := defaultParams
	params.Weights = builder.Range{Min: 5, Max: 6}

	g, err := builder.Generate(params, builder.WithSeed(3))
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(5))
		assert.LessOrEqual(t, e.Weight, int64(6))
	}
}

func TestGenerate_SingleNode(t *testing.T) {
	params := defaultParams
	params.Nodes = builder.Range{Min: 1, Max: 1}

	g, err := builder.Generate(params, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestGenerate_DecayControlsDensity(t *testing.T) {
	params := defaultParams
	params.Nodes = builder.Range{Min: 15, Max: 15}

	dense, err := builder.Generate(params, builder.WithSeed(11), builder.WithDecay(1), builder.WithProximity(0))
	require.NoError(t, err)
	sparse, err := builder.Generate(params, builder.WithSeed(11), builder.WithDecay(1e9), builder.WithProximity(0))
	require.NoError(t, err)

	// With decay 1e9 each i accepts at most one edge after its first.
	assert.LessOrEqual(t, sparse.EdgeCount(), 2*params.Nodes.Max)
	assert.Greater(t, dense.EdgeCount(), sparse.EdgeCount())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithProximity(-1) })
	assert.Panics(t, func() { builder.WithProximity(math.Inf(1)) })
	assert.Panics(t, func() { builder.WithClusterRadius(0) })
	assert.Panics(t, func() { builder.WithClusterRadius(0.9) })
	assert.Panics(t, func() { builder.WithDecay(0.5) })
	assert.Panics(t, func() { builder.WithDecay(math.NaN()) })
	assert.NotPanics(t, func() { builder.WithDecay(1) })
}
