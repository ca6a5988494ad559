package record_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/record"
)

func TestNewID(t *testing.T) {
	id := record.NewID()
	assert.True(t, strings.HasPrefix(id, record.IDPrefix))
	assert.Len(t, id, len(record.IDPrefix)+4)
}

func TestRoundTrip_GeneratedGraphs(t *testing.T) {
	params := builder.Params{
		Nodes:   builder.Range{Min: 10, Max: 30},
		Weights: builder.Range{Min: 1, Max: 20},
		Width:   1000,
		Height:  700,
	}
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.Generate(params, builder.WithSeed(seed))
		require.NoError(t, err)

		rec := record.FromGraph(record.NewID(), record.Canvas{Width: 1000, Height: 700}, g)
		raw, err := json.Marshal(rec)
		require.NoError(t, err)

		var back record.Record
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, rec, back, "seed %d", seed)

		g2, err := back.Graph()
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, g.Nodes(), g2.Nodes(), "seed %d", seed)
		assert.Equal(t, g.Edges(), g2.Edges(), "seed %d", seed)
	}
}

func TestRecordJSONShape(t *testing.T) {
	g, err := core.NewGraphFrom(
		[]core.Node{{ID: 0, X: 1, Y: 2}, {ID: 1, X: 3, Y: 4}},
		[]core.Edge{{From: 0, To: 1, Weight: 7}},
	)
	require.NoError(t, err)

	raw, err := json.Marshal(record.FromGraph("graph-ab12", record.Canvas{Width: 10, Height: 20}, g))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "graph-ab12",
		"canvas": {"width": 10, "height": 20},
		"nodes": [{"id": 0, "x": 1, "y": 2}, {"id": 1, "x": 3, "y": 4}],
		"edges": [{
			"id": "0-1", "weight": 7,
			"firstNode": {"id": 0, "x": 1, "y": 2},
			"secondNode": {"id": 1, "x": 3, "y": 4}
		}]
	}`, string(raw))
}

func TestValidate(t *testing.T) {
	good := func() record.Record { return record.Presets()[0] }
	require.NoError(t, good().Validate())

	cases := map[string]func(*record.Record){
		"zero canvas":    func(r *record.Record) { r.Canvas.Width = 0 },
		"zero weight":    func(r *record.Record) { r.Edges[0].Weight = 0 },
		"misnamed edge":  func(r *record.Record) { r.Edges[0].ID = "1-0" },
		"unknown node":   func(r *record.Record) { r.Edges[0].SecondNode = core.Node{ID: 9}; r.Edges[0].ID = "0-9" },
		"stale endpoint": func(r *record.Record) { r.Edges[0].FirstNode.X = -1 },
		"duplicate node": func(r *record.Record) { r.Nodes = append(r.Nodes, r.Nodes[0]) },
		"duplicate edge": func(r *record.Record) { r.Edges = append(r.Edges, r.Edges[0]) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := good()
			r.Nodes = append([]core.Node(nil), r.Nodes...)
			r.Edges = append([]record.Edge(nil), r.Edges...)
			mutate(&r)
			assert.ErrorIs(t, r.Validate(), record.ErrInvalidRecord)
			_, err := r.Graph()
			assert.Error(t, err)
		})
	}
}

func TestValidate_MissingIDStillLoads(t *testing.T) {
	r := record.Presets()[0]
	r.ID = ""
	assert.ErrorIs(t, r.Validate(), record.ErrInvalidRecord)
	g, err := r.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
}

func TestPresets(t *testing.T) {
	presets := record.Presets()
	require.Len(t, presets, 2)

	square, err := presets[0].Graph()
	require.NoError(t, err)
	assert.True(t, bfs.Connected(square))
	assert.Equal(t, int64(9), square.TotalWeight())

	split, err := presets[1].Graph()
	require.NoError(t, err)
	assert.False(t, bfs.Connected(split))
	assert.Len(t, bfs.Components(split), 2)
}
