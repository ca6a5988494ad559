package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/record"
)

func preset(t *testing.T, i int) *core.Graph {
	t.Helper()
	g, err := record.Presets()[i].Graph()
	require.NoError(t, err)

	return g
}

func intp(v int) *int { return &v }

func TestRun_SquareScenarios(t *testing.T) {
	g := preset(t, 0)

	steps, err := engine.RunDijkstra(g, intp(0))
	require.NoError(t, err)
	assert.Contains(t, steps, animation.RelaxEdge("1-2", 2, 2))
	assert.Equal(t, 4, steps.Count(animation.TagVisitNode))

	for start := 0; start < 4; start++ {
		steps, err := engine.RunPrim(g, intp(start))
		require.NoError(t, err)
		var added []string
		for _, s := range steps {
			if s.Tag == animation.TagAddEdge {
				added = append(added, s.EdgeID)
			}
		}
		assert.ElementsMatch(t, []string{"0-1", "1-2", "2-3"}, added, "start %d", start)
	}
}

func TestRun_DisconnectedRefused(t *testing.T) {
	g := preset(t, 1)
	assert.False(t, engine.IsConnected(g))

	for _, algo := range []string{engine.AlgoDijkstra, engine.AlgoPrim} {
		steps, err := engine.Run(algo, g, nil)
		assert.ErrorIs(t, err, engine.ErrNotConnected, algo)
		assert.Contains(t, err.Error(), "2 components")
		assert.Nil(t, steps)
	}
}

func TestRun_DegenerateAndErrors(t *testing.T) {
	steps, err := engine.RunDijkstra(core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, steps)

	one := core.NewGraph()
	require.NoError(t, one.AddNode(core.Node{ID: 0}))
	steps, err = engine.RunPrim(one, nil)
	require.NoError(t, err)
	assert.Empty(t, steps)

	_, err = engine.RunDijkstra(preset(t, 0), intp(99))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = engine.Run("bellman-ford", preset(t, 0), nil)
	assert.Error(t, err)
}

func TestGenerateGraph(t *testing.T) {
	g, err := engine.GenerateGraph(
		builder.Range{Min: 15, Max: 15}, builder.Range{Min: 1, Max: 20},
		engine.Bounds{Width: 1000, Height: 700}, builder.WithSeed(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 15, g.NodeCount())

	_, err = engine.GenerateGraph(builder.Range{Min: 5, Max: 1}, builder.Range{Min: 1, Max: 20}, engine.Bounds{Width: 1, Height: 1})
	assert.ErrorIs(t, err, builder.ErrBadRange)
}
