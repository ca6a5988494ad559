package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/record"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	return &buf
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("10, 15")
	require.NoError(t, err)
	assert.Equal(t, builder.Range{Min: 10, Max: 15}, r)

	r, err = parseRange("7")
	require.NoError(t, err)
	assert.Equal(t, builder.Range{Min: 7, Max: 7}, r)

	_, err = parseRange("a,b")
	assert.Error(t, err)
}

func TestRunCmd_PrintsSteps(t *testing.T) {
	out := capture(t)
	store := record.NewMemoryStore(record.Presets()...)

	err := runCmd(context.Background(), config.Default(), store, []string{"-algo", "prim", "-id", "graph-square", "-instant"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "visit-node node=0")
	assert.Contains(t, lines[2], "add-edge 0-1")
}

func TestRunCmd_Disconnected(t *testing.T) {
	capture(t)
	store := record.NewMemoryStore(record.Presets()...)
	err := runCmd(context.Background(), config.Default(), store, []string{"-id", "graph-split", "-instant"})
	assert.ErrorContains(t, err, "all nodes must be connected")
}

// twoIslands always yields two unconnected nodes.
func twoIslands(calls *int) func(int64) (*core.Graph, error) {
	return func(int64) (*core.Graph, error) {
		*calls++
		return core.NewGraphFrom([]core.Node{{ID: 0}, {ID: 1, X: 100}}, nil)
	}
}

func TestGenerateConnected_GivesUp(t *testing.T) {
	calls := 0
	g, err := generateConnected(context.Background(), twoIslands(&calls), 1)
	require.ErrorIs(t, err, errNoConnectedGraph)
	assert.Nil(t, g)
	assert.Equal(t, maxConnectAttempts, calls)
}

func TestGenerateConnected_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := generateConnected(ctx, twoIslands(&calls), 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestGenerateConnected_SeedSequence(t *testing.T) {
	var seeds []int64
	gen := func(seed int64) (*core.Graph, error) {
		seeds = append(seeds, seed)
		if len(seeds) < 3 {
			return core.NewGraphFrom([]core.Node{{ID: 0}, {ID: 1, X: 100}}, nil)
		}
		return core.NewGraph(), nil
	}
	g, err := generateConnected(context.Background(), gen, 40)
	require.NoError(t, err)
	assert.NotNil(t, g)
	assert.Equal(t, []int64{40, 41, 42}, seeds)
}

func TestGenerateCmd_Canceled(t *testing.T) {
	out := capture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := record.NewMemoryStore()

	err := generateCmd(ctx, config.Default(), store, []string{"-nodes", "12,12", "-width", "60", "-height", "60", "-connected", "-save"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	all, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGenerateSaveListDelete(t *testing.T) {
	out := capture(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "graphs.json")
	store := record.NewFileStore(path)

	err := generateCmd(ctx, config.Default(), store, []string{"-nodes", "12", "-seed", "9", "-save", "-connected"})
	require.NoError(t, err)
	var rec record.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Len(t, rec.Nodes, 12)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, listCmd(ctx, store, nil))
	assert.Contains(t, out.String(), rec.ID)
	assert.Contains(t, out.String(), "connected=true")

	require.NoError(t, deleteCmd(ctx, store, []string{"-id", rec.ID}))
	assert.ErrorIs(t, deleteCmd(ctx, store, []string{"-id", rec.ID}), record.ErrNotFound)
}
