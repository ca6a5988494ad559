package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/record"
	"github.com/katalvlaran/pathviz/server"
)

var stdout io.Writer = os.Stdout

// maxConnectAttempts bounds generate -connected; some canvases never yield a
// connected graph.
const maxConnectAttempts = 100

var errNoConnectedGraph = errors.New("generate: no connected graph found")

func serveCmd(ctx context.Context, cfg config.Config, store record.Store, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", cfg.Server.Port, "listen port")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Server.Port = *port
	if err := cfg.Validate(); err != nil {
		return err
	}

	return server.New(cfg, store).Run(ctx)
}

func generateCmd(ctx context.Context, cfg config.Config, store record.Store, args []string) error {
	gen := cfg.Generator
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	nodes := fs.String("nodes", formatRange(gen.Nodes), "node count range min,max")
	weights := fs.String("weights", formatRange(gen.Weights), "edge weight range min,max")
	width := fs.Float64("width", gen.Width, "canvas width")
	height := fs.Float64("height", gen.Height, "canvas height")
	seed := fs.Int64("seed", gen.Seed, "random seed, 0 for a fresh one")
	save := fs.Bool("save", false, "save the graph to the store")
	connected := fs.Bool("connected", false, "regenerate until the graph is connected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	nr, err := parseRange(*nodes)
	if err != nil {
		return err
	}
	wr, err := parseRange(*weights)
	if err != nil {
		return err
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	bounds := engine.Bounds{Width: *width, Height: *height}
	generate := func(seed int64) (*core.Graph, error) {
		return engine.GenerateGraph(nr, wr, bounds, builder.WithSeed(seed))
	}
	var g *core.Graph
	if *connected {
		g, err = generateConnected(ctx, generate, s)
	} else {
		g, err = generate(s)
	}
	if err != nil {
		return err
	}

	rec := record.FromGraph(record.NewID(), record.Canvas{Width: bounds.Width, Height: bounds.Height}, g)
	if *save {
		if err := store.Save(ctx, rec); err != nil {
			return err
		}
		logger.Info("graph saved", "id", rec.ID)
	}
	logger.Info("graph generated", "id", rec.ID, "nodes", len(rec.Nodes), "edges", len(rec.Edges), "connected", engine.IsConnected(g))

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(rec)
}

// generateConnected draws graphs with seeds s, s+1, ... until one is
// connected, ctx is done or maxConnectAttempts graphs were rejected.
func generateConnected(ctx context.Context, generate func(seed int64) (*core.Graph, error), s int64) (*core.Graph, error) {
	for attempt := 0; attempt < maxConnectAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := generate(s + int64(attempt))
		if err != nil {
			return nil, err
		}
		if engine.IsConnected(g) {
			return g, nil
		}
		logger.Debug("disconnected graph, regenerating", "attempt", attempt+1)
	}

	return nil, fmt.Errorf("%w after %d attempts", errNoConnectedGraph, maxConnectAttempts)
}

func runCmd(ctx context.Context, cfg config.Config, store record.Store, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	algo := fs.String("algo", engine.AlgoDijkstra, "dijkstra or prim")
	id := fs.String("id", "", "ID of a stored graph")
	file := fs.String("file", "", "graph record JSON file")
	start := fs.Int("start", -1, "source (dijkstra) or start (prim) node, -1 for the lowest ID")
	speed := fs.String("speed", strconv.FormatFloat(cfg.Playback.Speed, 'g', -1, 64), "playback speed: 0.5, 1 or 2")
	instant := fs.Bool("instant", false, "print all steps without pausing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, err := loadRecord(ctx, store, *id, *file)
	if err != nil {
		return err
	}
	g, err := rec.Graph()
	if err != nil {
		return err
	}

	var startPtr *int
	if *start >= 0 {
		startPtr = start
	}
	steps, err := engine.Run(*algo, g, startPtr)
	if err != nil {
		return err
	}

	sp, err := animation.ParseSpeed(*speed)
	if err != nil {
		return err
	}
	opts := []animation.PlayerOption{animation.WithSpeed(sp), animation.WithBaseDelay(cfg.Playback.BaseDelay)}
	if *instant {
		opts = append(opts, animation.WithInstant())
	}
	i := 0

	return animation.NewPlayer(steps, opts...).Play(ctx, func(s animation.Step) error {
		i++
		_, err := fmt.Fprintf(stdout, "%3d  %s\n", i, s)
		return err
	})
}

func listCmd(ctx context.Context, store record.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	all, err := store.Load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range all {
		connected := "invalid"
		if g, err := rec.Graph(); err == nil {
			connected = strconv.FormatBool(engine.IsConnected(g))
		}
		fmt.Fprintf(stdout, "%-14s nodes=%-3d edges=%-3d connected=%s\n", rec.ID, len(rec.Nodes), len(rec.Edges), connected)
	}

	return nil
}

func deleteCmd(ctx context.Context, store record.Store, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "ID of the graph to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("delete: -id is required")
	}
	if err := store.Delete(ctx, *id); err != nil {
		return err
	}
	logger.Info("graph deleted", "id", *id)

	return nil
}

func loadRecord(ctx context.Context, store record.Store, id, file string) (record.Record, error) {
	switch {
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return record.Record{}, err
		}
		var rec record.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return record.Record{}, fmt.Errorf("decode %s: %w", file, err)
		}
		return rec, nil
	case id != "":
		return record.Find(ctx, store, id)
	default:
		return record.Record{}, fmt.Errorf("run: one of -id or -file is required")
	}
}

func formatRange(r builder.Range) string {
	return fmt.Sprintf("%d,%d", r.Min, r.Max)
}

// parseRange accepts "min,max" or a single number for a fixed value.
func parseRange(s string) (builder.Range, error) {
	lo, hi, found := strings.Cut(s, ",")
	if !found {
		hi = lo
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return builder.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return builder.Range{}, fmt.Errorf("range %q: %w", s, err)
	}

	return builder.Range{Min: min, Max: max}, nil
}
