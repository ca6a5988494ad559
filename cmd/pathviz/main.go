// Command pathviz generates planar graphs, runs Dijkstra and Prim over them
// and serves the HTTP API used by the browser renderer.
//
// Usage:
//
//	pathviz [-config pathviz.yaml] <command> [flags]
//
// Commands: serve, generate, run, list, delete.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/logger/console"
	"github.com/katalvlaran/pathviz/record"
)

var errUsage = errors.New("usage: pathviz [-config file] serve|generate|run|list|delete [flags]")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	cfgPath := global.String("config", "", "YAML configuration file")
	if err := global.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{Debug: cfg.Server.Debug, Prefix: "pathviz"}))

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "serve":
		return serveCmd(ctx, cfg, store, cmdArgs)
	case "generate":
		return generateCmd(ctx, cfg, store, cmdArgs)
	case "run":
		return runCmd(ctx, cfg, store, cmdArgs)
	case "list":
		return listCmd(ctx, store, cmdArgs)
	case "delete":
		return deleteCmd(ctx, store, cmdArgs)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// openStore builds the configured store. The memory store starts with the presets.
func openStore(ctx context.Context, cfg config.Config) (record.Store, func(), error) {
	switch cfg.Store.Kind {
	case config.StoreFile:
		return record.NewFileStore(cfg.Store.Path), func() {}, nil
	case config.StorePostgres:
		s, closeFn, err := record.OpenPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, closeFn, nil
	default:
		return record.NewMemoryStore(record.Presets()...), func() {}, nil
	}
}
