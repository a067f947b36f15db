// Command shortpath solves single-source shortest paths over a graph file
// (or a built-in five-vertex demo) and prints the distances and the
// shortest-path tree.
//
// Usage:
//
//	shortpath [-graph file.yaml] [-source name] [-tree=false]
//	          [-metrics-out shortpath.prom]
//	          [-store-driver sqlite -store-dsn runs.db] [-label name]
//	          [-log-level debug] [-log-format json]
//
// Every flag has a SHORTPATH_* environment fallback.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphfile"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/internal/logging"
	"github.com/katalvlaran/shortpath/metrics"
	"github.com/katalvlaran/shortpath/pathtree"
	"github.com/katalvlaran/shortpath/store"
	"github.com/katalvlaran/shortpath/telemetry"
)

const tracerName = "github.com/katalvlaran/shortpath"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "shortpath:", err)
		return 1
	}
	logger := logging.New(cfg.Logging, stderr)

	if err = solve(ctx, cfg, logger, stdout); err != nil {
		logger.Error("shortpath failed", "err", err)
		return 1
	}

	return 0
}

// solve loads the graph, runs the solver and emits every configured output.
func solve(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	// 1) Graph and source
	doc := demoDocument()
	if cfg.GraphPath != "" {
		var err error
		if doc, err = graphfile.Load(cfg.GraphPath); err != nil {
			return err
		}
	}
	if cfg.Source != "" {
		doc.Source = cfg.Source
	}
	g, source, err := doc.Build()
	if err != nil {
		return err
	}
	logger.Debug("graph loaded",
		"path", cfg.GraphPath,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount())

	// 2) Solve, traced and measured
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	start := time.Now()
	stats, err := telemetry.Solve(ctx, otel.Tracer(tracerName), g, source, dijkstra.WithLogger(logger))
	rec.Observe(stats, time.Since(start), err)
	// Metrics are written before the solve error is returned, so failed
	// runs reach -metrics-out too.
	if werr := writeMetrics(cfg.MetricsOut, reg, logger); werr != nil {
		return errors.Join(err, werr)
	}
	if err != nil {
		return err
	}
	logger.Info("reachable size", "source", g.Name(source), "reachable", stats.Reachable)
	logger.Debug("solver stats",
		"pops", stats.Pops,
		"stale_pops", stats.StalePops,
		"pushes", stats.Pushes,
		"edge_scans", stats.EdgeScans,
		"relaxations", stats.Relaxations)

	// 3) Text output
	if err = pathtree.WriteDistances(stdout, g, source); err != nil {
		return fmt.Errorf("write distances: %w", err)
	}
	if cfg.PrintTree {
		if err = pathtree.WriteTree(stdout, g, source); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}
	}

	// 4) Optional store
	if cfg.Store.Enabled() {
		id, err := saveRun(ctx, cfg, g, source)
		if err != nil {
			return err
		}
		logger.Info("run stored", "driver", cfg.Store.Driver, "id", id)
	}

	return nil
}

// writeMetrics writes reg to path in the Prometheus text format. An empty
// path disables it.
func writeMetrics(path string, reg *prometheus.Registry, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	logger.Debug("metrics written", "path", path)

	return nil
}

// saveRun opens the configured store, saves the solved labels and closes it.
func saveRun(ctx context.Context, cfg config.Config, g *core.Graph, source core.VertexID) (int64, error) {
	s, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return s.SaveRun(ctx, cfg.Label, g, source)
}

// demoDocument is the graph used when no file is given: five vertices where
// the direct edge v0→v1 is beaten by the detour through v2.
func demoDocument() *graphfile.Document {
	return &graphfile.Document{
		Source: "v0",
		Edges: []graphfile.Edge{
			{From: "v0", To: "v1", Cost: 9},
			{From: "v0", To: "v2", Cost: 6},
			{From: "v0", To: "v3", Cost: 5},
			{From: "v0", To: "v4", Cost: 3},
			{From: "v2", To: "v1", Cost: 2},
			{From: "v2", To: "v3", Cost: 4},
		},
	}
}
