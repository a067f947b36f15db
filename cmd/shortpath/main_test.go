package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/store"
)

// noEnv is a getenv with nothing set.
func noEnv(string) string { return "" }

const demoOutput = `The shortest path from node:
v0 to v0 is 0
v0 to v1 is 8
v0 to v2 is 6
v0 to v3 is 5
v0 to v4 is 3
Vertex v0 0
   Vertex v2 6
      Vertex v1 8
   Vertex v3 5
   Vertex v4 3
`

func TestRun_Demo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), nil, noEnv, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, demoOutput, stdout.String())
	assert.Contains(t, stderr.String(), `msg="reachable size" source=v0 reachable=5`)
}

func TestRun_SourceOverrideAndNoTree(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-source", "v2", "-tree=false"}, noEnv, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, `The shortest path from node:
v2 to v0 is +Inf
v2 to v1 is 2
v2 to v2 is 0
v2 to v3 is 4
v2 to v4 is +Inf
`, stdout.String())
}

func TestRun_GraphFileMetricsAndStore(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(graphPath, []byte(
		"source: a\nedges:\n  - {from: a, to: b, cost: 1.5}\n"), 0o600))
	metricsPath := filepath.Join(dir, "shortpath.prom")
	dbPath := filepath.Join(dir, "runs.db")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-graph", graphPath,
		"-metrics-out", metricsPath,
		"-store-driver", "sqlite", "-store-dsn", dbPath,
		"-label", "file",
	}, noEnv, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "a to b is 1.5\n")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `shortpath_solves_total{outcome="ok"} 1`)

	s, err := store.Open(context.Background(), store.DriverSQLite, dbPath)
	require.NoError(t, err)
	defer s.Close()
	saved, err := s.LoadRun(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "file", saved.Label)
	assert.Len(t, saved.Labels, 2)
}

func TestRun_Failures(t *testing.T) {
	cases := map[string][]string{
		"unknown source": {"-source", "nowhere"},
		"missing file":   {"-graph", filepath.Join(t.TempDir(), "missing.yaml")},
		"bad config":     {"-log-format", "xml"},
	}
	for name, args := range cases {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(context.Background(), args, noEnv, &stdout, &stderr), name)
		assert.Empty(t, stdout.String(), name)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, noEnv, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-graph")
}

func TestRun_FailedSolveStillWritesMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "shortpath.prom")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-metrics-out", metricsPath}, noEnv, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "context canceled")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `shortpath_solves_total{outcome="error"} 1`)
	assert.NotContains(t, string(prom), `outcome="ok"`)
}
