package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/metrics"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.Observe(dijkstra.Stats{Reachable: 5, Pops: 5, Relaxations: 5}, 2*time.Millisecond, nil)
	rec.Observe(dijkstra.Stats{Reachable: 4, Pops: 5, StalePops: 1, Relaxations: 4}, time.Millisecond, nil)
	rec.Observe(dijkstra.Stats{Reachable: 3, Pops: 1}, time.Millisecond, errors.New("hook"))

	expected := `
# HELP shortpath_solves_total Number of finished shortest-path solves by outcome
# TYPE shortpath_solves_total counter
shortpath_solves_total{outcome="error"} 1
shortpath_solves_total{outcome="ok"} 2
# HELP shortpath_frontier_pops_total Frontier extractions, stale duplicates included
# TYPE shortpath_frontier_pops_total counter
shortpath_frontier_pops_total 11
# HELP shortpath_stale_pops_total Frontier extractions of vertices that were already settled
# TYPE shortpath_stale_pops_total counter
shortpath_stale_pops_total 1
# HELP shortpath_relaxations_total Edges that strictly lowered a distance label
# TYPE shortpath_relaxations_total counter
shortpath_relaxations_total 9
# HELP shortpath_reachable_vertices Size of the reachable set of the most recent solve
# TYPE shortpath_reachable_vertices gauge
shortpath_reachable_vertices 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"shortpath_solves_total",
		"shortpath_frontier_pops_total",
		"shortpath_stale_pops_total",
		"shortpath_relaxations_total",
		"shortpath_reachable_vertices",
	))

	n, err := testutil.GatherAndCount(reg, "shortpath_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	hist := findFamily(t, reg, "shortpath_solve_duration_seconds")
	assert.Equal(t, dto.MetricType_HISTOGRAM, hist.GetType())
	require.Len(t, hist.GetMetric(), 1)
	assert.Equal(t, uint64(3), hist.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.004, hist.GetMetric()[0].GetHistogram().GetSampleSum(), 1e-9)
}

// findFamily gathers reg and returns the family called name.
func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	require.Failf(t, "metric family missing", "%s", name)

	return nil
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
