package dfs_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/dfs"
)

// BenchmarkReachable_Chain10000 measures the scan on a 10,000-vertex chain.
// The graph is built once; only the scan is timed.
func BenchmarkReachable_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Reachable(g, 0)
	}
}
