package dfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dfs"
)

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_, _ = g.AddVertex(fmt.Sprintf("N%d", i))
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(core.VertexID(i), core.VertexID(i+1), 1)
	}

	return g
}

// mustID resolves a vertex name or fails the test.
func mustID(t *testing.T, g *core.Graph, name string) core.VertexID {
	t.Helper()
	id, ok := g.Lookup(name)
	require.True(t, ok, "vertex %q missing", name)

	return id
}

func TestReachable_NilGraph(t *testing.T) {
	set, err := dfs.Reachable(nil, 0)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestReachable_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	set, err := dfs.Reachable(g, 3)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestReachable_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	x, _ := g.AddVertex("X")

	set, err := dfs.Reachable(g, x)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Has(x))
}

func TestReachable_DirectedOnly(t *testing.T) {
	// A→B→C, D→A: D is not reachable from A.
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 1))
	require.NoError(t, g.Connect("B", "C", 1))
	require.NoError(t, g.Connect("D", "A", 1))
	_, err := g.AddVertex("E")
	require.NoError(t, err)

	set, err := dfs.Reachable(g, mustID(t, g, "A"))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.False(t, set.Has(mustID(t, g, "D")))
	assert.False(t, set.Has(mustID(t, g, "E")))

	fromC, err := dfs.Reachable(g, mustID(t, g, "C"))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{mustID(t, g, "C")}, fromC.IDs())
}

func TestReachable_CycleTerminates(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.Connect("a", "b", 1))
	require.NoError(t, g.Connect("b", "c", 1))
	require.NoError(t, g.Connect("c", "a", 1))
	require.NoError(t, g.Connect("b", "b", 0))

	set, err := dfs.Reachable(g, mustID(t, g, "b"))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestReachable_DeepChainNoRecursionLimit(t *testing.T) {
	const n = 200000
	g := buildChain(n)

	set, err := dfs.Reachable(g, 0)
	require.NoError(t, err)
	assert.Equal(t, n, set.Len())

	mid, err := dfs.Reachable(g, n/2)
	require.NoError(t, err)
	assert.Equal(t, n/2, mid.Len())
}

func TestReachable_PreOrderMatchesRecursiveWalk(t *testing.T) {
	// Diamond: A→B, A→C, B→D, C→D, D→E, D→F.
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		require.NoError(t, g.Connect(e[0], e[1], 1))
	}

	var order []string
	_, err := dfs.Reachable(g, mustID(t, g, "A"), dfs.WithOnVisit(func(id core.VertexID) error {
		order = append(order, g.Name(id))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, order)
}

func TestReachable_HookErrorAborts(t *testing.T) {
	g := buildChain(5)
	stop := errors.New("stop")
	visits := 0

	set, err := dfs.Reachable(g, 0, dfs.WithOnVisit(func(id core.VertexID) error {
		visits++
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, set)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

func TestReachable_DoesNotTouchLabels(t *testing.T) {
	g := buildChain(3)
	before := g.Labels()

	_, err := dfs.Reachable(g, 0)
	require.NoError(t, err)
	assert.Equal(t, before, g.Labels())
}
