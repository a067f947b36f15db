package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

func TestAddVertex_AssignsDenseHandles(t *testing.T) {
	g := core.NewGraph()
	a, err := g.AddVertex("A")
	require.NoError(t, err)
	b, err := g.AddVertex("B")
	require.NoError(t, err)

	assert.Equal(t, core.VertexID(0), a)
	assert.Equal(t, core.VertexID(1), b)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []core.VertexID{a, b}, g.Vertices())
	assert.Equal(t, "B", g.Name(b))

	id, ok := g.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, a, id)
}

func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddVertex("A")
	require.NoError(t, err)
	id, err := g.AddVertex("A")
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.Equal(t, core.NoVertex, id)
}

func TestNewVertex_IsUnreached(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.AddVertex("A")

	assert.True(t, math.IsInf(g.Dist(id), 1))
	assert.Equal(t, core.NoVertex, g.Prev(id))
}

func TestAddEdge_KeepsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "C", 2))
	require.NoError(t, g.Connect("A", "B", 1))

	a, _ := g.Lookup("A")
	b, _ := g.Lookup("B")
	c, _ := g.Lookup("C")
	assert.Equal(t, []core.Edge{{To: c, Cost: 2}, {To: b, Cost: 1}}, g.Edges(a))
	assert.Empty(t, g.Edges(b))
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a), "edges are directed")
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")

	cases := []struct {
		name     string
		from, to core.VertexID
		cost     float64
		want     error
	}{
		{"unknown from", 7, b, 1, core.ErrVertexNotFound},
		{"unknown to", a, -3, 1, core.ErrVertexNotFound},
		{"negative", a, b, -1, core.ErrBadCost},
		{"nan", a, b, math.NaN(), core.ErrBadCost},
		{"inf", a, b, math.Inf(1), core.ErrBadCost},
		{"loop", a, a, 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.cost), tc.want)
		})
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect("A", "B", 1))
	assert.ErrorIs(t, g.Connect("A", "B", 2), core.ErrMultiEdgeNotAllowed)

	mg := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, mg.Connect("A", "B", 1))
	require.NoError(t, mg.Connect("A", "B", 2))
	require.NoError(t, mg.Connect("A", "A", 0))
	assert.Equal(t, 3, mg.EdgeCount())
	assert.True(t, mg.Multigraph())
	assert.True(t, mg.Looped())
}

func TestConnect_EmptyName(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.Connect("", "B", 1), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestLabels_SetResetSnapshot(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	a, _ := g.AddVertex("A")
	b, _ := g.AddVertex("B")

	g.SetDist(b, 4)
	g.SetPrev(b, a)
	g.SetDist(42, 1) // ignored

	snap := g.Labels()
	assert.Equal(t, []float64{math.Inf(1), 4}, snap.Dist)
	assert.Equal(t, []core.VertexID{core.NoVertex, a}, snap.Prev)

	g.ResetLabels()
	assert.True(t, math.IsInf(g.Dist(b), 1))
	assert.Equal(t, core.NoVertex, g.Prev(b))
	assert.Equal(t, 4.0, snap.Dist[b], "snapshot must not alias the graph")

	assert.True(t, math.IsInf(g.Dist(42), 1))
	assert.Equal(t, core.NoVertex, g.Prev(42))
	assert.Equal(t, "", g.Name(42))
	assert.Nil(t, g.Edges(42))
}
