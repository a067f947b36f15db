package graphfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphfile"
)

func TestLoad_Demo(t *testing.T) {
	doc, err := graphfile.Load("testdata/demo.yaml")
	require.NoError(t, err)
	assert.Equal(t, "v0", doc.Source)
	require.Len(t, doc.Edges, 6)
	assert.Equal(t, graphfile.Edge{From: "v2", To: "v1", Cost: 2}, doc.Edges[4])

	g, source, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, "v0", g.Name(source))

	_, err = dijkstra.Solve(g, source)
	require.NoError(t, err)
	v1, _ := g.Lookup("v1")
	assert.Equal(t, 8.0, g.Dist(v1))
}

func TestDecode_JSON(t *testing.T) {
	doc, err := graphfile.Decode(strings.NewReader(
		`{"source": "a", "vertices": ["a", "z"], "edges": [{"from": "a", "to": "b", "cost": 0.5}]}`))
	require.NoError(t, err)

	g, source, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(0), source)
	z, ok := g.Lookup("z")
	require.True(t, ok)
	assert.Equal(t, core.VertexID(1), z, "declared vertices come before edge-only ones")
	assert.Equal(t, 3, g.VertexCount())
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, graphfile.ErrEmptyDocument)

	_, err = graphfile.Decode(strings.NewReader("source: a\nweights: [1]\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = graphfile.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := (&graphfile.Document{}).Build()
	assert.ErrorIs(t, err, graphfile.ErrNoSource)

	_, _, err = (&graphfile.Document{Source: "x", Vertices: []string{"a"}}).Build()
	assert.ErrorIs(t, err, graphfile.ErrUnknownSource)

	_, _, err = (&graphfile.Document{Source: "a", Edges: []graphfile.Edge{{From: "a", To: "b", Cost: -2}}}).Build()
	assert.ErrorIs(t, err, core.ErrBadCost)

	_, _, err = (&graphfile.Document{Source: "a", Edges: []graphfile.Edge{{From: "a", To: "a", Cost: 1}}}).Build()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, _, err = (&graphfile.Document{
		Source: "a", AllowLoops: true,
		Edges: []graphfile.Edge{{From: "a", To: "a", Cost: 1}},
	}).Build()
	assert.NoError(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := graphfile.Load("testdata/demo.yaml")
	require.NoError(t, err)
	g, source, err := doc.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, graphfile.FromGraph(g, source)))

	again, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2", "v3", "v4"}, again.Vertices)
	assert.Equal(t, doc.Edges, again.Edges)
	assert.Equal(t, "v0", again.Source)
}
