// Package graphfile reads graph documents from YAML (or JSON, which YAML
// accepts as a subset) and turns them into a core.Graph plus a source handle.
//
// Document layout:
//
//	source: v0
//	vertices: [v0, v1, island]     # optional; fixes handle order, allows isolated vertices
//	allow_loops: false
//	allow_multi_edges: false
//	edges:
//	  - {from: v0, to: v1, cost: 9}
//
// Unknown keys are rejected. Vertices named only by edges are added in order
// of first mention, after the declared ones.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for document decoding and building.
var (
	// ErrEmptyDocument indicates an input with no YAML document at all.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrNoSource indicates a document without a source vertex.
	ErrNoSource = errors.New("graphfile: source is not set")

	// ErrUnknownSource indicates a source that names no vertex of the graph.
	ErrUnknownSource = errors.New("graphfile: source is not a vertex of the graph")
)

// Edge is one directed edge of a document.
type Edge struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Document is the decoded form of a graph file.
type Document struct {
	Source          string   `yaml:"source"`
	Vertices        []string `yaml:"vertices,omitempty"`
	Edges           []Edge   `yaml:"edges"`
	AllowLoops      bool     `yaml:"allow_loops,omitempty"`
	AllowMultiEdges bool     `yaml:"allow_multi_edges,omitempty"`
}

// Decode reads one document from r. Unknown fields are an error.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Build creates the graph described by doc and resolves its source.
// Edge validation (costs, loops, multi-edges) is the graph's own.
func (d *Document) Build() (*core.Graph, core.VertexID, error) {
	if d.Source == "" {
		return nil, core.NoVertex, ErrNoSource
	}

	var gopts []core.GraphOption
	if d.AllowLoops {
		gopts = append(gopts, core.WithLoops())
	}
	if d.AllowMultiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}

	specs := make([]builder.EdgeSpec, len(d.Edges))
	for i, e := range d.Edges {
		specs[i] = builder.EdgeSpec{From: e.From, To: e.To, Cost: e.Cost}
	}
	g, err := builder.BuildGraph(gopts, nil, builder.Vertices(d.Vertices...), builder.Edges(specs))
	if err != nil {
		return nil, core.NoVertex, fmt.Errorf("graphfile: %w", err)
	}

	source, ok := g.Lookup(d.Source)
	if !ok {
		return nil, core.NoVertex, fmt.Errorf("%w: %q", ErrUnknownSource, d.Source)
	}

	return g, source, nil
}

// FromGraph snapshots g as a document rooted at source. Every vertex is
// declared, so handle order survives a round trip.
func FromGraph(g *core.Graph, source core.VertexID) *Document {
	doc := &Document{
		Source:          g.Name(source),
		AllowLoops:      g.Looped(),
		AllowMultiEdges: g.Multigraph(),
		Vertices:        make([]string, 0, g.VertexCount()),
		Edges:           make([]Edge, 0, g.EdgeCount()),
	}
	for _, u := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, g.Name(u))
		for _, e := range g.Edges(u) {
			doc.Edges = append(doc.Edges, Edge{From: g.Name(u), To: g.Name(e.To), Cost: e.Cost})
		}
	}

	return doc
}
