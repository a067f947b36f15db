package pathtree

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for the renderers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("pathtree: graph is nil")

	// ErrVertexNotFound indicates that the source handle is not in the graph.
	ErrVertexNotFound = errors.New("pathtree: vertex not found")

	// ErrCyclicLabels indicates predecessor labels that do not form a tree.
	ErrCyclicLabels = errors.New("pathtree: predecessor labels contain a cycle")
)

const (
	// DistancesHeader is the first line written by WriteDistances.
	DistancesHeader = "The shortest path from node:"

	indentUnit = "   "
)

// FormatDistance renders d in the shortest round-trip decimal form.
// +Inf renders as "+Inf".
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// WriteDistances writes DistancesHeader followed by one line per vertex,
// in handle order: "<source> to <name> is <distance>".
func WriteDistances(w io.Writer, g *core.Graph, source core.VertexID) error {
	if err := validate(g, source); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, DistancesHeader); err != nil {
		return err
	}
	from := g.Name(source)
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "%s to %s is %s\n", from, g.Name(v), FormatDistance(g.Dist(v))); err != nil {
			return err
		}
	}

	return nil
}

// frame is one pending line of the tree walk.
type frame struct {
	id    core.VertexID
	depth int
}

// WriteTree writes the predecessor tree rooted at source, one line per vertex:
// "<indent>Vertex <name> <distance>", indented by three spaces per depth.
//
// The walk is iterative and visits children in edge order. A vertex is a
// child of u when an edge u→v exists and Prev(v) == u; parallel u→v edges
// still print v once, at its first edge. Labels that would make the walk
// deeper than the vertex count yield ErrCyclicLabels.
func WriteTree(w io.Writer, g *core.Graph, source core.VertexID) error {
	if err := validate(g, source); err != nil {
		return err
	}

	limit := g.VertexCount()
	stack := []frame{{id: source}}
	// mark[v] == pass when v is already a child of the vertex being expanded.
	mark := make([]int, limit)
	var (
		f        frame
		children []core.VertexID
		pass     int
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth >= limit {
			return fmt.Errorf("%w: below %q", ErrCyclicLabels, g.Name(source))
		}

		if _, err := fmt.Fprintf(w, "%sVertex %s %s\n",
			strings.Repeat(indentUnit, f.depth), g.Name(f.id), FormatDistance(g.Dist(f.id))); err != nil {
			return err
		}

		pass++
		children = children[:0]
		for _, e := range g.Edges(f.id) {
			if g.Prev(e.To) == f.id && mark[e.To] != pass {
				mark[e.To] = pass
				children = append(children, e.To)
			}
		}
		// Reverse push so the first child is printed first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i], depth: f.depth + 1})
		}
	}

	return nil
}

func validate(g *core.Graph, source core.VertexID) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Has(source) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	return nil
}
