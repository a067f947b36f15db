// Package telemetry wraps the solver in OpenTelemetry spans.
//
// Each Solve call becomes one span named "shortpath.solve" carrying:
//   - shortpath.source, shortpath.vertices, shortpath.edges (set at start)
//   - shortpath.reachable, shortpath.settled, shortpath.pops,
//     shortpath.stale_pops, shortpath.relaxations (set at end)
//
// A failed solve sets the span status to codes.Error and records the error.
//
// Usage:
//
//	tracer := otel.Tracer("shortpath")
//	stats, err := telemetry.Solve(ctx, tracer, g, source)
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// SpanName is the name of the span created around each solve.
const SpanName = "shortpath.solve"

// Attribute keys.
const (
	AttrSource      = attribute.Key("shortpath.source")
	AttrVertices    = attribute.Key("shortpath.vertices")
	AttrEdges       = attribute.Key("shortpath.edges")
	AttrReachable   = attribute.Key("shortpath.reachable")
	AttrSettled     = attribute.Key("shortpath.settled")
	AttrPops        = attribute.Key("shortpath.pops")
	AttrStalePops   = attribute.Key("shortpath.stale_pops")
	AttrRelaxations = attribute.Key("shortpath.relaxations")
)

// Solve runs dijkstra.Solve inside a span started from ctx. The solver itself
// is not interruptible; a context that is already done fails fast with its
// error and no labels are touched.
func Solve(ctx context.Context, tracer trace.Tracer, g *core.Graph, source core.VertexID, opts ...dijkstra.Option) (dijkstra.Stats, error) {
	ctx, span := tracer.Start(ctx, SpanName)
	defer span.End()

	if g != nil {
		span.SetAttributes(
			AttrSource.String(g.Name(source)),
			AttrVertices.Int(g.VertexCount()),
			AttrEdges.Int(g.EdgeCount()),
		)
	}

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return dijkstra.Stats{}, err
	}

	stats, err := dijkstra.Solve(g, source, opts...)
	span.SetAttributes(
		AttrReachable.Int(stats.Reachable),
		AttrSettled.Int(stats.Settled),
		AttrPops.Int(stats.Pops),
		AttrStalePops.Int(stats.StalePops),
		AttrRelaxations.Int(stats.Relaxations),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return stats, err
	}
	span.SetStatus(codes.Ok, "")

	return stats, nil
}
