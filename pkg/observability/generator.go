package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/plaenen/ulid/pkg/ulid"
)

// Generator is anything that hands out identifiers one at a time, such as
// *ulid.MonotonicGenerator.
type Generator interface {
	Next() (ulid.ULID, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func() (ulid.ULID, error)

func (f GeneratorFunc) Next() (ulid.ULID, error) { return f() }

// InstrumentedGenerator wraps a Generator with a span, metrics and error logging.
type InstrumentedGenerator struct {
	next Generator
	name string
	tel  *Telemetry
}

// NewInstrumentedGenerator wraps next. name labels its spans and metrics.
func NewInstrumentedGenerator(tel *Telemetry, name string, next Generator) *InstrumentedGenerator {
	return &InstrumentedGenerator{
		next: next,
		name: name,
		tel:  tel,
	}
}

// Next generates one identifier.
func (g *InstrumentedGenerator) Next(ctx context.Context) (ulid.ULID, error) {
	start := time.Now()
	ctx, span := StartSpan(ctx, g.tel.Tracer(instrumentationName), "ulid.Next",
		WithAttributes(attribute.String("generator", g.name)),
	)

	id, err := g.next.Next()
	g.tel.Metrics.RecordGenerate(ctx, g.name, time.Since(start), err)

	if err != nil {
		g.tel.Logger.WarnContext(ctx, "identifier generation failed",
			slog.String("generator", g.name),
			slog.String("error_type", ErrorType(err)),
			slog.String("error", err.Error()),
		)
	} else {
		span.SetAttributes(attribute.String("ulid", id.String()))
	}
	EndSpan(span, err)

	return id, err
}
