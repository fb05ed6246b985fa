package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/plaenen/ulid/pkg/ulid"
)

// Metrics holds the metric instruments for identifier generation
type Metrics struct {
	Generated        metric.Int64Counter
	Errors           metric.Int64Counter
	GenerateDuration metric.Float64Histogram
}

// NewMetrics creates all metric instruments
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.Generated, err = meter.Int64Counter(
		"ulid.generated",
		metric.WithDescription("Total identifiers generated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ulid.generated: %w", err)
	}

	m.Errors, err = meter.Int64Counter(
		"ulid.errors",
		metric.WithDescription("Total failed generation attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ulid.errors: %w", err)
	}

	m.GenerateDuration, err = meter.Float64Histogram(
		"ulid.generate.duration",
		metric.WithDescription("Generation latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ulid.generate.duration: %w", err)
	}

	return m, nil
}

// RecordGenerate records one generation attempt
func (m *Metrics) RecordGenerate(ctx context.Context, generator string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("generator", generator),
	}

	m.GenerateDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if err != nil {
		errorAttrs := append(attrs, attribute.String("error_type", ErrorType(err)))
		m.Errors.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
		return
	}

	m.Generated.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// ErrorType classifies a generation error for metric attributes.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ulid.ErrRandomOverflow):
		return "random_overflow"
	case errors.Is(err, ulid.ErrTimestampOutOfRange):
		return "timestamp_out_of_range"
	default:
		return "entropy"
	}
}
