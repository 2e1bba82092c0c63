package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records job throughput through the OpenTelemetry metric SDK,
// exported on the default Prometheus registry.
type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	jobCounter    otelmetric.Int64Counter
	jobDuration   otelmetric.Float64Histogram
}

// New builds the provider. A zero Observability is returned alongside the
// error so callers can keep running without metrics.
func New(serviceName string) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return &Observability{}, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	jobCounter, err := meter.Int64Counter(
		"deck.jobs.processed",
		otelmetric.WithDescription("Number of deck jobs processed"),
	)
	if err != nil {
		return &Observability{meterProvider: provider}, fmt.Errorf("create job counter: %w", err)
	}

	jobDuration, err := meter.Float64Histogram(
		"deck.jobs.duration",
		otelmetric.WithDescription("Deck job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return &Observability{meterProvider: provider}, fmt.Errorf("create job histogram: %w", err)
	}

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		jobCounter:    jobCounter,
		jobDuration:   jobDuration,
	}, nil
}

// RecordJob records one finished job. Safe on a nil or zero receiver.
func (o *Observability) RecordJob(ctx context.Context, taskType, status string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	)
	if o.jobCounter != nil {
		o.jobCounter.Add(ctx, 1, attrs)
	}
	if o.jobDuration != nil {
		o.jobDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil || o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
