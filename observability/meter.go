package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// QueryMetrics holds the instruments drains and plan requests record into.
type QueryMetrics struct {
	drainTotal        metric.Int64Counter
	operatorTotal     metric.Int64Counter
	shortCircuitTotal metric.Int64Counter
	errorTotal        metric.Int64Counter
	drainDuration     metric.Float64Histogram
	requestTotal      metric.Int64Counter
	requestDuration   metric.Float64Histogram
	requestActive     metric.Int64UpDownCounter
}

// NewQueryMetrics creates metric instruments on the given meter.
func NewQueryMetrics(meter metric.Meter) (*QueryMetrics, error) {
	var (
		m   QueryMetrics
		err error
	)
	if m.drainTotal, err = meter.Int64Counter("linq.drain.total",
		metric.WithDescription("Total number of non-empty drains"),
	); err != nil {
		return nil, fmt.Errorf("creating linq.drain.total counter: %w", err)
	}
	if m.operatorTotal, err = meter.Int64Counter("linq.operator.total",
		metric.WithDescription("Operators executed, by operator"),
	); err != nil {
		return nil, fmt.Errorf("creating linq.operator.total counter: %w", err)
	}
	if m.shortCircuitTotal, err = meter.Int64Counter("linq.drain.short_circuit",
		metric.WithDescription("Drains that discarded queued operators"),
	); err != nil {
		return nil, fmt.Errorf("creating linq.drain.short_circuit counter: %w", err)
	}
	if m.errorTotal, err = meter.Int64Counter("linq.drain.errors",
		metric.WithDescription("Failed drains, by error code and operator"),
	); err != nil {
		return nil, fmt.Errorf("creating linq.drain.errors counter: %w", err)
	}
	if m.drainDuration, err = meter.Float64Histogram("linq.drain.duration",
		metric.WithDescription("Duration of drains in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating linq.drain.duration histogram: %w", err)
	}
	if m.requestTotal, err = meter.Int64Counter("http.request.total",
		metric.WithDescription("Total number of plan requests"),
	); err != nil {
		return nil, fmt.Errorf("creating http.request.total counter: %w", err)
	}
	if m.requestDuration, err = meter.Float64Histogram("http.request.duration",
		metric.WithDescription("Duration of plan requests in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.request.duration histogram: %w", err)
	}
	if m.requestActive, err = meter.Int64UpDownCounter("http.request.active",
		metric.WithDescription("Number of plan requests in flight"),
	); err != nil {
		return nil, fmt.Errorf("creating http.request.active counter: %w", err)
	}
	return &m, nil
}

// ObserveDrain implements engine.Observer.
func (m *QueryMetrics) ObserveDrain(ctx context.Context, r engine.DrainReport) {
	m.drainTotal.Add(ctx, 1)
	for _, k := range r.Operators {
		m.operatorTotal.Add(ctx, 1, metric.WithAttributes(AttrOperator.String(k.String())))
	}
	if r.ShortCircuit() {
		m.shortCircuitTotal.Add(ctx, 1)
	}
	if r.Err != nil {
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(
			AttrErrorCode.String(errorCode(r.Err)),
			AttrOperator.String(r.Failed.String()),
		))
	}
	m.drainDuration.Record(ctx, r.Duration.Seconds())
}

// RecordRequestStart increments the in-flight request count.
func (m *QueryMetrics) RecordRequestStart(ctx context.Context) {
	m.requestActive.Add(ctx, 1)
}

// RecordRequestEnd decrements in-flight requests and records the completed request.
func (m *QueryMetrics) RecordRequestEnd(ctx context.Context, route string, status int, duration time.Duration) {
	m.requestActive.Add(ctx, -1)
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("route", route),
	))
}
