// Package observability connects query drains to OpenTelemetry.
//
// DrainTracer records one span per drain and QueryMetrics counts drains,
// operators, short circuits and failures. Both implement engine.Observer;
// Observers combines several.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("golinq"))
//	defer tp.Shutdown(ctx)
//	q := linq.From(items, linq.WithObserver(observability.NewDrainTracer(nil)))
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("golinq"))
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewQueryMetrics(observability.Meter(observability.InstrumentationName))
//
// Health:
//
//	health := observability.NewServiceHealth("golinq", version.Short())
//	health.AddComponent(observability.CheckEngine(ctx))
package observability
