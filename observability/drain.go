package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/logger"
)

// DrainTracer records a span for every drain, timed from the report.
type DrainTracer struct {
	tracer trace.Tracer
}

// NewDrainTracer creates a DrainTracer. A nil tracer uses the global provider.
func NewDrainTracer(tracer trace.Tracer) *DrainTracer {
	if tracer == nil {
		tracer = Tracer(InstrumentationName)
	}
	return &DrainTracer{tracer: tracer}
}

// ObserveDrain implements engine.Observer.
func (t *DrainTracer) ObserveDrain(ctx context.Context, r engine.DrainReport) {
	attrs := []attribute.KeyValue{
		AttrOperators.StringSlice(operatorNames(r.Operators)),
		AttrExecuted.Int(len(r.Operators)),
		AttrDiscarded.Int(r.Discarded),
		AttrShortCircuit.Bool(r.ShortCircuit()),
		AttrTerminal.Bool(r.Terminal),
		AttrElements.Int(r.Elements),
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, AttrRequestID.String(id))
	}

	_, span := t.tracer.Start(ctx, SpanDrain,
		trace.WithTimestamp(r.Started),
		trace.WithAttributes(attrs...),
	)
	if r.Err != nil {
		span.SetAttributes(AttrFailedOperator.String(r.Failed.String()), AttrErrorCode.String(errorCode(r.Err)))
		span.RecordError(r.Err)
		span.SetStatus(codes.Error, r.Err.Error())
	}
	span.End(trace.WithTimestamp(r.Started.Add(r.Duration)))
}

func operatorNames(kinds []engine.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return string(errors.ErrCodeInternal)
}

// Observers fans a report out to every non-nil observer in order.
func Observers(obs ...engine.Observer) engine.Observer {
	list := make([]engine.Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return engine.ObserverFunc(func(ctx context.Context, r engine.DrainReport) {
		for _, o := range list {
			o.ObserveDrain(ctx, r)
		}
	})
}
