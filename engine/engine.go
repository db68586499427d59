package engine

import (
	"context"
	"time"

	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/sequence"
)

// Outcome is the result of a drain.
type Outcome struct {
	// Value is the result of the immediate operator that ended the drain.
	Value any
	// Terminal is true when an immediate operator produced Value.
	Terminal bool
	// Executed counts the operators that completed.
	Executed int
	// Discarded counts the descriptors dropped without running.
	Discarded int
}

// DrainReport describes one drain for observers.
type DrainReport struct {
	Started   time.Time
	Duration  time.Duration
	Operators []Kind // completed, in order
	Failed    Kind   // KindInvalid unless Err is set
	Terminal  bool
	Discarded int
	Elements  int // sequence size after the drain
	Err       error
}

// ShortCircuit reports whether descriptors were left unexecuted.
func (r DrainReport) ShortCircuit() bool {
	return r.Discarded > 0
}

// Observer receives a report after every non-empty drain.
type Observer interface {
	ObserveDrain(ctx context.Context, r DrainReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, r DrainReport)

// ObserveDrain calls f(ctx, r).
func (f ObserverFunc) ObserveDrain(ctx context.Context, r DrainReport) { f(ctx, r) }

// Option configures an Engine.
type Option func(*Engine)

// WithComparator sets the equality used by distinct, contains and the set
// operators. If c also implements compare.Ordering it orders max and min.
func WithComparator(c compare.Comparator) Option {
	return func(e *Engine) { e.settings.Comparator = c }
}

// WithSequenceEqualMode selects how sequenceEqual treats multiplicity.
func WithSequenceEqualMode(m operator.SequenceEqualMode) Option {
	return func(e *Engine) { e.settings.SequenceEqual = m }
}

// WithObserver sets the drain observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithLogger sets the logger drains are reported to at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine owns a sequence and the queue of operations pending against it.
type Engine struct {
	seq      *sequence.Sequence
	queue    []Op
	settings Settings
	observer Observer
	log      *logger.Logger
}

// New creates an engine over seq, which it takes ownership of.
func New(seq *sequence.Sequence, opts ...Option) *Engine {
	if seq == nil {
		seq = sequence.Empty()
	}
	e := &Engine{seq: seq}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get("engine")
	}
	return e
}

// Settings returns the behaviour shared by every operator of this engine.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Enqueue appends op to the queue without running it.
func (e *Engine) Enqueue(op Op) {
	e.queue = append(e.queue, op)
}

// Pending returns the number of queued descriptors.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Sequence returns a copy of the current sequence. Pending operations are
// not applied.
func (e *Engine) Sequence() *sequence.Sequence {
	return e.seq.Copy()
}

// Drain runs queued descriptors in order until the queue is empty or an
// immediate operator produces a value. ctx is handed to the observer.
func (e *Engine) Drain(ctx context.Context) (Outcome, error) {
	if len(e.queue) == 0 {
		return Outcome{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	report := DrainReport{
		Started:   time.Now(),
		Operators: make([]Kind, 0, len(e.queue)),
	}
	var out Outcome
	for len(e.queue) > 0 {
		op := e.queue[0]
		e.queue = e.queue[1:]

		next, value, err := op.Apply(e.seq, e.settings)
		if err != nil {
			report.Failed = op.Kind
			report.Err = err
			break
		}
		report.Operators = append(report.Operators, op.Kind)
		if !op.Kind.Chainable() {
			out.Value = value
			out.Terminal = true
			break
		}
		e.seq = next
	}

	out.Executed = len(report.Operators)
	out.Discarded = len(e.queue)
	e.queue = nil

	report.Duration = time.Since(report.Started)
	report.Terminal = out.Terminal
	report.Discarded = out.Discarded
	report.Elements = e.seq.Count()
	e.report(ctx, report)

	return out, report.Err
}

func (e *Engine) report(ctx context.Context, r DrainReport) {
	if e.observer != nil {
		e.observer.ObserveDrain(ctx, r)
	}
	if !e.log.DebugEnabled() {
		return
	}
	names := make([]string, len(r.Operators))
	for i, k := range r.Operators {
		names[i] = k.String()
	}
	fields := logger.Fields(
		logger.FieldOperators, names,
		logger.FieldExecuted, len(r.Operators),
		logger.FieldDiscarded, r.Discarded,
		logger.FieldShortCircuit, r.ShortCircuit(),
		logger.FieldElements, r.Elements,
		logger.FieldDuration, r.Duration.Milliseconds(),
	)
	if r.Err != nil {
		fields[logger.FieldOperator] = r.Failed.String()
		e.log.WithContext(ctx).Debug("drain failed", logger.MergeWithError(fields, r.Err))
		return
	}
	e.log.WithContext(ctx).Debug("drain finished", fields)
}
