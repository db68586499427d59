package linq

import (
	"context"

	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
)

// Option configures a Query.
type Option func(*options)

type options struct {
	ctx        context.Context
	comparator compare.Comparator
	mode       operator.SequenceEqualMode
	observer   engine.Observer
	log        *logger.Logger
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) engineOptions() []engine.Option {
	eo := []engine.Option{
		engine.WithComparator(o.comparator),
		engine.WithSequenceEqualMode(o.mode),
		engine.WithLogger(o.log),
	}
	if o.observer != nil {
		eo = append(eo, engine.WithObserver(o.observer))
	}
	return eo
}

// WithComparator replaces loose equality for distinct, contains, the set
// operators and sequenceEqual. A comparator that also implements
// compare.Ordering orders max and min.
func WithComparator(c compare.Comparator) Option {
	return func(o *options) { o.comparator = c }
}

// WithSequenceEqualMode selects positional (default) or set comparison for
// SequenceEqual.
func WithSequenceEqualMode(m operator.SequenceEqualMode) Option {
	return func(o *options) { o.mode = m }
}

// WithObserver receives a report after every drain.
func WithObserver(obs engine.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger sets the logger drains are reported to.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithContext sets the context drains hand to observers.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
