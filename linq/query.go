package linq

import (
	"github.com/kbukum/golinq/collections"
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/sequence"
)

// Query owns a sequence and the operations pending against it.
type Query struct {
	eng  *engine.Engine
	opts options
}

func newQuery(seq *sequence.Sequence, opts []Option) *Query {
	o := newOptions(opts)
	return &Query{eng: engine.New(seq, o.engineOptions()...), opts: o}
}

// From creates a query over a copy of items.
func From(items []any, opts ...Option) *Query {
	return newQuery(sequence.Of(items), opts)
}

// FromSlice creates a query over a copy of a typed slice.
func FromSlice[T any](items []T, opts ...Option) *Query {
	seq := sequence.WithCapacity(len(items))
	for _, v := range items {
		seq.Append(v)
	}
	return newQuery(seq, opts)
}

// Empty creates a query with no elements.
func Empty(opts ...Option) *Query {
	return newQuery(sequence.Empty(), opts)
}

// Range creates a query over count consecutive ints from start.
func Range(start, count int, opts ...Option) (*Query, error) {
	seq, err := operator.Range(start, count)
	if err != nil {
		return nil, err
	}
	return newQuery(seq, opts), nil
}

// Repeat creates a query over count copies of element.
func Repeat(element any, count int, opts ...Option) (*Query, error) {
	seq, err := operator.Repeat(element, count)
	if err != nil {
		return nil, err
	}
	return newQuery(seq, opts), nil
}

// Pending returns the number of recorded operations not yet run.
func (q *Query) Pending() int {
	return q.eng.Pending()
}

// Materialize runs every pending operation and returns q.
func (q *Query) Materialize() (*Query, error) {
	if _, err := q.drain(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Query) drain() (engine.Outcome, error) {
	return q.eng.Drain(q.opts.ctx)
}

func (q *Query) chain(op engine.Op) *Query {
	q.eng.Enqueue(op)
	return q
}

// immediate records op and drains, returning the value op produced.
func (q *Query) immediate(op engine.Op) (any, error) {
	q.eng.Enqueue(op)
	out, err := q.drain()
	if err != nil {
		return nil, err
	}
	if !out.Terminal {
		return nil, errors.Internal(nil).WithDetail("operator", op.Kind.String())
	}
	return out.Value, nil
}

// snapshot runs pending operations and returns a copy of the result.
func (q *Query) snapshot() (*sequence.Sequence, error) {
	if _, err := q.drain(); err != nil {
		return nil, err
	}
	return q.eng.Sequence(), nil
}

// ToArray runs pending operations and returns the elements.
func (q *Query) ToArray() ([]any, error) {
	seq, err := q.snapshot()
	if err != nil {
		return nil, err
	}
	return seq.Items(), nil
}

// ToList runs pending operations and returns the elements as a List.
func (q *Query) ToList() (*collections.List, error) {
	items, err := q.ToArray()
	if err != nil {
		return nil, err
	}
	return collections.NewList(items...), nil
}

// ToDictionary runs pending operations and indexes the elements by key. A
// nil value selector stores the element itself. Later elements with an
// equal key overwrite earlier ones.
func (q *Query) ToDictionary(key, value operator.KeySelector) (*collections.Dictionary, error) {
	if key == nil {
		return nil, errors.IllegalArgument("toDictionary", "key selector is required")
	}
	seq, err := q.snapshot()
	if err != nil {
		return nil, err
	}
	d := collections.NewDictionary()
	for _, v := range seq.All() {
		val := v
		if value != nil {
			val = value(v)
		}
		if err := d.Set(key(v), val); err != nil {
			return nil, err
		}
	}
	return d, nil
}
