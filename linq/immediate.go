package linq

import (
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/operator"
)

func optional[T any](fns []T) T {
	var zero T
	if len(fns) == 0 {
		return zero
	}
	return fns[0]
}

// Sum adds the elements, or their projections through sel.
func (q *Query) Sum(sel ...operator.Selector) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindSum, Selector: optional(sel)})
}

// Average returns the mean of the elements, or of their projections.
func (q *Query) Average(sel ...operator.Selector) (float64, error) {
	v, err := q.immediate(engine.Op{Kind: engine.KindAverage, Selector: optional(sel)})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Max returns the greatest element, or projection.
func (q *Query) Max(sel ...operator.Selector) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindMax, Selector: optional(sel)})
}

// Min returns the least element, or projection.
func (q *Query) Min(sel ...operator.Selector) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindMin, Selector: optional(sel)})
}

// Count returns how many elements pred matches, or all of them.
func (q *Query) Count(pred ...operator.Predicate) (int, error) {
	v, err := q.immediate(engine.Op{Kind: engine.KindCount, Predicate: optional(pred)})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Aggregate folds fn over the elements, seeded with the first.
func (q *Query) Aggregate(fn operator.Accumulator) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindAggregate, Accumulator: fn})
}

// All reports whether pred matches every element.
func (q *Query) All(pred operator.Predicate) (bool, error) {
	return q.boolean(engine.Op{Kind: engine.KindAll, Predicate: pred})
}

// Any reports whether pred matches some element, or whether there is any
// element when pred is omitted.
func (q *Query) Any(pred ...operator.Predicate) (bool, error) {
	return q.boolean(engine.Op{Kind: engine.KindAny, Predicate: optional(pred)})
}

// Contains reports whether some element equals value.
func (q *Query) Contains(value any) (bool, error) {
	return q.boolean(engine.Op{Kind: engine.KindContains, Value: value})
}

// ElementAt returns the element at index.
func (q *Query) ElementAt(index int) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindElementAt, Index: index})
}

// First returns the first element pred matches, or the first element.
func (q *Query) First(pred ...operator.Predicate) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindFirst, Predicate: optional(pred)})
}

// Last returns the last element pred matches, or the last element.
func (q *Query) Last(pred ...operator.Predicate) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindLast, Predicate: optional(pred)})
}

// Single returns the only element pred matches, or the only element.
func (q *Query) Single(pred ...operator.Predicate) (any, error) {
	return q.immediate(engine.Op{Kind: engine.KindSingle, Predicate: optional(pred)})
}

// SequenceEqual compares the elements with other's under the configured
// sequence equality mode.
func (q *Query) SequenceEqual(other *Query) (bool, error) {
	return q.boolean(withOther(engine.Op{Kind: engine.KindSequenceEqual}, other))
}

func (q *Query) boolean(op engine.Op) (bool, error) {
	v, err := q.immediate(op)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
