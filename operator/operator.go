package operator

import (
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// Predicate tests an element at its position. Only the bool true is a match.
type Predicate func(value any, index int) any

// Selector projects an element at its position.
type Selector func(value any, index int) any

// Accumulator folds the next element into the running value.
type Accumulator func(acc, value any) any

// Combiner merges two elements taken from the same position of two sequences.
type Combiner func(first, second any) any

// Matches reports whether a predicate result is exactly the bool true.
func Matches(result any) bool {
	b, ok := result.(bool)
	return ok && b
}

// filter keeps the elements pred matches; a nil pred keeps everything.
func filter(src *sequence.Sequence, pred Predicate) *sequence.Sequence {
	if pred == nil {
		return src.Copy()
	}
	dst := sequence.WithCapacity(src.Count())
	for i, v := range src.All() {
		if Matches(pred(v, i)) {
			dst.Append(v)
		}
	}
	return dst
}

// project maps every element through sel; a nil sel is identity.
func project(src *sequence.Sequence, sel Selector) *sequence.Sequence {
	if sel == nil {
		return src
	}
	dst := sequence.WithCapacity(src.Count())
	for i, v := range src.All() {
		dst.Append(sel(v, i))
	}
	return dst
}

func requirePredicate(operator string, pred Predicate) error {
	if pred == nil {
		return errors.IllegalArgument(operator, "predicate is required")
	}
	return nil
}

func requireSelector(operator string, sel Selector) error {
	if sel == nil {
		return errors.IllegalArgument(operator, "selector is required")
	}
	return nil
}

// KeySelector derives a dictionary key or value from an element.
type KeySelector func(value any) any
