package operator

import (
	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/sequence"
)

// Select maps every element through sel, preserving order and size.
func Select(src *sequence.Sequence, sel Selector) (*sequence.Sequence, error) {
	if err := requireSelector("select", sel); err != nil {
		return nil, err
	}
	return project(src, sel), nil
}

// Where keeps exactly the elements for which pred returns the bool true.
func Where(src *sequence.Sequence, pred Predicate) (*sequence.Sequence, error) {
	if err := requirePredicate("where", pred); err != nil {
		return nil, err
	}
	return filter(src, pred), nil
}

// Distinct keeps the first element of every equality class under c.
func Distinct(src *sequence.Sequence, c compare.Comparator) *sequence.Sequence {
	if c == nil {
		c = compare.Loose
	}
	dst := sequence.WithCapacity(src.Count())
	kept := make([]any, 0, src.Count())
	for _, v := range src.All() {
		if indexOf(kept, v, c) < 0 {
			kept = append(kept, v)
			dst.Append(v)
		}
	}
	return dst
}

func indexOf(items []any, v any, c compare.Comparator) int {
	for i, item := range items {
		if c.Equal(item, v) {
			return i
		}
	}
	return -1
}
