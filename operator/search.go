package operator

import (
	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// All reports whether pred matches every element. It is true for an empty sequence.
func All(src *sequence.Sequence, pred Predicate) (bool, error) {
	if err := requirePredicate("all", pred); err != nil {
		return false, err
	}
	for i, v := range src.All() {
		if !Matches(pred(v, i)) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether pred matches at least one element. A nil pred asks
// whether the sequence has any element at all.
func Any(src *sequence.Sequence, pred Predicate) bool {
	if pred == nil {
		return src.Count() > 0
	}
	for i, v := range src.All() {
		if Matches(pred(v, i)) {
			return true
		}
	}
	return false
}

// Contains reports whether some element equals value under c.
func Contains(src *sequence.Sequence, value any, c compare.Comparator) bool {
	if c == nil {
		c = compare.Loose
	}
	return indexOf(src.Items(), value, c) >= 0
}

// ElementAt returns the element at index.
func ElementAt(src *sequence.Sequence, index int) (any, error) {
	return src.Get(index)
}

// First returns the first element pred matches, or the first element when pred is nil.
func First(src *sequence.Sequence, pred Predicate) (any, error) {
	matched := filter(src, pred)
	if matched.Count() == 0 {
		return nil, errors.NotFoundOrAmbiguous("first", 0)
	}
	return matched.At(0), nil
}

// Last returns the last element pred matches, or the last element when pred is nil.
func Last(src *sequence.Sequence, pred Predicate) (any, error) {
	matched := filter(src, pred)
	if matched.Count() == 0 {
		return nil, errors.NotFoundOrAmbiguous("last", 0)
	}
	return matched.At(matched.Count() - 1), nil
}

// Single returns the only element pred matches. Zero or several matches fail
// with NOT_FOUND_OR_AMBIGUOUS. A nil pred requires a one-element sequence.
func Single(src *sequence.Sequence, pred Predicate) (any, error) {
	matched := filter(src, pred)
	if matched.Count() != 1 {
		return nil, errors.NotFoundOrAmbiguous("single", matched.Count())
	}
	return matched.At(0), nil
}
