package operator

import (
	"github.com/kbukum/golinq/sequence"
)

// clamp bounds n to [0, count].
func clamp(n, count int) int {
	switch {
	case n <= 0:
		return 0
	case n >= count:
		return count
	}
	return n
}

// Skip drops the first n elements. Negative n drops nothing.
func Skip(src *sequence.Sequence, n int) *sequence.Sequence {
	items := src.Items()
	return sequence.Of(items[clamp(n, len(items)):])
}

// Take keeps the first n elements. Negative n keeps nothing.
func Take(src *sequence.Sequence, n int) *sequence.Sequence {
	items := src.Items()
	return sequence.Of(items[:clamp(n, len(items))])
}

// SkipWhile drops leading elements while pred matches and keeps the rest,
// including later elements pred would have matched.
func SkipWhile(src *sequence.Sequence, pred Predicate) (*sequence.Sequence, error) {
	if err := requirePredicate("skipWhile", pred); err != nil {
		return nil, err
	}
	return Skip(src, leadingMatches(src, pred)), nil
}

// TakeWhile keeps leading elements while pred matches.
func TakeWhile(src *sequence.Sequence, pred Predicate) (*sequence.Sequence, error) {
	if err := requirePredicate("takeWhile", pred); err != nil {
		return nil, err
	}
	return Take(src, leadingMatches(src, pred)), nil
}

// leadingMatches counts elements from the front up to the first non-match.
// pred is not called again once it has failed.
func leadingMatches(src *sequence.Sequence, pred Predicate) int {
	n := 0
	for i, v := range src.All() {
		if !Matches(pred(v, i)) {
			break
		}
		n++
	}
	return n
}
