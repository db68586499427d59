package operator

import (
	"fmt"
	"strings"

	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// Except returns the distinct elements of first that have no equal in second.
func Except(first, second *sequence.Sequence, c compare.Comparator) *sequence.Sequence {
	return membership(first, second, c, false)
}

// Intersect returns the distinct elements of first that have an equal in second.
func Intersect(first, second *sequence.Sequence, c compare.Comparator) *sequence.Sequence {
	return membership(first, second, c, true)
}

func membership(first, second *sequence.Sequence, c compare.Comparator, want bool) *sequence.Sequence {
	if c == nil {
		c = compare.Loose
	}
	other := second.Items()
	dst := sequence.WithCapacity(first.Count())
	for _, v := range first.All() {
		if (indexOf(other, v, c) >= 0) == want {
			dst.Append(v)
		}
	}
	return Distinct(dst, c)
}

// Union returns the distinct elements of first followed by those of second.
func Union(first, second *sequence.Sequence, c compare.Comparator) *sequence.Sequence {
	return Distinct(Concat(first, second), c)
}

// Concat appends second to first, keeping duplicates and order.
func Concat(first, second *sequence.Sequence) *sequence.Sequence {
	dst := sequence.WithCapacity(first.Count() + second.Count())
	for _, v := range first.All() {
		dst.Append(v)
	}
	for _, v := range second.All() {
		dst.Append(v)
	}
	return dst
}

// Zip combines elements at the same position, up to the shorter length.
func Zip(first, second *sequence.Sequence, fn Combiner) (*sequence.Sequence, error) {
	if fn == nil {
		return nil, errors.IllegalArgument("zip", "combiner is required")
	}
	n := min(first.Count(), second.Count())
	dst := sequence.WithCapacity(n)
	for i := 0; i < n; i++ {
		dst.Append(fn(first.At(i), second.At(i)))
	}
	return dst, nil
}

// SequenceEqualMode selects how SequenceEqual treats element multiplicity.
type SequenceEqualMode int

const (
	// SequenceEqualPositional requires equal length and equal elements at every position.
	SequenceEqualPositional SequenceEqualMode = iota
	// SequenceEqualSet requires equal length and an empty Except(first, second).
	// [1 1 2] and [1 2 2] compare equal under this mode.
	SequenceEqualSet
)

// String returns the configuration name of the mode.
func (m SequenceEqualMode) String() string {
	switch m {
	case SequenceEqualPositional:
		return "positional"
	case SequenceEqualSet:
		return "set"
	}
	return fmt.Sprintf("SequenceEqualMode(%d)", int(m))
}

// ParseSequenceEqualMode resolves "positional" or "set"; "" is positional.
func ParseSequenceEqualMode(name string) (SequenceEqualMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "positional":
		return SequenceEqualPositional, nil
	case "set":
		return SequenceEqualSet, nil
	}
	return 0, errors.InvalidInput("sequence_equal", fmt.Sprintf("unknown sequence equality mode %q", name))
}

// SequenceEqual compares two sequences under c using mode.
func SequenceEqual(first, second *sequence.Sequence, c compare.Comparator, mode SequenceEqualMode) bool {
	if c == nil {
		c = compare.Loose
	}
	if first.Count() != second.Count() {
		return false
	}
	if mode == SequenceEqualSet {
		return Except(first, second, c).Count() == 0
	}
	for i := 0; i < first.Count(); i++ {
		if !c.Equal(first.At(i), second.At(i)) {
			return false
		}
	}
	return true
}
