package operator

import (
	"math"

	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// Range returns count consecutive ints starting at start.
func Range(start, count int) (*sequence.Sequence, error) {
	if count < 0 {
		return nil, errors.Range("range: count must not be negative")
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return nil, errors.Range("range: start + count - 1 overflows int")
	}
	dst := sequence.WithCapacity(count)
	for i := 0; i < count; i++ {
		dst.Append(start + i)
	}
	return dst, nil
}

// Repeat returns count copies of element.
func Repeat(element any, count int) (*sequence.Sequence, error) {
	if count < 0 {
		return nil, errors.Range("repeat: count must not be negative")
	}
	dst := sequence.WithCapacity(count)
	for i := 0; i < count; i++ {
		dst.Append(element)
	}
	return dst, nil
}
