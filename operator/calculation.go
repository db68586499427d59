package operator

import (
	"math"

	"github.com/kbukum/golinq/coerce"
	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/sequence"
)

// Sum adds the (optionally projected) elements. Every source element must be
// a scalar, and every addend must denote a number: numbers, bools and numeric
// strings. The result is an int while every addend is integral and the total
// fits, float64 otherwise.
func Sum(src *sequence.Sequence, sel Selector) (any, error) {
	if err := requireScalars("sum", src); err != nil {
		return nil, err
	}
	values := project(src, sel)
	var (
		exact    int
		total    float64
		integral = true
	)
	for _, v := range values.All() {
		n, err := number("sum", v)
		if err != nil {
			return nil, err
		}
		f, _ := coerce.Float(n)
		total += f
		i, isInt := n.(int)
		if !integral || !isInt {
			integral = false
			continue
		}
		if (i > 0 && exact > math.MaxInt-i) || (i < 0 && exact < math.MinInt-i) {
			integral = false
			continue
		}
		exact += i
	}
	if integral {
		return exact, nil
	}
	return total, nil
}

// requireScalars rejects containers holding composites, before any projection runs.
func requireScalars(operator string, src *sequence.Sequence) error {
	for _, v := range src.All() {
		if !coerce.IsScalar(v) {
			return errors.TypeMismatch(operator, v)
		}
	}
	return nil
}

func number(operator string, v any) (any, error) {
	if !coerce.IsScalar(v) {
		return nil, errors.TypeMismatch(operator, v)
	}
	n, ok := coerce.Number(v)
	if !ok {
		return nil, errors.TypeMismatch(operator, v)
	}
	return n, nil
}

// Average returns Sum divided by the element count.
func Average(src *sequence.Sequence, sel Selector) (float64, error) {
	sum, err := Sum(src, sel)
	if err != nil {
		return 0, err
	}
	if src.Count() == 0 {
		return 0, errors.IllegalArgument("average", "division by zero: sequence contains no elements")
	}
	f, _ := coerce.Float(sum)
	return f / float64(src.Count()), nil
}

// Max returns the greatest (optionally projected) element under ord.
func Max(src *sequence.Sequence, sel Selector, ord compare.Ordering) (any, error) {
	return extreme("max", src, sel, ord, 1)
}

// Min returns the least (optionally projected) element under ord.
func Min(src *sequence.Sequence, sel Selector, ord compare.Ordering) (any, error) {
	return extreme("min", src, sel, ord, -1)
}

func extreme(operator string, src *sequence.Sequence, sel Selector, ord compare.Ordering, sign int) (any, error) {
	if ord == nil {
		ord = compare.Loose
	}
	if err := requireScalars(operator, src); err != nil {
		return nil, err
	}
	values := project(src, sel)
	if values.Count() == 0 {
		return nil, errors.IllegalArgument(operator, "sequence contains no elements")
	}
	var best any
	for i, v := range values.All() {
		if !coerce.IsScalar(v) {
			return nil, errors.TypeMismatch(operator, v)
		}
		if i == 0 || ord.Compare(v, best)*sign > 0 {
			best = v
		}
	}
	return best, nil
}

// Count returns how many elements pred matches, or the total when pred is nil.
func Count(src *sequence.Sequence, pred Predicate) int {
	if pred == nil {
		return src.Count()
	}
	return filter(src, pred).Count()
}

// Aggregate seeds with the first element and folds fn over the rest, left to right.
func Aggregate(src *sequence.Sequence, fn Accumulator) (any, error) {
	if fn == nil {
		return nil, errors.IllegalArgument("aggregate", "accumulator is required")
	}
	if src.Count() == 0 {
		return nil, errors.IllegalArgument("aggregate", "sequence contains no elements to seed the accumulator")
	}
	acc := src.At(0)
	for i := 1; i < src.Count(); i++ {
		acc = fn(acc, src.At(i))
	}
	return acc, nil
}
