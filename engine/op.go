package engine

import (
	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/sequence"
)

// Op is an operation descriptor: an operator kind and the arguments bound when
// it was enqueued. Only the fields the kind uses are read.
type Op struct {
	Kind Kind

	Count    int    // skip, take
	Index    int    // elementAt
	TypeName string // cast, ofType
	Value    any    // contains

	// Other is the captured second sequence of a set operator.
	Other *sequence.Sequence

	Predicate   operator.Predicate
	Selector    operator.Selector
	Accumulator operator.Accumulator
	Combiner    operator.Combiner

	// Err is an argument failure detected at enqueue time. It is returned
	// when the descriptor is reached, not before.
	Err error
}

// Settings carries the per-query behaviour operators depend on.
type Settings struct {
	Comparator    compare.Comparator
	SequenceEqual operator.SequenceEqualMode
}

func (s Settings) comparator() compare.Comparator {
	if s.Comparator == nil {
		return compare.Loose
	}
	return s.Comparator
}

// ordering uses the comparator when it also orders values.
func (s Settings) ordering() compare.Ordering {
	if o, ok := s.Comparator.(compare.Ordering); ok {
		return o
	}
	return compare.Loose
}

// Apply runs the descriptor against src. Chainable kinds return the new
// sequence; immediate kinds return a value and a nil sequence.
func (op Op) Apply(src *sequence.Sequence, s Settings) (*sequence.Sequence, any, error) {
	if op.Err != nil {
		return nil, nil, op.Err
	}
	if (op.Kind >= KindExcept && op.Kind <= KindZip) || op.Kind == KindSequenceEqual {
		if op.Other == nil {
			return nil, nil, errors.IllegalArgument(op.Kind.String(), "other sequence is required")
		}
	}

	cmp := s.comparator()
	switch op.Kind {
	case KindSkip:
		return operator.Skip(src, op.Count), nil, nil
	case KindSkipWhile:
		return chained(operator.SkipWhile(src, op.Predicate))
	case KindTake:
		return operator.Take(src, op.Count), nil, nil
	case KindTakeWhile:
		return chained(operator.TakeWhile(src, op.Predicate))
	case KindAsEnumerable:
		return operator.AsEnumerable(src), nil, nil
	case KindCast:
		return chained(operator.Cast(src, op.TypeName))
	case KindOfType:
		return chained(operator.OfType(src, op.TypeName))
	case KindSelect:
		return chained(operator.Select(src, op.Selector))
	case KindDistinct:
		return operator.Distinct(src, cmp), nil, nil
	case KindWhere:
		return chained(operator.Where(src, op.Predicate))
	case KindExcept:
		return operator.Except(src, op.Other, cmp), nil, nil
	case KindIntersect:
		return operator.Intersect(src, op.Other, cmp), nil, nil
	case KindUnion:
		return operator.Union(src, op.Other, cmp), nil, nil
	case KindConcat:
		return operator.Concat(src, op.Other), nil, nil
	case KindZip:
		return chained(operator.Zip(src, op.Other, op.Combiner))

	case KindSum:
		return immediate(operator.Sum(src, op.Selector))
	case KindAverage:
		return immediate(operator.Average(src, op.Selector))
	case KindMax:
		return immediate(operator.Max(src, op.Selector, s.ordering()))
	case KindMin:
		return immediate(operator.Min(src, op.Selector, s.ordering()))
	case KindCount:
		return nil, operator.Count(src, op.Predicate), nil
	case KindAggregate:
		return immediate(operator.Aggregate(src, op.Accumulator))
	case KindAll:
		return immediate(operator.All(src, op.Predicate))
	case KindAny:
		return nil, operator.Any(src, op.Predicate), nil
	case KindContains:
		return nil, operator.Contains(src, op.Value, cmp), nil
	case KindElementAt:
		return immediate(operator.ElementAt(src, op.Index))
	case KindFirst:
		return immediate(operator.First(src, op.Predicate))
	case KindLast:
		return immediate(operator.Last(src, op.Predicate))
	case KindSingle:
		return immediate(operator.Single(src, op.Predicate))
	case KindSequenceEqual:
		return nil, operator.SequenceEqual(src, op.Other, cmp, s.SequenceEqual), nil
	}
	return nil, nil, errors.IllegalArgument(op.Kind.String(), "unknown operator")
}

func chained(seq *sequence.Sequence, err error) (*sequence.Sequence, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return seq, nil, nil
}

func immediate(v any, err error) (*sequence.Sequence, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return nil, v, nil
}
