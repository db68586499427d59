package linq

import (
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/sequence"
)

// Skip drops the first n elements.
func (q *Query) Skip(n int) *Query {
	return q.chain(engine.Op{Kind: engine.KindSkip, Count: n})
}

// SkipWhile drops leading elements while pred matches.
func (q *Query) SkipWhile(pred operator.Predicate) *Query {
	return q.chain(engine.Op{Kind: engine.KindSkipWhile, Predicate: pred})
}

// Take keeps the first n elements.
func (q *Query) Take(n int) *Query {
	return q.chain(engine.Op{Kind: engine.KindTake, Count: n})
}

// TakeWhile keeps leading elements while pred matches.
func (q *Query) TakeWhile(pred operator.Predicate) *Query {
	return q.chain(engine.Op{Kind: engine.KindTakeWhile, Predicate: pred})
}

// AsEnumerable copies the sequence.
func (q *Query) AsEnumerable() *Query {
	return q.chain(engine.Op{Kind: engine.KindAsEnumerable})
}

// Cast converts every element to typeName (int, float, bool or string).
func (q *Query) Cast(typeName string) *Query {
	return q.chain(engine.Op{Kind: engine.KindCast, TypeName: typeName})
}

// OfType converts scalar elements to typeName and drops the others.
func (q *Query) OfType(typeName string) *Query {
	return q.chain(engine.Op{Kind: engine.KindOfType, TypeName: typeName})
}

// Select projects every element.
func (q *Query) Select(sel operator.Selector) *Query {
	return q.chain(engine.Op{Kind: engine.KindSelect, Selector: sel})
}

// Distinct keeps the first element of every equality class.
func (q *Query) Distinct() *Query {
	return q.chain(engine.Op{Kind: engine.KindDistinct})
}

// Where keeps the elements for which pred returns true.
func (q *Query) Where(pred operator.Predicate) *Query {
	return q.chain(engine.Op{Kind: engine.KindWhere, Predicate: pred})
}

// Filter is Where.
func (q *Query) Filter(pred operator.Predicate) *Query {
	return q.Where(pred)
}

// Except keeps the distinct elements with no equal in other.
func (q *Query) Except(other *Query) *Query {
	return q.chain(withOther(engine.Op{Kind: engine.KindExcept}, other))
}

// Intersect keeps the distinct elements with an equal in other.
func (q *Query) Intersect(other *Query) *Query {
	return q.chain(withOther(engine.Op{Kind: engine.KindIntersect}, other))
}

// Union appends other and keeps the distinct elements.
func (q *Query) Union(other *Query) *Query {
	return q.chain(withOther(engine.Op{Kind: engine.KindUnion}, other))
}

// Concat appends other verbatim.
func (q *Query) Concat(other *Query) *Query {
	return q.chain(withOther(engine.Op{Kind: engine.KindConcat}, other))
}

// Zip combines elements at equal positions, up to the shorter length.
func (q *Query) Zip(other *Query, fn operator.Combiner) *Query {
	return q.chain(withOther(engine.Op{Kind: engine.KindZip, Combiner: fn}, other))
}

// withOther captures other's contents now. Pending operations on other run
// first; a failure is kept in the descriptor and returned by the drain that
// reaches it.
func withOther(op engine.Op, other *Query) engine.Op {
	if other == nil {
		op.Other = sequence.Empty()
		return op
	}
	seq, err := other.snapshot()
	if err != nil {
		op.Err = err
		return op
	}
	op.Other = seq
	return op
}
