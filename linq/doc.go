// Package linq provides Query, a deferred query over an ordered collection.
//
// Chainable methods (Where, Select, Skip, Union, ...) only record an
// operation and return the same Query. Immediate methods (Sum, Count,
// First, ...) and conversions (ToArray, ToList, ToDictionary) run everything
// recorded so far, in order, and return a value.
//
// Predicates match only when they return the bool true. Equality between
// elements is loose by default: 0, false, "0" and 0.0 are one class.
//
//	q := linq.From([]any{1, 2, 3, 4, 5}).
//		Where(func(v any, _ int) any { return v.(int)%2 == 0 }).
//		Select(func(v any, _ int) any { return v.(int) * 2 })
//	items, err := q.ToArray() // [4 8]
//
// A Query is not safe for concurrent use.
package linq
