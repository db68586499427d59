// Package operator implements the sequence operators a query chains together.
//
// Every operator is a plain function over a *sequence.Sequence plus its bound
// arguments. Chainable operators return a freshly allocated sequence and never
// modify their input; immediate operators return a scalar or a bool. Failures
// are *errors.AppError values carrying one of the operator error codes.
//
// Operators by category:
//
//   - Calculation: Sum, Average, Max, Min, Count, Aggregate
//   - Extraction: Skip, SkipWhile, Take, TakeWhile
//   - Inspection: AsEnumerable, Cast, OfType
//   - Query: Select, Where, Distinct
//   - Search: All, Any, Contains, ElementAt, First, Last, Single
//   - Set: Except, Intersect, Union, Concat, Zip, SequenceEqual
//   - Generation: Range, Repeat
//
// Predicates follow a strict contract: an element matches only when the
// predicate returns the bool true. Any other result, including 1 or "yes",
// is a non-match.
package operator
