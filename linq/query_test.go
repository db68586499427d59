package linq

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
)

func isEven(v any, _ int) any {
	n, ok := v.(int)
	return ok && n%2 == 0
}

func double(v any, _ int) any { return v.(int) * 2 }

func quiet() Option { return WithLogger(logger.Nop()) }

func TestQuery_WhereSelectToArray(t *testing.T) {
	got, err := From([]any{1, 2, 3, 4, 5}, quiet()).Where(isEven).Select(double).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{4, 8}, got)
}

func TestQuery_ChainMatchesEagerApplication(t *testing.T) {
	src := []any{5, 2, 8, 3, 6}
	got, err := From(src, quiet()).Where(isEven).Select(double).ToArray()
	require.NoError(t, err)

	var want []any
	for i, v := range src {
		if isEven(v, i) == true {
			want = append(want, v)
		}
	}
	for i, v := range want {
		want[i] = double(v, i)
	}
	assert.Equal(t, want, got)
}

func TestQuery_Except(t *testing.T) {
	got, err := From([]any{1, 2, 3}, quiet()).Except(From([]any{2}, quiet())).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 3}, got)
}

func TestQuery_Range(t *testing.T) {
	q, err := Range(1, 5, quiet())
	require.NoError(t, err)
	got, err := q.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, 5}, got)

	_, err = Range(0, -1)
	assert.True(t, errors.Is(err, errors.ErrCodeRange))
}

func TestQuery_Repeat(t *testing.T) {
	q, err := Repeat("a", 2, quiet())
	require.NoError(t, err)
	n, err := q.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Repeat("a", -2)
	assert.True(t, errors.Is(err, errors.ErrCodeRange))
}

func TestQuery_CastInt(t *testing.T) {
	got, err := From([]any{1, "2", 3, "4.0", 5}, quiet()).Cast("int").ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, 5}, got)

	_, err = From([]any{[]any{1}}, quiet()).Cast("int").ToArray()
	assert.True(t, errors.Is(err, errors.ErrCodeTypeMismatch))
}

func TestQuery_CastIntSaturatesLargeUnsigned(t *testing.T) {
	got, err := From([]any{uint64(math.MaxUint64), 1e300}, quiet()).Cast("int").ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{math.MaxInt, math.MaxInt}, got)
}

func TestQuery_DistinctLoose(t *testing.T) {
	got, err := From([]any{0, false, "0", 0.0}, quiet()).Distinct().ToArray()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestQuery_StrictBooleanFilter(t *testing.T) {
	one := func(any, int) any { return 1 }
	got, err := From([]any{1, 2, 3}, quiet()).Filter(one).ToArray()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_AsEnumerableIdempotent(t *testing.T) {
	src := []any{1, []any{2}, "x"}
	got, err := From(src, quiet()).AsEnumerable().AsEnumerable().ToArray()
	require.NoError(t, err)
	assert.Equal(t, src, got)

	got[0] = 99
	assert.Equal(t, 1, src[0])
}

func TestQuery_SourceIsCopied(t *testing.T) {
	src := []any{1, 2}
	q := From(src, quiet())
	src[0] = 100
	got, err := q.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestQuery_Deferred(t *testing.T) {
	calls := 0
	counting := func(v any, _ int) any {
		calls++
		return v
	}
	q := From([]any{1, 2, 3}, quiet()).Select(counting).Skip(1)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 2, q.Pending())

	_, err := q.Materialize()
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, q.Pending())

	got, err := q.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, got)
	assert.Equal(t, 3, calls, "a drained chain never runs again")
}

func TestQuery_ImmediateAfterChain(t *testing.T) {
	q := From([]any{1, 2, 3, 4}, quiet())
	sum, err := q.Where(isEven).Sum()
	require.NoError(t, err)
	assert.Equal(t, 6, sum)

	// The handle keeps the filtered sequence.
	got, err := q.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4}, got)
}

func TestQuery_Calculations(t *testing.T) {
	src := []any{3, 1, 4, 1, 5}

	avg, err := From(src, quiet()).Average()
	require.NoError(t, err)
	assert.InDelta(t, 2.8, avg, 1e-9)

	maxV, err := From(src, quiet()).Max()
	require.NoError(t, err)
	assert.Equal(t, 5, maxV)

	minV, err := From(src, quiet()).Min(func(v any, _ int) any { return -v.(int) })
	require.NoError(t, err)
	assert.Equal(t, -5, minV)

	n, err := From(src, quiet()).Count(func(v any, _ int) any { return v == 1 })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	prod, err := From(src, quiet()).Aggregate(func(acc, v any) any { return acc.(int) * v.(int) })
	require.NoError(t, err)
	assert.Equal(t, 60, prod)

	_, err = Empty(quiet()).Average()
	assert.True(t, errors.Is(err, errors.ErrCodeIllegalArgument))
}

func TestQuery_CalculationRejectsCompositeElements(t *testing.T) {
	length := func(v any, _ int) any { return len(v.([]any)) }
	src := []any{[]any{1, 2}, []any{3}}

	_, err := From(src, quiet()).Sum(length)
	assert.True(t, errors.Is(err, errors.ErrCodeTypeMismatch))
	_, err = From(src, quiet()).Max(length)
	assert.True(t, errors.Is(err, errors.ErrCodeTypeMismatch))
}

func TestQuery_Search(t *testing.T) {
	q := func() *Query { return From([]any{1, 2, 3, 4}, quiet()) }

	ok, err := q().All(func(v any, _ int) any { return v.(int) > 0 })
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q().Any(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Empty(quiet()).Any()
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = q().Contains("3")
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := q().ElementAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = q().ElementAt(4)
	assert.True(t, errors.Is(err, errors.ErrCodeIndexOutOfRange))

	v, err = q().First(isEven)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = q().Last()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = q().Single(isEven)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFoundOrAmbiguous))
}

func TestQuery_SetOperators(t *testing.T) {
	a := func() *Query { return From([]any{1, 2, 2, 3}, quiet()) }
	b := func() *Query { return From([]any{"2", 4}, quiet()) }

	got, err := a().Union(b()).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, got)

	got, err = a().Intersect(b()).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{2}, got)

	got, err = a().Concat(b()).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 2, 3, "2", 4}, got)

	got, err = a().Zip(b(), func(x, y any) any { return []any{x, y} }).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, "2"}, []any{2, 4}}, got)
}

func TestQuery_SetArgumentCapturedWhenPassed(t *testing.T) {
	other := From([]any{1, 2, 3}, quiet()).Where(isEven)
	q := From([]any{1, 2, 3}, quiet()).Except(other)

	// Work queued on other afterwards does not reach q.
	other.Select(double)

	got, err := q.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 3}, got)
}

func TestQuery_SetArgumentFailureSurfacesAtDrain(t *testing.T) {
	bad := From([]any{[]any{1}}, quiet()).Cast("int")
	q := From([]any{1}, quiet()).Union(bad)
	assert.Equal(t, 1, q.Pending())

	_, err := q.ToArray()
	assert.True(t, errors.Is(err, errors.ErrCodeTypeMismatch))
}

func TestQuery_SequenceEqual(t *testing.T) {
	ok, err := From([]any{1, 1, 2}, quiet()).SequenceEqual(From([]any{1, 2, 2}, quiet()))
	require.NoError(t, err)
	assert.False(t, ok, "positional comparison sees multiplicity")

	set := From([]any{1, 1, 2}, quiet(), WithSequenceEqualMode(operator.SequenceEqualSet))
	ok, err = set.SequenceEqual(From([]any{1, 2, 2}, quiet()))
	require.NoError(t, err)
	assert.True(t, ok, "set comparison collapses duplicates")
}

func TestQuery_StrictComparator(t *testing.T) {
	got, err := From([]any{1, "1", 1.0}, quiet(), WithComparator(compare.Strict)).Distinct().ToArray()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestQuery_FailedDrainKeepsLastGoodState(t *testing.T) {
	h := From([]any{"a", 2, 3}, quiet())
	_, err := h.Select(func(v any, _ int) any { return []any{v} }).Take(2).Cast("int").Skip(1).ToArray()
	assert.True(t, errors.Is(err, errors.ErrCodeTypeMismatch))
	assert.Equal(t, 0, h.Pending())

	got, err := h.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"a"}, []any{2}}, got)
}

func TestQuery_ToList(t *testing.T) {
	l, err := From([]any{3, 1}, quiet()).ToList()
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1}, l.Items())
}

func TestQuery_ToDictionary(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}
	people := []person{{"ann", 30}, {"bob", 25}, {"ann", 31}}

	d, err := FromSlice(people, quiet()).ToDictionary(
		func(v any) any { return v.(person).Name },
		func(v any) any { return v.(person).Age },
	)
	require.NoError(t, err)
	assert.Equal(t, []any{"ann", "bob"}, d.Keys())
	assert.Equal(t, []any{31, 25}, d.Values())

	ident, err := From([]any{"x"}, quiet()).ToDictionary(func(v any) any { return v }, nil)
	require.NoError(t, err)
	v, err := ident.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = Empty(quiet()).ToDictionary(nil, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeIllegalArgument))

	_, err = From([]any{[]any{1}}, quiet()).ToDictionary(func(v any) any { return v }, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeIllegalArgument))
}

func TestQuery_ObserverAndContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var seen []engine.DrainReport
	obs := engine.ObserverFunc(func(c context.Context, r engine.DrainReport) {
		assert.Equal(t, "v", c.Value(key{}))
		seen = append(seen, r)
	})
	q := From([]any{1, 2}, quiet(), WithObserver(obs), WithContext(ctx))
	_, err := q.Take(1).Count()
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, []engine.Kind{engine.KindTake, engine.KindCount}, seen[0].Operators)
}
