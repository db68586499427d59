package plan

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/kbukum/golinq/coerce"
	"github.com/kbukum/golinq/compare"
	"github.com/kbukum/golinq/operator"
)

func predicate(spec *PredicateSpec) operator.Predicate {
	value := normalize(spec.Value)
	switch spec.Cmp {
	case "eq":
		return func(v any, _ int) any { return compare.Loose.Equal(v, value) }
	case "ne":
		return func(v any, _ int) any { return !compare.Loose.Equal(v, value) }
	case "gt":
		return func(v any, _ int) any { return compare.Loose.Compare(v, value) > 0 }
	case "ge":
		return func(v any, _ int) any { return compare.Loose.Compare(v, value) >= 0 }
	case "lt":
		return func(v any, _ int) any { return compare.Loose.Compare(v, value) < 0 }
	case "le":
		return func(v any, _ int) any { return compare.Loose.Compare(v, value) <= 0 }
	}
	switch spec.Is {
	case "even":
		return func(v any, _ int) any { return parity(v) == 0 }
	case "odd":
		return func(v any, _ int) any { return parity(v) == 1 }
	case "scalar":
		return func(v any, _ int) any { return coerce.IsScalar(v) }
	case "numeric":
		return func(v any, _ int) any {
			if s, ok := v.(string); ok {
				return coerce.IsNumericString(s)
			}
			return coerce.IsNumber(v)
		}
	case "truthy":
		return func(v any, _ int) any { return coerce.Truthy(v) }
	}
	return nil
}

// parity returns 0 or 1 for integral numbers and -1 for everything else.
func parity(v any) int {
	f, ok := coerce.Float(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return -1
	}
	if math.Mod(math.Abs(f), 2) == 0 {
		return 0
	}
	return 1
}

func selector(spec *SelectorSpec) operator.Selector {
	value := normalize(spec.Value)
	switch spec.Fn {
	case "identity":
		return func(v any, _ int) any { return v }
	case "index":
		return func(_ any, i int) any { return i }
	case "multiply":
		return func(v any, _ int) any { return arith(v, value, '*') }
	case "add":
		return func(v any, _ int) any { return arith(v, value, '+') }
	case "negate":
		return func(v any, _ int) any { return arith(v, -1, '*') }
	case "string":
		return func(v any, _ int) any { return text(v) }
	case "length":
		return func(v any, _ int) any { return length(v) }
	}
	return nil
}

// keySelector adapts a selector for dictionary output; index counts calls.
func keySelector(spec *SelectorSpec) operator.KeySelector {
	if spec == nil {
		return nil
	}
	sel := selector(spec)
	i := 0
	return func(v any) any {
		out := sel(v, i)
		i++
		return out
	}
}

func binary(spec *FuncSpec) func(a, b any) any {
	switch spec.Fn {
	case "add":
		return func(a, b any) any { return arith(a, b, '+') }
	case "multiply":
		return func(a, b any) any { return arith(a, b, '*') }
	case "concat":
		return func(a, b any) any { return text(a) + text(b) }
	case "min":
		return func(a, b any) any {
			if compare.Loose.Compare(b, a) < 0 {
				return b
			}
			return a
		}
	case "max":
		return func(a, b any) any {
			if compare.Loose.Compare(b, a) > 0 {
				return b
			}
			return a
		}
	case "pair":
		return func(a, b any) any { return []any{a, b} }
	}
	return nil
}

// arith adds or multiplies two numeric scalars. Integral operands stay int
// until they overflow. Anything non-numeric yields nil.
func arith(a, b any, op byte) any {
	x, ok := coerce.Number(a)
	if !ok {
		return nil
	}
	y, ok := coerce.Number(b)
	if !ok {
		return nil
	}
	xi, xInt := x.(int)
	yi, yInt := y.(int)
	if xInt && yInt {
		if r, ok := intArith(xi, yi, op); ok {
			return r
		}
	}
	xf, _ := coerce.Float(x)
	yf, _ := coerce.Float(y)
	if op == '+' {
		return xf + yf
	}
	return xf * yf
}

func intArith(a, b int, op byte) (int, bool) {
	if op == '+' {
		if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
			return 0, false
		}
		return a + b, true
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func text(v any) string {
	if v == nil {
		return ""
	}
	if s, err := coerce.ToString(v); err == nil {
		return s.(string)
	}
	return fmt.Sprint(v)
}

// length counts runes of a string or entries of a list or map; nil otherwise.
func length(v any) any {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	}
	return nil
}
