// Package compare provides the equality and ordering comparators used by the
// set, search and aggregation operators.
//
// Loose is the default. It treats differently typed values as equal when
// they denote the same thing after numeric or string coercion, so 0, false,
// "0" and 0.0 fall into one equality class. Strict requires identical dynamic
// types and deep-equal values.
package compare

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/kbukum/golinq/coerce"
)

// Comparator decides whether two elements are equal.
type Comparator interface {
	Equal(a, b any) bool
}

// Ordering orders two elements, returning -1, 0 or +1.
type Ordering interface {
	Compare(a, b any) int
}

// ComparatorFunc adapts a function to Comparator.
type ComparatorFunc func(a, b any) bool

// Equal calls f(a, b).
func (f ComparatorFunc) Equal(a, b any) bool { return f(a, b) }

var (
	// Loose compares with numeric and string coercion.
	Loose = looseComparator{}
	// Strict compares dynamic type and value.
	Strict = strictComparator{}
)

// exportAll lets go-cmp descend into unexported struct fields instead of panicking.
var exportAll = gocmp.Exporter(func(reflect.Type) bool { return true })

type looseComparator struct{}

func (looseComparator) String() string { return "loose" }

// Equal reports loose equality.
func (c looseComparator) Equal(a, b any) bool {
	if a == nil || b == nil {
		return nilEqual(a, b)
	}
	as, bs := coerce.IsScalar(a), coerce.IsScalar(b)
	switch {
	case as && bs:
		if (isNaN(a) || isNaN(b)) && !isBool(a) && !isBool(b) {
			return false
		}
		return c.Compare(a, b) == 0
	case as || bs:
		if isBool(a) || isBool(b) {
			return coerce.Truthy(a) == coerce.Truthy(b)
		}
		return false
	}
	return c.compositeEqual(a, b)
}

func nilEqual(a, b any) bool {
	other := a
	if a == nil {
		other = b
	}
	if other == nil {
		return true
	}
	if s, ok := asString(other); ok {
		return s == ""
	}
	return !coerce.Truthy(other)
}

// isNaN reports whether v is a float holding NaN, which equals nothing.
func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.CanFloat() && math.IsNaN(rv.Float())
}

func isBool(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

func (c looseComparator) compositeEqual(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isList(ra) && isList(rb):
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !c.Equal(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case ra.Kind() == reflect.Map && rb.Kind() == reflect.Map:
		if ra.Len() != rb.Len() || ra.Type().Key() != rb.Type().Key() {
			return false
		}
		iter := ra.MapRange()
		for iter.Next() {
			other := rb.MapIndex(iter.Key())
			if !other.IsValid() || !c.Equal(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	}
	return gocmp.Equal(a, b, exportAll)
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

// Compare orders two values loosely. Bools order by truthiness, numbers and
// numeric strings numerically, other strings byte-wise, and a number against
// a non-numeric string by the number's textual form. Composites sort after
// scalars and among themselves by length.
func (c looseComparator) Compare(a, b any) int {
	if a == nil || b == nil {
		return compareNil(a, b)
	}
	as, bs := coerce.IsScalar(a), coerce.IsScalar(b)
	switch {
	case !as && !bs:
		return cmp.Compare(length(a), length(b))
	case !as:
		return 1
	case !bs:
		return -1
	}
	if isBool(a) || isBool(b) {
		return compareBool(coerce.Truthy(a), coerce.Truthy(b))
	}
	sa, aIsString := asString(a)
	sb, bIsString := asString(b)
	switch {
	case !aIsString && !bIsString:
		return compareNumbers(a, b)
	case aIsString && bIsString:
		if coerce.IsNumericString(sa) && coerce.IsNumericString(sb) {
			na, _ := coerce.ParseNumeric(sa)
			nb, _ := coerce.ParseNumeric(sb)
			return compareNumbers(na, nb)
		}
		return strings.Compare(sa, sb)
	case aIsString:
		return -compareNumberString(b, sa)
	default:
		return compareNumberString(a, sb)
	}
}

func compareNil(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -compareNil(b, a)
	}
	if s, ok := asString(a); ok {
		return strings.Compare(s, "")
	}
	return compareBool(coerce.Truthy(a), false)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func compareNumberString(n any, s string) int {
	if coerce.IsNumericString(s) {
		ns, _ := coerce.ParseNumeric(s)
		return compareNumbers(n, ns)
	}
	text, _ := coerce.ToString(n)
	return strings.Compare(text.(string), s)
}

func asString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// compareNumbers compares numbers exactly when both are integral and
// through float64 otherwise.
func compareNumbers(a, b any) int {
	if coerce.IsIntegral(a) && coerce.IsIntegral(b) {
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		switch {
		case ra.CanInt() && rb.CanInt():
			return cmp.Compare(ra.Int(), rb.Int())
		case ra.CanUint() && rb.CanUint():
			return cmp.Compare(ra.Uint(), rb.Uint())
		case ra.CanInt():
			if ra.Int() < 0 {
				return -1
			}
			return cmp.Compare(uint64(ra.Int()), rb.Uint())
		default:
			if rb.Int() < 0 {
				return 1
			}
			return cmp.Compare(ra.Uint(), uint64(rb.Int()))
		}
	}
	fa, _ := coerce.Float(a)
	fb, _ := coerce.Float(b)
	return cmp.Compare(fa, fb)
}

func length(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len()
	}
	return 0
}

type strictComparator struct{}

func (strictComparator) String() string { return "strict" }

// Equal reports whether a and b share a dynamic type and are deep-equal.
func (strictComparator) Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return gocmp.Equal(a, b, exportAll)
}

// Compare orders values like Loose but never equates different dynamic types.
func (s strictComparator) Compare(a, b any) int {
	if n := Loose.Compare(a, b); n != 0 || s.Equal(a, b) {
		return n
	}
	return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}
