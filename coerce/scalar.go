// Package coerce classifies dynamic values and converts scalars between the
// closed set of target types a query can cast to: int, float, bool, string.
package coerce

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
	prefixPattern  = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// IsScalar reports whether v is a bool, a number or a string.
// nil and every composite (slice, map, struct, pointer) are not scalar.
func IsScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String:
		return true
	}
	return IsNumber(v)
}

// IsNumber reports whether v has a Go integer, unsigned or float kind.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsIntegral reports whether v has a Go integer or unsigned kind.
func IsIntegral(v any) bool {
	return IsNumber(v) && !isFloatKind(reflect.TypeOf(v).Kind())
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// Float returns the numeric value of v when v has a number kind.
func Float(v any) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}

// normalize maps named numeric, bool and string types onto their builtin
// counterparts so conversions only deal with int64, uint64, float64, bool and string.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int()
	case rv.CanUint():
		return rv.Uint()
	case rv.CanFloat():
		return rv.Float()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	}
	return v
}

// IsNumericString reports whether s is entirely a decimal number, optionally
// surrounded by whitespace.
func IsNumericString(s string) bool {
	return numericPattern.MatchString(s)
}

// ParseNumeric parses a fully numeric string. The result is an int when the
// text has no fraction or exponent and fits, float64 otherwise.
func ParseNumeric(s string) (any, bool) {
	if !IsNumericString(s) {
		return nil, false
	}
	return parseNumber(strings.TrimSpace(s)), true
}

// numericPrefix parses the leading number of s ("12abc" -> 12, "abc" -> 0).
func numericPrefix(s string) any {
	p := prefixPattern.FindString(s)
	if p == "" {
		return 0
	}
	return parseNumber(strings.TrimSpace(p))
}

func parseNumber(s string) any {
	if !strings.ContainsAny(s, ".eE") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	}
	// The pattern guarantees syntax, so the only failure is range, which still yields ±Inf.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// Truthy reports the boolean value of v: false for nil, false, numeric zero,
// "" and "0", and for empty slices and maps; true otherwise.
func Truthy(v any) bool {
	switch n := normalize(v).(type) {
	case nil:
		return false
	case bool:
		return n
	case int64:
		return n != 0
	case uint64:
		return n != 0
	case float64:
		return n != 0
	case string:
		return n != "" && n != "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Number converts a scalar to the number it denotes for arithmetic: bools
// become 0/1, numeric strings their value. ok is false for non-scalars and
// strings that are not numeric.
func Number(v any) (any, bool) {
	switch n := normalize(v).(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), true
		}
		return float64(n), true
	case uint64:
		if n <= math.MaxInt {
			return int(n), true
		}
		return float64(n), true
	case float64:
		return n, true
	case string:
		return ParseNumeric(n)
	}
	return nil, false
}
