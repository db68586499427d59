package coerce

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/kbukum/golinq/errors"
)

// Type names accepted by Lookup.
const (
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeString = "string"
)

// Func converts a scalar into a target type.
type Func func(v any) (any, error)

var funcs = map[string]Func{
	TypeInt:    ToInt,
	TypeFloat:  ToFloat,
	TypeBool:   ToBool,
	TypeString: ToString,
}

// Lookup resolves a type name, case-insensitively, to its conversion.
func Lookup(typeName string) (Func, error) {
	fn, ok := funcs[strings.ToLower(strings.TrimSpace(typeName))]
	if !ok {
		return nil, errors.UnsupportedType(typeName)
	}
	return fn, nil
}

// Names returns the supported type names.
func Names() []string {
	return []string{TypeInt, TypeFloat, TypeBool, TypeString}
}

// ToInt converts a scalar to int. Floats truncate toward zero, values beyond
// the int range saturate, and strings contribute their leading numeric prefix.
func ToInt(v any) (any, error) {
	switch n := normalize(v).(type) {
	case string:
		return truncate(numericPrefix(n)), nil
	case float64:
		return truncate(n), nil
	case uint64:
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(n), nil
	case int64, bool:
		i, err := cast.ToIntE(n)
		if err != nil {
			return nil, errors.TypeMismatch("cast", v).WithCause(err)
		}
		return i, nil
	}
	return nil, errors.TypeMismatch("cast", v)
}

func truncate(n any) int {
	f, ok := n.(float64)
	if !ok {
		return n.(int)
	}
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// ToFloat converts a scalar to float64.
func ToFloat(v any) (any, error) {
	switch n := normalize(v).(type) {
	case string:
		f, _ := Float(numericPrefix(n))
		return f, nil
	case int64, uint64, float64, bool:
		f, err := cast.ToFloat64E(n)
		if err != nil {
			return nil, errors.TypeMismatch("cast", v).WithCause(err)
		}
		return f, nil
	}
	return nil, errors.TypeMismatch("cast", v)
}

// ToBool converts a scalar to its truthiness.
func ToBool(v any) (any, error) {
	if !IsScalar(v) {
		return nil, errors.TypeMismatch("cast", v)
	}
	return Truthy(v), nil
}

// ToString converts a scalar to its textual form: true is "1", false is "",
// floats use the shortest representation (4.0 -> "4").
func ToString(v any) (any, error) {
	switch n := normalize(v).(type) {
	case bool:
		if n {
			return "1", nil
		}
		return "", nil
	case string:
		return n, nil
	case int64, uint64, float64:
		s, err := cast.ToStringE(n)
		if err != nil {
			return nil, errors.TypeMismatch("cast", v).WithCause(err)
		}
		return s, nil
	}
	return nil, errors.TypeMismatch("cast", v)
}
