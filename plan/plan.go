package plan

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/golinq/errors"
)

// Output shapes of a plan without an immediate final step.
const (
	OutputArray      = "array"
	OutputList       = "list"
	OutputDictionary = "dictionary"
)

// Plan is a decoded query plan.
type Plan struct {
	Steps      []Step            `json:"steps" yaml:"steps" validate:"dive"`
	Output     string            `json:"output,omitempty" yaml:"output,omitempty" validate:"omitempty,oneof=array list dictionary"`
	Dictionary *DictionaryOutput `json:"dictionary,omitempty" yaml:"dictionary,omitempty" validate:"required_if=Output dictionary"`
}

// DictionaryOutput selects keys and values for dictionary output. A nil
// Value stores the element itself.
type DictionaryOutput struct {
	Key   *SelectorSpec `json:"key" yaml:"key" validate:"required"`
	Value *SelectorSpec `json:"value,omitempty" yaml:"value,omitempty"`
}

// Step is one operator with its bound arguments. Which arguments apply
// depends on Op.
type Step struct {
	Op          string         `json:"op" yaml:"op" validate:"required,linq_op"`
	Count       *int           `json:"count,omitempty" yaml:"count,omitempty"`
	Index       *int           `json:"index,omitempty" yaml:"index,omitempty"`
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Value       any            `json:"value,omitempty" yaml:"value,omitempty"`
	Other       []any          `json:"other,omitempty" yaml:"other,omitempty"`
	Predicate   *PredicateSpec `json:"predicate,omitempty" yaml:"predicate,omitempty"`
	Selector    *SelectorSpec  `json:"selector,omitempty" yaml:"selector,omitempty"`
	Accumulator *FuncSpec      `json:"accumulator,omitempty" yaml:"accumulator,omitempty"`
	Combiner    *FuncSpec      `json:"combiner,omitempty" yaml:"combiner,omitempty"`
}

// PredicateSpec names a predicate: either a comparison against Value or a
// classification.
type PredicateSpec struct {
	Cmp   string `json:"cmp,omitempty" yaml:"cmp,omitempty" validate:"omitempty,oneof=eq ne gt ge lt le"`
	Is    string `json:"is,omitempty" yaml:"is,omitempty" validate:"omitempty,oneof=even odd scalar numeric truthy"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// SelectorSpec names a projection.
type SelectorSpec struct {
	Fn    string `json:"fn" yaml:"fn" validate:"required,oneof=identity index multiply add negate string length"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// FuncSpec names a two-argument function for aggregate and zip.
type FuncSpec struct {
	Fn string `json:"fn" yaml:"fn" validate:"required,oneof=add multiply concat min max pair"`
}

// Parse decodes a YAML or JSON plan. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidInput("plan", "document is empty")
		}
		return nil, errors.InvalidInput("plan", "cannot decode plan").WithCause(err)
	}
	return &p, nil
}

// ParseInput decodes a YAML or JSON list of elements.
func ParseInput(data []byte) ([]any, error) {
	var items []any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.InvalidInput("input", "input must be a list").WithCause(err)
	}
	return Normalize(items), nil
}

// Normalize converts json.Number values, at any depth, to int when they are
// integral and fit, float64 otherwise.
func Normalize(items []any) []any {
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	for i, v := range items {
		out[i] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		return Normalize(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	}
	return v
}
