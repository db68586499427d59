package plan

import (
	"fmt"
	"sync"

	"github.com/kbukum/golinq/coerce"
	"github.com/kbukum/golinq/engine"
	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/validation"
)

// Result kinds.
const (
	ResultValue      = "value"
	ResultArray      = OutputArray
	ResultList       = OutputList
	ResultDictionary = OutputDictionary
)

// Result is the outcome of executing a plan. Value holds the immediate
// operator's value, a []any, a *collections.List or a *collections.Dictionary.
type Result struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// Program is a compiled plan, reusable across queries.
type Program struct {
	kinds    []engine.Kind
	chain    []func(q *linq.Query) *linq.Query
	terminal func(q *linq.Query) (any, error)
	output   string
	dict     *DictionaryOutput
}

var registerOnce sync.Once

func registerValidations() {
	registerOnce.Do(func() {
		_ = validation.RegisterValidation("linq_op", func(name string) bool {
			_, err := engine.ParseKind(name)
			return err == nil
		})
	})
}

// Compile validates p and binds every step to its operator. Immediate
// operators are only allowed as the last step.
func Compile(p *Plan) (*Program, error) {
	registerValidations()
	if p == nil {
		return nil, validation.New().Custom(false, "plan", "is required").Validate()
	}
	if err := validation.Validate(p); err != nil {
		return nil, err
	}

	v := validation.New()
	prog := &Program{output: p.Output, dict: p.Dictionary}
	if prog.output == "" {
		prog.output = OutputArray
	}
	for i := range p.Steps {
		s := &p.Steps[i]
		field := fmt.Sprintf("steps[%d]", i)
		kind, _ := engine.ParseKind(s.Op)
		prog.kinds = append(prog.kinds, kind)

		checkArgs(v, field, kind, s)
		if !kind.Chainable() && i != len(p.Steps)-1 {
			v.AddError(field+".op", fmt.Sprintf("immediate operator %s must be the last step", kind))
		}
		if v.HasErrors() {
			continue
		}
		if kind.Chainable() {
			prog.chain = append(prog.chain, chainStep(kind, s))
		} else {
			prog.terminal = terminalStep(kind, s)
		}
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Kinds returns the operators of the program in execution order.
func (p *Program) Kinds() []engine.Kind {
	return append([]engine.Kind(nil), p.kinds...)
}

// Execute enqueues the program's steps on q and evaluates it.
func (p *Program) Execute(q *linq.Query) (Result, error) {
	for _, step := range p.chain {
		q = step(q)
	}
	if p.terminal != nil {
		v, err := p.terminal(q)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultValue, Value: v}, nil
	}
	switch p.output {
	case OutputList:
		l, err := q.ToList()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultList, Value: l}, nil
	case OutputDictionary:
		d, err := q.ToDictionary(keySelector(p.dict.Key), keySelector(p.dict.Value))
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultDictionary, Value: d}, nil
	default:
		items, err := q.ToArray()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultArray, Value: items}, nil
	}
}

// Run compiles p and executes it over items.
func Run(p *Plan, items []any, opts ...linq.Option) (Result, error) {
	prog, err := Compile(p)
	if err != nil {
		return Result{}, err
	}
	return prog.Execute(linq.From(items, opts...))
}

func checkArgs(v *validation.Validator, field string, k engine.Kind, s *Step) {
	switch k {
	case engine.KindSkip, engine.KindTake:
		v.Custom(s.Count != nil, field+".count", "is required")
	case engine.KindElementAt:
		v.Custom(s.Index != nil, field+".index", "is required")
	case engine.KindCast, engine.KindOfType:
		if _, err := coerce.Lookup(s.Type); err != nil {
			v.AddError(field+".type", "must be one of: int, float, bool, string")
		}
	case engine.KindSkipWhile, engine.KindTakeWhile, engine.KindWhere, engine.KindAll:
		v.Custom(s.Predicate != nil, field+".predicate", "is required")
	case engine.KindSelect:
		v.Custom(s.Selector != nil, field+".selector", "is required")
	case engine.KindAggregate:
		v.Custom(s.Accumulator != nil, field+".accumulator", "is required")
	case engine.KindZip:
		v.Custom(s.Other != nil, field+".other", "is required")
		v.Custom(s.Combiner != nil, field+".combiner", "is required")
	case engine.KindExcept, engine.KindIntersect, engine.KindUnion, engine.KindConcat, engine.KindSequenceEqual:
		v.Custom(s.Other != nil, field+".other", "is required")
	}
	if s.Predicate != nil {
		v.Custom((s.Predicate.Cmp == "") != (s.Predicate.Is == ""), field+".predicate", "needs exactly one of cmp or is")
	}
	if s.Selector != nil {
		checkSelector(v, field+".selector", s.Selector)
	}
}

func checkSelector(v *validation.Validator, field string, spec *SelectorSpec) {
	if spec.Fn != "multiply" && spec.Fn != "add" {
		return
	}
	_, ok := coerce.Number(normalize(spec.Value))
	v.Custom(ok, field+".value", "must be numeric")
}

func chainStep(k engine.Kind, s *Step) func(q *linq.Query) *linq.Query {
	switch k {
	case engine.KindSkip:
		n := *s.Count
		return func(q *linq.Query) *linq.Query { return q.Skip(n) }
	case engine.KindTake:
		n := *s.Count
		return func(q *linq.Query) *linq.Query { return q.Take(n) }
	case engine.KindSkipWhile:
		pred := predicate(s.Predicate)
		return func(q *linq.Query) *linq.Query { return q.SkipWhile(pred) }
	case engine.KindTakeWhile:
		pred := predicate(s.Predicate)
		return func(q *linq.Query) *linq.Query { return q.TakeWhile(pred) }
	case engine.KindAsEnumerable:
		return func(q *linq.Query) *linq.Query { return q.AsEnumerable() }
	case engine.KindCast:
		t := s.Type
		return func(q *linq.Query) *linq.Query { return q.Cast(t) }
	case engine.KindOfType:
		t := s.Type
		return func(q *linq.Query) *linq.Query { return q.OfType(t) }
	case engine.KindSelect:
		sel := selector(s.Selector)
		return func(q *linq.Query) *linq.Query { return q.Select(sel) }
	case engine.KindDistinct:
		return func(q *linq.Query) *linq.Query { return q.Distinct() }
	case engine.KindWhere:
		pred := predicate(s.Predicate)
		return func(q *linq.Query) *linq.Query { return q.Where(pred) }
	case engine.KindExcept:
		other := Normalize(s.Other)
		return func(q *linq.Query) *linq.Query { return q.Except(linq.From(other)) }
	case engine.KindIntersect:
		other := Normalize(s.Other)
		return func(q *linq.Query) *linq.Query { return q.Intersect(linq.From(other)) }
	case engine.KindUnion:
		other := Normalize(s.Other)
		return func(q *linq.Query) *linq.Query { return q.Union(linq.From(other)) }
	case engine.KindConcat:
		other := Normalize(s.Other)
		return func(q *linq.Query) *linq.Query { return q.Concat(linq.From(other)) }
	case engine.KindZip:
		other := Normalize(s.Other)
		fn := binary(s.Combiner)
		return func(q *linq.Query) *linq.Query { return q.Zip(linq.From(other), fn) }
	}
	panic(fmt.Sprintf("plan: %s is not chainable", k))
}

func terminalStep(k engine.Kind, s *Step) func(q *linq.Query) (any, error) {
	var (
		pred = optionalPredicate(s.Predicate)
		sel  = optionalSelector(s.Selector)
	)
	switch k {
	case engine.KindSum:
		return func(q *linq.Query) (any, error) { return q.Sum(sel...) }
	case engine.KindAverage:
		return func(q *linq.Query) (any, error) { return q.Average(sel...) }
	case engine.KindMax:
		return func(q *linq.Query) (any, error) { return q.Max(sel...) }
	case engine.KindMin:
		return func(q *linq.Query) (any, error) { return q.Min(sel...) }
	case engine.KindCount:
		return func(q *linq.Query) (any, error) { return q.Count(pred...) }
	case engine.KindAggregate:
		fn := binary(s.Accumulator)
		return func(q *linq.Query) (any, error) { return q.Aggregate(fn) }
	case engine.KindAll:
		return func(q *linq.Query) (any, error) { return q.All(pred[0]) }
	case engine.KindAny:
		return func(q *linq.Query) (any, error) { return q.Any(pred...) }
	case engine.KindContains:
		value := normalize(s.Value)
		return func(q *linq.Query) (any, error) { return q.Contains(value) }
	case engine.KindElementAt:
		index := *s.Index
		return func(q *linq.Query) (any, error) { return q.ElementAt(index) }
	case engine.KindFirst:
		return func(q *linq.Query) (any, error) { return q.First(pred...) }
	case engine.KindLast:
		return func(q *linq.Query) (any, error) { return q.Last(pred...) }
	case engine.KindSingle:
		return func(q *linq.Query) (any, error) { return q.Single(pred...) }
	case engine.KindSequenceEqual:
		other := Normalize(s.Other)
		return func(q *linq.Query) (any, error) { return q.SequenceEqual(linq.From(other)) }
	}
	panic(fmt.Sprintf("plan: %s is not immediate", k))
}

func optionalPredicate(spec *PredicateSpec) []operator.Predicate {
	if spec == nil {
		return nil
	}
	return []operator.Predicate{predicate(spec)}
}

func optionalSelector(spec *SelectorSpec) []operator.Selector {
	if spec == nil {
		return nil
	}
	return []operator.Selector{selector(spec)}
}
