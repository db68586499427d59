// Package plan compiles declarative query plans onto a linq.Query.
//
// A plan is a YAML or JSON document listing operator steps in execution
// order, plus the shape of the result when the last step is not immediate:
//
//	steps:
//	  - op: where
//	    predicate: {is: even}
//	  - op: select
//	    selector: {fn: multiply, value: 10}
//	  - op: take
//	    count: 2
//	output: array
//
// Callbacks are chosen from a closed set of named functions so a plan can be
// evaluated from untrusted input.
//
//	p, err := plan.Parse(data)
//	prog, err := plan.Compile(p)
//	res, err := prog.Execute(linq.From(items))
package plan
