// Package visibility decides whether a field is shown based on its dependency
// condition and the form's current values.
package visibility

import (
	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

// Context provides inputs to an Evaluator: the current per-field values.
type Context struct {
	Values map[string]value.Value
}

// Evaluator determines whether a field should be visible. Implementations
// must be pure with respect to the context so visibility can be re-evaluated
// on every render.
type Evaluator interface {
	Visible(field schema.Field, ctx Context) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(field schema.Field, ctx Context) bool

// Visible delegates to the underlying function.
func (fn EvaluatorFunc) Visible(field schema.Field, ctx Context) bool {
	return fn(field, ctx)
}

// Fields filters the supplied fields down to the visible ones, preserving
// schema order. Hidden fields keep their stored values; filtering only
// affects what renderers emit.
func Fields(fields []schema.Field, eval Evaluator, ctx Context) []schema.Field {
	if eval == nil {
		eval = Default()
	}
	out := make([]schema.Field, 0, len(fields))
	for _, field := range fields {
		if eval.Visible(field, ctx) {
			out = append(out, field)
		}
	}
	return out
}
