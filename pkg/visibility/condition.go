package visibility

import (
	"strings"

	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

// conditionEvaluator implements the dependency condition contract: a field
// with no dependsOn clause is always visible; otherwise the referenced
// field's current value is compared against the declared one.
//
// Supported condition kinds are "equals" and "not_equals". Every other
// condition string, including an empty one, evaluates as equality — the
// historical behavior schemas in the wild rely on.
type conditionEvaluator struct{}

// Default returns the standard condition evaluator.
func Default() Evaluator {
	return conditionEvaluator{}
}

func (conditionEvaluator) Visible(field schema.Field, ctx Context) bool {
	dep := field.DependsOn
	if dep == nil {
		return true
	}

	got := ctx.Values[dep.FieldID]
	want := value.FromAny(dep.Value)
	eq := got.Equal(want)

	switch normalizeCondition(dep.Condition) {
	case schema.ConditionNotEquals:
		return !eq
	default:
		return eq
	}
}

func normalizeCondition(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "not_equals", "not-equals", "notequals", "neq", "!=":
		return schema.ConditionNotEquals
	default:
		return schema.ConditionEquals
	}
}
