// Package validation evaluates per-field rules against the current form
// values at submit time.
package validation

import (
	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

// ErrorMap holds one message per failing field id. It is recomputed from
// scratch on every validation pass, never merged.
type ErrorMap map[string]string

// Valid reports whether the pass produced no errors.
func (m ErrorMap) Valid() bool {
	return len(m) == 0
}

// Checker evaluates one rule against a value. It returns false when the rule
// does not apply (unknown type, wrong value kind, bad parameter) so the
// caller can skip it silently.
type Checker func(v value.Value, rule schema.ValidationRule) (failed bool, applies bool)

var checkers = map[string]Checker{
	schema.RuleRequired:  checkRequired,
	schema.RuleMinLength: checkMinLength,
}

// Validate runs every field's rules in schema order against the supplied
// values and returns a freshly built ErrorMap. Hidden fields are not skipped:
// the contract validates the whole schema regardless of visibility. When a
// field trips multiple rules, the last failing rule's message wins.
func Validate(fields []schema.Field, values map[string]value.Value) ErrorMap {
	errs := make(ErrorMap)
	for _, field := range fields {
		for _, rule := range field.Validation {
			check, ok := checkers[rule.Type]
			if !ok {
				continue
			}
			failed, applies := check(values[field.ID], rule)
			if !applies || !failed {
				continue
			}
			errs[field.ID] = rule.Message
		}
	}
	return errs
}

func checkRequired(v value.Value, _ schema.ValidationRule) (bool, bool) {
	return !v.Truthy(), true
}

// checkMinLength only applies to string values with a numeric threshold.
func checkMinLength(v value.Value, rule schema.ValidationRule) (bool, bool) {
	str, ok := v.AsString()
	if !ok {
		return false, false
	}
	threshold, ok := numericParam(rule.Value)
	if !ok {
		return false, false
	}
	return len(str) < threshold, true
}

func numericParam(raw any) (int, bool) {
	switch typed := raw.(type) {
	case float64:
		return int(typed), true
	case float32:
		return int(typed), true
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case uint64:
		return int(typed), true
	default:
		return 0, false
	}
}
