// Package value provides the discriminated value type stored per form field.
// Tagging each value with its kind replaces the runtime type sniffing a flat
// any-typed map would force on every consumer.
package value

import (
	"strconv"
	"strings"
)

// Kind tags the payload a Value carries.
type Kind int

const (
	KindUnset Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is an immutable kind-tagged scalar. The zero Value is unset.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// String wraps a string payload.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric payload.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool wraps a boolean payload.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// FromAny converts a decoded JSON/YAML scalar into a Value. Unsupported types
// map to unset.
func FromAny(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Value{}
	case string:
		return String(typed)
	case bool:
		return Bool(typed)
	case float64:
		return Number(typed)
	case float32:
		return Number(float64(typed))
	case int:
		return Number(float64(typed))
	case int64:
		return Number(float64(typed))
	case uint64:
		return Number(float64(typed))
	default:
		return Value{}
	}
}

// Kind returns the payload tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUnset reports whether the value carries no payload.
func (v Value) IsUnset() bool {
	return v.kind == KindUnset
}

// AsString returns the string payload when the kind matches.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the numeric payload when the kind matches.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the boolean payload when the kind matches.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Truthy reports whether the value counts as present for required checks:
// empty string, zero, false, and unset are all missing.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0
	case KindBool:
		return v.b
	default:
		return false
	}
}

// Equal implements strict equality: kinds must match and payloads must be
// identical. An unset value only equals another unset value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// Display renders the value for an input control. Unset values render empty,
// numbers use the shortest round-trip form, booleans use true/false.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface unwraps the payload for serialization. Unset maps to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// ParseString coerces raw user input into a Value of the target kind. Numeric
// input that does not parse yields unset, matching an empty number control.
func ParseString(raw string, target Kind) Value {
	switch target {
	case KindNumber:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Value{}
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Value{}
		}
		return Number(f)
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "on", "1", "yes":
			return Bool(true)
		default:
			return Bool(false)
		}
	default:
		return String(raw)
	}
}
