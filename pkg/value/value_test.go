package value

import "testing"

func TestTruthy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"unset", Value{}, false},
		{"empty string", String(""), false},
		{"string", String("x"), true},
		{"zero", Number(0), false},
		{"number", Number(-1), true},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
	}
	for _, tc := range cases {
		if got := tc.v.Truthy(); got != tc.want {
			t.Errorf("%s: Truthy = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEqualIsStrict(t *testing.T) {
	t.Parallel()

	if String("5").Equal(Number(5)) {
		t.Error("string 5 must not equal number 5")
	}
	if !Number(5).Equal(Number(5)) {
		t.Error("number 5 must equal itself")
	}
	if !(Value{}).Equal(Value{}) {
		t.Error("unset must equal unset")
	}
	if (Value{}).Equal(String("")) {
		t.Error("unset must not equal empty string")
	}
}

func TestParseString(t *testing.T) {
	t.Parallel()

	if got := ParseString("3.5", KindNumber); got.Display() != "3.5" {
		t.Errorf("number parse = %q", got.Display())
	}
	if got := ParseString("abc", KindNumber); !got.IsUnset() {
		t.Errorf("bad number should be unset, got %v", got)
	}
	if got, _ := ParseString("on", KindBool).AsBool(); !got {
		t.Error("on should parse true")
	}
	if got, _ := ParseString("off", KindBool).AsBool(); got {
		t.Error("off should parse false")
	}
	if got := ParseString("hello", KindString).Display(); got != "hello" {
		t.Errorf("string passthrough = %q", got)
	}
}

func TestDisplayRoundsTripNumbers(t *testing.T) {
	t.Parallel()

	if got := Number(42).Display(); got != "42" {
		t.Errorf("Display(42) = %q", got)
	}
	if got := (Value{}).Display(); got != "" {
		t.Errorf("Display(unset) = %q", got)
	}
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	if got := FromAny("x"); got.Kind() != KindString {
		t.Errorf("string kind = %v", got.Kind())
	}
	if got := FromAny(float64(2)); got.Kind() != KindNumber {
		t.Errorf("float kind = %v", got.Kind())
	}
	if got := FromAny(true); got.Kind() != KindBool {
		t.Errorf("bool kind = %v", got.Kind())
	}
	if got := FromAny(nil); !got.IsUnset() {
		t.Errorf("nil should be unset, got %v", got)
	}
	if got := FromAny([]string{"x"}); !got.IsUnset() {
		t.Errorf("unsupported type should be unset, got %v", got)
	}
}
