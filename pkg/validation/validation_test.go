package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fields []schema.Field
		values map[string]value.Value
		want   ErrorMap
	}{
		{
			name: "required rejects empty string",
			fields: []schema.Field{
				{ID: "name", Validation: []schema.ValidationRule{
					{Type: "required", Message: "Name is required"},
				}},
			},
			values: map[string]value.Value{"name": value.String("")},
			want:   ErrorMap{"name": "Name is required"},
		},
		{
			name: "required rejects unset and false and zero",
			fields: []schema.Field{
				{ID: "a", Validation: []schema.ValidationRule{{Type: "required", Message: "a"}}},
				{ID: "b", Validation: []schema.ValidationRule{{Type: "required", Message: "b"}}},
				{ID: "c", Validation: []schema.ValidationRule{{Type: "required", Message: "c"}}},
			},
			values: map[string]value.Value{
				"b": value.Bool(false),
				"c": value.Number(0),
			},
			want: ErrorMap{"a": "a", "b": "b", "c": "c"},
		},
		{
			name: "minLength rejects short strings",
			fields: []schema.Field{
				{ID: "pw", Validation: []schema.ValidationRule{
					{Type: "minLength", Value: float64(8), Message: "Too short"},
				}},
			},
			values: map[string]value.Value{"pw": value.String("abc")},
			want:   ErrorMap{"pw": "Too short"},
		},
		{
			name: "minLength passes at the boundary",
			fields: []schema.Field{
				{ID: "pw", Validation: []schema.ValidationRule{
					{Type: "minLength", Value: 3, Message: "Too short"},
				}},
			},
			values: map[string]value.Value{"pw": value.String("abc")},
			want:   ErrorMap{},
		},
		{
			name: "minLength skips non-string values",
			fields: []schema.Field{
				{ID: "age", Validation: []schema.ValidationRule{
					{Type: "minLength", Value: 3, Message: "Too short"},
				}},
			},
			values: map[string]value.Value{"age": value.Number(7)},
			want:   ErrorMap{},
		},
		{
			name: "minLength skips non-numeric threshold",
			fields: []schema.Field{
				{ID: "pw", Validation: []schema.ValidationRule{
					{Type: "minLength", Value: "eight", Message: "Too short"},
				}},
			},
			values: map[string]value.Value{"pw": value.String("a")},
			want:   ErrorMap{},
		},
		{
			name: "unknown rule types are ignored",
			fields: []schema.Field{
				{ID: "email", Validation: []schema.ValidationRule{
					{Type: "pattern", Value: ".*@.*", Message: "Bad email"},
				}},
			},
			values: map[string]value.Value{"email": value.String("nope")},
			want:   ErrorMap{},
		},
		{
			name: "last failing rule wins",
			fields: []schema.Field{
				{ID: "pw", Validation: []schema.ValidationRule{
					{Type: "required", Message: "Required"},
					{Type: "minLength", Value: 8, Message: "Too short"},
				}},
			},
			values: map[string]value.Value{"pw": value.String("")},
			want:   ErrorMap{"pw": "Too short"},
		},
		{
			name: "hidden fields are still validated",
			fields: []schema.Field{
				{
					ID:        "address",
					DependsOn: &schema.DependsOn{FieldID: "method", Value: "courier"},
					Validation: []schema.ValidationRule{
						{Type: "required", Message: "Address is required"},
					},
				},
			},
			values: map[string]value.Value{"address": value.String("")},
			want:   ErrorMap{"address": "Address is required"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Validate(tc.fields, tc.values)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ErrorMap mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateIsRecomputedFromScratch(t *testing.T) {
	t.Parallel()

	fields := []schema.Field{
		{ID: "name", Validation: []schema.ValidationRule{
			{Type: "required", Message: "Name is required"},
		}},
	}

	values := map[string]value.Value{"name": value.String("")}
	first := Validate(fields, values)
	if len(first) != 1 {
		t.Fatalf("expected one error, got %v", first)
	}

	values["name"] = value.String("Ada")
	second := Validate(fields, values)
	if !second.Valid() {
		t.Fatalf("expected clean pass after fix, got %v", second)
	}
}
