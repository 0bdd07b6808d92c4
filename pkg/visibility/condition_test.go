package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

func TestDefaultEvaluator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		field  schema.Field
		values map[string]value.Value
		want   bool
	}{
		{
			name:  "no dependency is always visible",
			field: schema.Field{ID: "name"},
			want:  true,
		},
		{
			name: "equals matches",
			field: schema.Field{ID: "address", DependsOn: &schema.DependsOn{
				FieldID: "method", Condition: "equals", Value: "courier",
			}},
			values: map[string]value.Value{"method": value.String("courier")},
			want:   true,
		},
		{
			name: "equals mismatch hides",
			field: schema.Field{ID: "address", DependsOn: &schema.DependsOn{
				FieldID: "method", Condition: "equals", Value: "courier",
			}},
			values: map[string]value.Value{"method": value.String("pickup")},
			want:   false,
		},
		{
			name: "not_equals inverts",
			field: schema.Field{ID: "reason", DependsOn: &schema.DependsOn{
				FieldID: "rating", Condition: "not_equals", Value: float64(5),
			}},
			values: map[string]value.Value{"rating": value.Number(3)},
			want:   true,
		},
		{
			name: "unknown condition falls back to equality",
			field: schema.Field{ID: "x", DependsOn: &schema.DependsOn{
				FieldID: "flag", Condition: "implies", Value: true,
			}},
			values: map[string]value.Value{"flag": value.Bool(true)},
			want:   true,
		},
		{
			name: "empty condition falls back to equality",
			field: schema.Field{ID: "x", DependsOn: &schema.DependsOn{
				FieldID: "flag", Value: true,
			}},
			values: map[string]value.Value{"flag": value.Bool(false)},
			want:   false,
		},
		{
			name: "kind mismatch never equals",
			field: schema.Field{ID: "x", DependsOn: &schema.DependsOn{
				FieldID: "count", Condition: "equals", Value: "5",
			}},
			values: map[string]value.Value{"count": value.Number(5)},
			want:   false,
		},
		{
			name: "dangling reference compares against unset",
			field: schema.Field{ID: "x", DependsOn: &schema.DependsOn{
				FieldID: "ghost", Condition: "equals", Value: "yes",
			}},
			values: map[string]value.Value{},
			want:   false,
		},
	}

	eval := Default()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := eval.Visible(tc.field, Context{Values: tc.values})
			if got != tc.want {
				t.Fatalf("Visible = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFieldsPreservesOrder(t *testing.T) {
	t.Parallel()

	fields := []schema.Field{
		{ID: "a"},
		{ID: "b", DependsOn: &schema.DependsOn{FieldID: "a", Value: "show"}},
		{ID: "c"},
	}
	values := map[string]value.Value{"a": value.String("show")}

	got := Fields(fields, nil, Context{Values: values})

	var ids []string
	for _, f := range got {
		ids = append(ids, f.ID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Fatalf("visible ids mismatch (-want +got):\n%s", diff)
	}
}
