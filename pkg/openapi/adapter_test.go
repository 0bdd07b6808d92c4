package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynaform/pkg/schema"
)

const petstoreDoc = `
openapi: 3.0.3
info:
  title: Signup API
  version: 1.0.0
paths: {}
components:
  schemas:
    Signup:
      type: object
      required: [email]
      properties:
        email:
          type: string
          minLength: 5
        birthday:
          type: string
          format: date
        seats:
          type: integer
        newsletter:
          type: boolean
        plan:
          type: string
          enum: [basic, pro]
        tags:
          type: array
          items:
            type: string
`

func TestImport(t *testing.T) {
	t.Parallel()

	got, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{Component: "Signup"})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	want := schema.FormSchema{
		Title: "Signup",
		Fields: []schema.Field{
			{ID: "birthday", Label: "birthday", Type: schema.FieldTypeDate},
			{
				ID: "email", Label: "email", Type: schema.FieldTypeText, Required: true,
				Validation: []schema.ValidationRule{
					{Type: schema.RuleRequired, Message: "email is required"},
					{Type: schema.RuleMinLength, Value: float64(5), Message: "email must be at least 5 characters"},
				},
			},
			{ID: "newsletter", Label: "newsletter", Type: schema.FieldTypeCheckbox},
			{
				ID: "plan", Label: "plan", Type: schema.FieldTypeSelect,
				Options: []schema.Option{
					{Value: "basic", Label: "basic"},
					{Value: "pro", Label: "pro"},
				},
			},
			{ID: "seats", Label: "seats", Type: schema.FieldTypeNumber},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("imported schema mismatch (-want +got):\n%s", diff)
	}
}

func TestImportValidatesStructurally(t *testing.T) {
	t.Parallel()

	got, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{Component: "Signup"})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result := schema.Validate(got); !result.Valid {
		t.Fatalf("imported schema fails structural checks: %s", result.Summary())
	}
}

func TestImportRejectsMissingComponent(t *testing.T) {
	t.Parallel()

	if _, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{Component: "Ghost"}); err == nil {
		t.Fatal("expected error for unknown component")
	}
	if _, err := Import(context.Background(), []byte(petstoreDoc), ImportOptions{}); err == nil {
		t.Fatal("expected error for missing component name")
	}
	if _, err := Import(context.Background(), nil, ImportOptions{Component: "Signup"}); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
