// Package openapi imports an OpenAPI 3 component schema as a form
// description, so a form can be derived from an API contract instead of a
// hand-written document.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dynaform/pkg/schema"
)

// ImportOptions control the conversion.
type ImportOptions struct {
	// Component names the schema under #/components/schemas to import.
	Component string
	// Title overrides the form title; defaults to the component name.
	Title string
}

// Import parses an OpenAPI 3 document and converts the named component
// schema's properties into form fields. Property names become field ids,
// sorted for a stable order since OpenAPI objects are unordered.
func Import(ctx context.Context, raw []byte, opts ImportOptions) (schema.FormSchema, error) {
	if len(raw) == 0 {
		return schema.FormSchema{}, errors.New("openapi: document payload is empty")
	}
	if opts.Component == "" {
		return schema.FormSchema{}, errors.New("openapi: component name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	if spec.Components == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: component %q not found", opts.Component)
	}
	ref, ok := spec.Components.Schemas[opts.Component]
	if !ok || ref == nil || ref.Value == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: component %q not found", opts.Component)
	}

	src := ref.Value
	if !src.Type.Is(openapi3.TypeObject) {
		return schema.FormSchema{}, fmt.Errorf("openapi: component %q is not an object schema", opts.Component)
	}

	title := opts.Title
	if title == "" {
		if src.Title != "" {
			title = src.Title
		} else {
			title = opts.Component
		}
	}

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := schema.FormSchema{Title: title}
	for _, name := range names {
		prop := src.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		field, ok := convertProperty(name, prop.Value, required[name])
		if !ok {
			continue
		}
		out.Fields = append(out.Fields, field)
	}

	if len(out.Fields) == 0 {
		return schema.FormSchema{}, fmt.Errorf("openapi: component %q yields no usable fields", opts.Component)
	}
	return out, nil
}

// convertProperty maps one property to a field. Unmappable property types
// (arrays, nested objects) are skipped rather than guessed at.
func convertProperty(name string, src *openapi3.Schema, required bool) (schema.Field, bool) {
	field := schema.Field{
		ID:       name,
		Label:    labelFor(name, src),
		Required: required,
	}

	switch {
	case len(src.Enum) > 0:
		field.Type = schema.FieldTypeSelect
		for _, raw := range src.Enum {
			str, ok := raw.(string)
			if !ok {
				continue
			}
			field.Options = append(field.Options, schema.Option{Value: str, Label: str})
		}
		if len(field.Options) == 0 {
			return schema.Field{}, false
		}
	case src.Type.Is(openapi3.TypeBoolean):
		field.Type = schema.FieldTypeCheckbox
	case src.Type.Is(openapi3.TypeInteger), src.Type.Is(openapi3.TypeNumber):
		field.Type = schema.FieldTypeNumber
	case src.Type.Is(openapi3.TypeString):
		if src.Format == "date" || src.Format == "date-time" {
			field.Type = schema.FieldTypeDate
		} else {
			field.Type = schema.FieldTypeText
		}
	default:
		return schema.Field{}, false
	}

	if required {
		field.Validation = append(field.Validation, schema.ValidationRule{
			Type:    schema.RuleRequired,
			Message: field.Label + " is required",
		})
	}
	if src.MinLength > 0 && field.Type == schema.FieldTypeText {
		field.Validation = append(field.Validation, schema.ValidationRule{
			Type:    schema.RuleMinLength,
			Value:   float64(src.MinLength),
			Message: fmt.Sprintf("%s must be at least %d characters", field.Label, src.MinLength),
		})
	}
	return field, true
}

func labelFor(name string, src *openapi3.Schema) string {
	if src.Title != "" {
		return src.Title
	}
	return name
}
