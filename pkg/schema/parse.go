package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Issue represents one structural problem found in a form description.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult captures the outcome of a structural schema check.
type ValidationResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Parse decodes a form description document. JSON is tried first; payloads
// that fail JSON decoding fall back to YAML so both wire formats share one
// entry point.
func Parse(doc Document) (FormSchema, error) {
	raw := doc.Raw()

	var out FormSchema
	if err := json.Unmarshal(raw, &out); err == nil {
		return out, nil
	}

	if err := yaml.Unmarshal(raw, &out); err != nil {
		return FormSchema{}, fmt.Errorf("schema: decode %q: %w", doc.Location(), err)
	}
	return out, nil
}

// Validate performs the structural checks that keep malformed descriptions
// from reaching renderers: a fields list must exist, ids must be unique and
// non-empty, and select fields must declare options. Dangling dependsOn
// references are deliberately not flagged; the visibility resolver compares
// against the unset value instead.
func Validate(s FormSchema) ValidationResult {
	var issues []Issue

	if len(s.Fields) == 0 {
		issues = append(issues, Issue{Message: "schema has no fields"})
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for _, field := range s.Fields {
		id := strings.TrimSpace(field.ID)
		if id == "" {
			issues = append(issues, Issue{Message: "field id is empty"})
			continue
		}
		if _, dup := seen[id]; dup {
			issues = append(issues, Issue{Field: id, Message: "duplicate field id"})
		}
		seen[id] = struct{}{}

		if field.Type == FieldTypeSelect && len(field.Options) == 0 {
			issues = append(issues, Issue{Field: id, Message: "select field declares no options"})
		}
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

// ParseAndValidate combines Parse with Validate, returning an error when the
// document decodes but fails the structural checks.
func ParseAndValidate(doc Document) (FormSchema, error) {
	out, err := Parse(doc)
	if err != nil {
		return FormSchema{}, err
	}
	if result := Validate(out); !result.Valid {
		return FormSchema{}, fmt.Errorf("schema: invalid form description %q: %s", doc.Location(), result.Summary())
	}
	return out, nil
}

// Summary flattens the issue list into a single readable line.
func (r ValidationResult) Summary() string {
	if len(r.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Field != "" {
			parts = append(parts, issue.Field+": "+issue.Message)
			continue
		}
		parts = append(parts, issue.Message)
	}
	return strings.Join(parts, "; ")
}
