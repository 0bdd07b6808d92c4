// Package render defines the renderer contract and a registry for looking up
// renderers by name.
package render

import (
	"context"

	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/validation"
	"github.com/goliatone/go-dynaform/pkg/value"
)

// View is the read-only projection a renderer consumes: the visible fields in
// schema order plus the current values and last-submit errors.
type View struct {
	Title        string
	Fields       []schema.Field
	Values       map[string]value.Value
	Errors       validation.ErrorMap
	SubmitButton schema.SubmitButton
}

// Renderer turns a form view into output bytes for one target surface.
type Renderer interface {
	// Name identifies the renderer inside a registry.
	Name() string
	// ContentType describes the output, e.g. text/html.
	ContentType() string
	// Render produces the serialized form.
	Render(ctx context.Context, view View) ([]byte, error)
}

// Value looks up the current value for a field id; missing ids yield the
// unset value so renderers never branch on presence.
func (v View) Value(id string) value.Value {
	return v.Values[id]
}

// Error returns the validation message for a field, empty when clean.
func (v View) Error(id string) string {
	return v.Errors[id]
}

// SubmitText returns the submit label, defaulting when the schema omits it.
func (v View) SubmitText() string {
	if v.SubmitButton.Text == "" {
		return "Submit"
	}
	return v.SubmitButton.Text
}
