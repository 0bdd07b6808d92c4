// Package vanilla renders a form view as framework-free HTML. Field controls
// are built directly; the surrounding page shell is a pongo2 template.
package vanilla

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dynaform/pkg/render"
)

// Name is the registry key for this renderer.
const Name = "vanilla"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body>
<main class="df-page">
<h1 class="df-title">{{ title }}</h1>
<form class="df-form" method="post" action="{{ action }}">
{{ fields|safe }}
<button type="submit" class="df-submit"{% if loading_text %} data-loading-text="{{ loading_text }}"{% endif %}>{{ submit_text }}</button>
</form>
</main>
</body>
</html>
`

// Renderer emits a complete HTML page for one form view.
type Renderer struct {
	action string
	page   *pongo2.Template
}

var _ render.Renderer = (*Renderer)(nil)

// Option customizes the renderer.
type Option func(*Renderer)

// WithAction overrides the form's POST target. Defaults to /submit.
func WithAction(action string) Option {
	return func(r *Renderer) {
		if action != "" {
			r.action = action
		}
	}
}

// New compiles the page template and returns a ready renderer.
func New(opts ...Option) (*Renderer, error) {
	page, err := pongo2.FromString(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("vanilla: compile page template: %w", err)
	}
	r := &Renderer{action: "/submit", page: page}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Must panics when construction fails. The template is a constant, so this is
// safe for package wiring.
func Must(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render builds the field markup and executes the page shell around it.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields, err := renderFields(view)
	if err != nil {
		return nil, err
	}

	out, err := r.page.Execute(pongo2.Context{
		"title":        sanitizeText(view.Title),
		"action":       r.action,
		"fields":       fields,
		"submit_text":  sanitizeText(view.SubmitText()),
		"loading_text": sanitizeText(view.SubmitButton.LoadingText),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla: execute page template: %w", err)
	}
	return []byte(out), nil
}
