package vanilla

import (
	"html"
	"strings"

	"github.com/goliatone/go-dynaform/pkg/render"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

// controlIDPrefix namespaces generated element ids so embedding pages don't
// collide with them.
const controlIDPrefix = "df-"

// renderFields emits the markup for every visible field in order. Fields with
// an unrecognized type produce no output.
func renderFields(view render.View) (string, error) {
	var builder strings.Builder
	builder.Grow(len(view.Fields) * 256)

	for _, field := range view.Fields {
		markup := renderField(field, view)
		if markup == "" {
			continue
		}
		builder.WriteString(markup)
		builder.WriteByte('\n')
	}
	return builder.String(), nil
}

func renderField(field schema.Field, view render.View) string {
	var control string
	switch field.Type {
	case schema.FieldTypeText, schema.FieldTypeDate, schema.FieldTypeNumber:
		control = buildInput(field, view)
	case schema.FieldTypeSelect:
		control = buildSelect(field, view)
	case schema.FieldTypeCheckbox:
		control = buildCheckbox(field, view)
	default:
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="df-field" data-field-id="`)
	builder.WriteString(html.EscapeString(field.ID))
	builder.WriteString(`">`)

	builder.WriteString(`<label class="df-label" for="`)
	builder.WriteString(controlID(field.ID))
	builder.WriteString(`">`)
	builder.WriteString(sanitizeText(field.Label))
	if field.Required {
		builder.WriteString(`<span class="df-required" aria-hidden="true">*</span>`)
	}
	builder.WriteString(`</label>`)

	builder.WriteString(control)

	if msg := view.Error(field.ID); msg != "" {
		builder.WriteString(`<p class="df-error" role="alert">`)
		builder.WriteString(sanitizeText(msg))
		builder.WriteString(`</p>`)
	}

	builder.WriteString(`</div>`)
	return builder.String()
}

func buildInput(field schema.Field, view render.View) string {
	var builder strings.Builder

	builder.WriteString(`<input class="df-input" type="`)
	builder.WriteString(inputType(field.Type))
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.ID))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.ID))
	builder.WriteByte('"')

	if v := view.Value(field.ID).Display(); v != "" {
		builder.WriteString(` value="`)
		builder.WriteString(html.EscapeString(v))
		builder.WriteByte('"')
	}
	if field.Placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(field.Placeholder))
		builder.WriteByte('"')
	}
	if field.Required {
		builder.WriteString(` required`)
	}
	builder.WriteByte('>')
	return builder.String()
}

func inputType(t schema.FieldType) string {
	switch t {
	case schema.FieldTypeDate:
		return "date"
	case schema.FieldTypeNumber:
		return "number"
	default:
		return "text"
	}
}

// buildSelect always leads with a neutral empty option so an untouched select
// submits the empty string rather than the first choice.
func buildSelect(field schema.Field, view render.View) string {
	current := view.Value(field.ID).Display()

	var builder strings.Builder
	builder.WriteString(`<select class="df-select" id="`)
	builder.WriteString(controlID(field.ID))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.ID))
	builder.WriteByte('"')
	if field.Required {
		builder.WriteString(` required`)
	}
	builder.WriteByte('>')

	builder.WriteString(`<option value=""></option>`)
	for _, opt := range field.Options {
		builder.WriteString(`<option value="`)
		builder.WriteString(html.EscapeString(opt.Value))
		builder.WriteByte('"')
		if opt.Value != "" && opt.Value == current {
			builder.WriteString(` selected`)
		}
		builder.WriteByte('>')
		builder.WriteString(sanitizeText(opt.Label))
		builder.WriteString(`</option>`)
	}

	builder.WriteString(`</select>`)
	return builder.String()
}

func buildCheckbox(field schema.Field, view render.View) string {
	var builder strings.Builder
	builder.WriteString(`<input class="df-checkbox" type="checkbox" id="`)
	builder.WriteString(controlID(field.ID))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.ID))
	builder.WriteString(`" value="true"`)
	if view.Value(field.ID).Truthy() {
		builder.WriteString(` checked`)
	}
	builder.WriteByte('>')
	return builder.String()
}

func controlID(id string) string {
	return controlIDPrefix + html.EscapeString(id)
}
