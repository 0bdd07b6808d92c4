package schema

// FieldType enumerates the control kinds a form description can declare.
// Renderers silently skip fields whose type is not one of these.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

// Known validation rule types. Rules with any other type are ignored by the
// validator.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
)

// Condition kinds understood by the visibility resolver. Anything else falls
// back to equality.
const (
	ConditionEquals    = "equals"
	ConditionNotEquals = "not_equals"
)

// Option is one selectable choice for a select field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// ValidationRule names a check applied to a field's value at submit time. The
// optional Value carries the rule parameter (e.g. the minLength threshold).
type ValidationRule struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// DependsOn makes a field's visibility depend on another field's current
// value. The referenced field id is not checked against the schema: a
// dangling reference simply keeps the dependent field hidden, since an unset
// value never equals a concrete one.
type DependsOn struct {
	FieldID   string `json:"fieldId" yaml:"fieldId"`
	Condition string `json:"condition" yaml:"condition"`
	Value     any    `json:"value" yaml:"value"`
}

// Field describes one form control's identity, type, and constraints.
type Field struct {
	ID          string           `json:"id" yaml:"id"`
	Label       string           `json:"label" yaml:"label"`
	Type        FieldType        `json:"type" yaml:"type"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []Option         `json:"options,omitempty" yaml:"options,omitempty"`
	DependsOn   *DependsOn       `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Validation  []ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// SubmitButton labels the form's submit control. LoadingText is surfaced as a
// data attribute so client chrome can swap the label while a submission is in
// flight.
type SubmitButton struct {
	Text        string `json:"text" yaml:"text"`
	LoadingText string `json:"loadingText,omitempty" yaml:"loadingText,omitempty"`
}

// FormSchema is the fetched form description. It is treated as read-only once
// loaded.
type FormSchema struct {
	Title        string       `json:"title" yaml:"title"`
	Fields       []Field      `json:"fields" yaml:"fields"`
	SubmitButton SubmitButton `json:"submitButton" yaml:"submitButton"`
}

// Field looks up a field by id, preserving declaration order semantics for
// callers that iterate Fields directly.
func (s FormSchema) Field(id string) (Field, bool) {
	for _, field := range s.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
