// Package form holds the runtime state of one dynamic form: the loaded
// description, the values entered so far, and the validation errors from the
// last submit attempt.
package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/validation"
	"github.com/goliatone/go-dynaform/pkg/value"
	"github.com/goliatone/go-dynaform/pkg/visibility"
)

// Status describes the lifecycle phase of a form.
type Status int

const (
	// StatusLoading is the initial state, before the description arrives.
	StatusLoading Status = iota
	// StatusReady means the description loaded and fields can be rendered.
	StatusReady
	// StatusFailed means the fetch or parse failed; Retry re-arms the load.
	StatusFailed
)

// String renders the status for logs.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// SubmitFunc receives the accepted values after a successful validation pass.
type SubmitFunc func(ctx context.Context, values map[string]value.Value) error

// Form owns the mutable state of a rendered form. All methods are safe for
// concurrent use; HTTP handlers share one instance.
type Form struct {
	mu sync.Mutex

	loader schema.Loader
	source schema.Source
	log    zerolog.Logger
	eval   visibility.Evaluator

	onSubmit SubmitFunc

	status  Status
	schema  schema.FormSchema
	loadErr error
	loaded  bool

	values map[string]value.Value
	errors validation.ErrorMap
}

// Option customizes a Form.
type Option func(*Form)

// WithLogger sets the logger used for lifecycle and submission events.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Form) {
		f.log = log
	}
}

// WithEvaluator overrides the visibility evaluator.
func WithEvaluator(eval visibility.Evaluator) Option {
	return func(f *Form) {
		if eval != nil {
			f.eval = eval
		}
	}
}

// WithOnSubmit registers a callback invoked with the accepted values.
func WithOnSubmit(fn SubmitFunc) Option {
	return func(f *Form) {
		f.onSubmit = fn
	}
}

// New builds a Form in the loading state. Call Load to fetch the description.
func New(loader schema.Loader, source schema.Source, opts ...Option) *Form {
	f := &Form{
		loader: loader,
		source: source,
		log:    zerolog.Nop(),
		eval:   visibility.Default(),
		status: StatusLoading,
		values: make(map[string]value.Value),
		errors: make(validation.ErrorMap),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load fetches and parses the form description. It runs at most once per Form
// lifetime: repeated calls after a terminal state are no-ops, and a canceled
// context aborts before any state transition so a torn-down form never flips
// to ready.
func (f *Form) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.loaded {
		f.mu.Unlock()
		return nil
	}
	f.loaded = true
	loader, source := f.loader, f.source
	f.mu.Unlock()

	doc, err := loader.Load(ctx, source)
	var parsed schema.FormSchema
	if err == nil {
		parsed, err = schema.ParseAndValidate(doc)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		// The caller went away mid-fetch; discard the result.
		f.mu.Lock()
		f.loaded = false
		f.mu.Unlock()
		return ctxErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusFailed
		f.loadErr = err
		f.log.Error().Err(err).Str("source", source.Location()).Msg("form load failed")
		return fmt.Errorf("form: load %q: %w", source.Location(), err)
	}

	f.schema = parsed
	f.status = StatusReady
	f.loadErr = nil
	f.initValues()
	f.log.Info().
		Str("source", source.Location()).
		Int("fields", len(parsed.Fields)).
		Msg("form ready")
	return nil
}

// Retry re-arms a failed load. It is a no-op unless the form is failed.
func (f *Form) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.status != StatusFailed {
		f.mu.Unlock()
		return nil
	}
	f.status = StatusLoading
	f.loadErr = nil
	f.loaded = false
	f.mu.Unlock()

	return f.Load(ctx)
}

// initValues seeds one entry per field so renderers and validators always see
// a value. Caller holds the lock.
func (f *Form) initValues() {
	f.values = make(map[string]value.Value, len(f.schema.Fields))
	for _, field := range f.schema.Fields {
		f.values[field.ID] = zeroFor(field.Type)
	}
	f.errors = make(validation.ErrorMap)
}

func zeroFor(t schema.FieldType) value.Value {
	switch t {
	case schema.FieldTypeCheckbox:
		return value.Bool(false)
	case schema.FieldTypeNumber:
		return value.Value{}
	default:
		return value.String("")
	}
}

// SetValue stores a value for a known field. Unknown ids are rejected so
// typos surface instead of silently growing the map.
func (f *Form) SetValue(id string, v value.Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != StatusReady {
		return fmt.Errorf("form: not ready (status %s)", f.status)
	}
	if _, ok := f.schema.Field(id); !ok {
		return fmt.Errorf("form: unknown field %q", id)
	}
	f.values[id] = v
	return nil
}

// ApplyInput coerces raw user input into the field's declared kind and stores
// it. Number fields that fail to parse store the unset value, the same as an
// empty control.
func (f *Form) ApplyInput(id, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != StatusReady {
		return fmt.Errorf("form: not ready (status %s)", f.status)
	}
	field, ok := f.schema.Field(id)
	if !ok {
		return fmt.Errorf("form: unknown field %q", id)
	}
	f.values[id] = value.ParseString(raw, kindFor(field.Type))
	return nil
}

func kindFor(t schema.FieldType) value.Kind {
	switch t {
	case schema.FieldTypeNumber:
		return value.KindNumber
	case schema.FieldTypeCheckbox:
		return value.KindBool
	default:
		return value.KindString
	}
}

// Submit validates every field and, when clean, logs the accepted values and
// invokes the submit callback. The returned map is empty on success. Values
// are never cleared; the form stays filled either way.
func (f *Form) Submit(ctx context.Context) (validation.ErrorMap, error) {
	f.mu.Lock()
	if f.status != StatusReady {
		f.mu.Unlock()
		return nil, fmt.Errorf("form: not ready (status %s)", f.status)
	}

	errs := validation.Validate(f.schema.Fields, f.values)
	f.errors = errs
	if !errs.Valid() {
		f.log.Debug().Int("errors", len(errs)).Msg("submission rejected")
		f.mu.Unlock()
		return errs, nil
	}

	accepted := copyValues(f.values)
	fields := f.schema.Fields
	onSubmit := f.onSubmit
	log := f.log
	f.mu.Unlock()

	event := log.Info()
	for _, field := range fields {
		event = event.Interface(field.ID, accepted[field.ID].Interface())
	}
	event.Msg("form submitted")

	if onSubmit != nil {
		if err := onSubmit(ctx, accepted); err != nil {
			return errs, fmt.Errorf("form: submit callback: %w", err)
		}
	}
	return errs, nil
}

// Snapshot is a point-in-time copy of the form state for rendering.
type Snapshot struct {
	Status Status
	Schema schema.FormSchema
	Values map[string]value.Value
	Errors validation.ErrorMap
	Err    error
}

// Snapshot returns a consistent copy of the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		Status: f.status,
		Schema: f.schema,
		Values: copyValues(f.values),
		Errors: copyErrors(f.errors),
		Err:    f.loadErr,
	}
}

// VisibleFields returns the fields the evaluator currently shows, in schema
// order.
func (f *Form) VisibleFields() []schema.Field {
	f.mu.Lock()
	defer f.mu.Unlock()

	return visibility.Fields(f.schema.Fields, f.eval, visibility.Context{Values: f.values})
}

func copyValues(in map[string]value.Value) map[string]value.Value {
	out := make(map[string]value.Value, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyErrors(in validation.ErrorMap) validation.ErrorMap {
	out := make(validation.ErrorMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
