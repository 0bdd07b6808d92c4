package vanilla

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-dynaform/pkg/render"
	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/validation"
	"github.com/goliatone/go-dynaform/pkg/value"
)

func renderView(t *testing.T, view render.View) string {
	t.Helper()
	r := Must()
	out, err := r.Render(context.Background(), view)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return string(out)
}

func TestRenderEmitsEveryKnownFieldType(t *testing.T) {
	t.Parallel()

	view := render.View{
		Title: "Signup",
		Fields: []schema.Field{
			{ID: "name", Label: "Name", Type: schema.FieldTypeText, Placeholder: "Jane"},
			{ID: "dob", Label: "Birthday", Type: schema.FieldTypeDate},
			{ID: "age", Label: "Age", Type: schema.FieldTypeNumber},
			{ID: "plan", Label: "Plan", Type: schema.FieldTypeSelect, Options: []schema.Option{
				{Value: "basic", Label: "Basic"},
				{Value: "pro", Label: "Pro"},
			}},
			{ID: "tos", Label: "Accept terms", Type: schema.FieldTypeCheckbox},
		},
		Values: map[string]value.Value{
			"plan": value.String("pro"),
			"tos":  value.Bool(true),
		},
	}

	out := renderView(t, view)

	for _, want := range []string{
		`<input class="df-input" type="text" id="df-name" name="name" placeholder="Jane">`,
		`type="date" id="df-dob"`,
		`type="number" id="df-age"`,
		`<option value=""></option>`,
		`<option value="pro" selected>Pro</option>`,
		`<input class="df-checkbox" type="checkbox" id="df-tos" name="tos" value="true" checked>`,
		`<h1 class="df-title">Signup</h1>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderSkipsUnknownFieldType(t *testing.T) {
	t.Parallel()

	view := render.View{
		Fields: []schema.Field{
			{ID: "known", Label: "Known", Type: schema.FieldTypeText},
			{ID: "mystery", Label: "Mystery", Type: "signature-pad"},
		},
	}

	out := renderView(t, view)
	if strings.Contains(out, "mystery") {
		t.Fatalf("unknown field type leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "df-known") {
		t.Fatal("known field was dropped alongside the unknown one")
	}
}

func TestRenderShowsValidationErrors(t *testing.T) {
	t.Parallel()

	view := render.View{
		Fields: []schema.Field{
			{ID: "email", Label: "Email", Type: schema.FieldTypeText, Required: true},
		},
		Errors: validation.ErrorMap{"email": "Email is required"},
	}

	out := renderView(t, view)
	if !strings.Contains(out, `<p class="df-error" role="alert">Email is required</p>`) {
		t.Fatalf("error message missing:\n%s", out)
	}
	if !strings.Contains(out, `required>`) {
		t.Fatalf("required attribute missing:\n%s", out)
	}
}

func TestRenderEscapesAuthorText(t *testing.T) {
	t.Parallel()

	view := render.View{
		Title: `<script>alert(1)</script>Contact`,
		Fields: []schema.Field{
			{ID: "q", Label: `<b>Question</b>`, Type: schema.FieldTypeText},
		},
		Values: map[string]value.Value{
			"q": value.String(`"><script>`),
		},
	}

	out := renderView(t, view)
	if strings.Contains(out, "<script>") {
		t.Fatalf("unsanitized markup leaked:\n%s", out)
	}
	if !strings.Contains(out, "Contact") {
		t.Fatal("title text was stripped entirely")
	}
}

func TestRenderWiresSubmitButton(t *testing.T) {
	t.Parallel()

	view := render.View{
		Fields: []schema.Field{
			{ID: "name", Label: "Name", Type: schema.FieldTypeText},
		},
		SubmitButton: schema.SubmitButton{Text: "Send it", LoadingText: "Sending..."},
	}

	out := renderView(t, view)
	if !strings.Contains(out, `data-loading-text="Sending..."`) {
		t.Fatalf("loading text not wired:\n%s", out)
	}
	if !strings.Contains(out, ">Send it</button>") {
		t.Fatalf("submit label missing:\n%s", out)
	}
}

func TestRenderDefaultsSubmitLabel(t *testing.T) {
	t.Parallel()

	out := renderView(t, render.View{
		Fields: []schema.Field{{ID: "name", Label: "Name", Type: schema.FieldTypeText}},
	})
	if !strings.Contains(out, ">Submit</button>") {
		t.Fatalf("default submit label missing:\n%s", out)
	}
}
