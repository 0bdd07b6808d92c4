package render

import (
	"context"
	"testing"
)

type fakeRenderer struct{ name string }

func (r fakeRenderer) Name() string                                 { return r.name }
func (r fakeRenderer) ContentType() string                          { return "text/plain" }
func (r fakeRenderer) Render(context.Context, View) ([]byte, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if err := reg.Register(fakeRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(fakeRenderer{name: "vanilla"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := reg.Register(fakeRenderer{}); err == nil {
		t.Fatal("expected empty name to fail")
	}

	if _, err := reg.Get("vanilla"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := reg.Get("ghost"); err == nil {
		t.Fatal("expected lookup miss to fail")
	}
	if !reg.Has("vanilla") || reg.Has("ghost") {
		t.Fatal("Has reports wrong membership")
	}

	reg.MustRegister(fakeRenderer{name: "tui"})
	got := reg.List()
	want := []string{"tui", "vanilla"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("List = %v, want %v", got, want)
	}
}

func TestViewHelpers(t *testing.T) {
	t.Parallel()

	v := View{}
	if !v.Value("missing").IsUnset() {
		t.Error("missing value should be unset")
	}
	if v.Error("missing") != "" {
		t.Error("missing error should be empty")
	}
	if v.SubmitText() != "Submit" {
		t.Errorf("default submit text = %q", v.SubmitText())
	}
}
