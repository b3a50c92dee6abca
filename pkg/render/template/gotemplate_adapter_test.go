package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, files fstest.MapFS, opts ...gotemplate.Option) template.TemplateRenderer {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("gotemplate.New: %v", err)
	}
	return engine
}

func TestEngineRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected constructor to fail without a template source")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"widgets/input.tmpl": &fstest.MapFile{
			Data: []byte(`<input name="{{ name }}" value="{{ value }}">`),
		},
	}
	engine := newEngine(t, files)

	out, err := engine.RenderTemplate("widgets/input", map[string]any{
		"name":  "title",
		"value": "hello",
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !strings.Contains(out, `name="title"`) || !strings.Contains(out, `value="hello"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRenderDispatchesInlineContent(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{})

	out, err := engine.Render(`Hello {{ who }}!`, map[string]any{"who": "world"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hello world!" {
		t.Fatalf("output = %q", out)
	}
}

func TestGlobalContextAvailableToTemplates(t *testing.T) {
	files := fstest.MapFS{
		"page.tmpl": &fstest.MapFile{Data: []byte(`{{ brand }}: {{ title }}`)},
	}
	engine := newEngine(t, files, gotemplate.WithGlobalData(map[string]any{
		"brand": "formfield",
	}))

	out, err := engine.RenderTemplate("page", map[string]any{"title": "Login"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "formfield: Login" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{})
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestStructDataConvertedThroughJSON(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{})

	data := struct {
		Caption string `json:"caption"`
	}{Caption: "Username"}

	out, err := engine.RenderString(`{{ caption }}`, data)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Username" {
		t.Fatalf("output = %q", out)
	}
}
