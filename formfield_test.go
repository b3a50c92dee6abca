package formfield

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/openapi"
)

const accountDocument = `
openapi: 3.0.3
info:
  title: accounts
  version: "1.0"
paths: {}
components:
  schemas:
    Account:
      type: object
      required: [username]
      properties:
        username:
          type: string
          title: Username
          minLength: 3
        email:
          type: string
          format: email
`

func TestGenerateHTML(t *testing.T) {
	files := fstest.MapFS{
		"schema.yaml": &fstest.MapFile{Data: []byte(accountDocument)},
	}
	src := openapi.SourceFromFS(files, "schema.yaml")

	out, err := GenerateHTML(context.Background(), src, "Account", "vanilla", nil)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	html := string(out)
	for _, want := range []string{`name="username"`, `name="email"`, "Username", "required"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestGenerateHTML_UnknownRenderer(t *testing.T) {
	files := fstest.MapFS{
		"schema.yaml": &fstest.MapFile{Data: []byte(accountDocument)},
	}
	if _, err := GenerateHTML(context.Background(), openapi.SourceFromFS(files, "schema.yaml"), "Account", "missing", nil); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}

func TestGenerateConfigHTML(t *testing.T) {
	const doc = `
fields:
  nickname:
    caption: Nickname
    inputPrompt: optional
  homepage:
    format: uri
`
	out, err := GenerateConfigHTML([]byte(doc), "vanilla", nil)
	if err != nil {
		t.Fatalf("GenerateConfigHTML: %v", err)
	}
	html := string(out)
	// fields render in name order
	if strings.Index(html, `name="homepage"`) > strings.Index(html, `name="nickname"`) {
		t.Fatalf("fields out of order:\n%s", html)
	}
	if !strings.Contains(html, `placeholder="optional"`) {
		t.Fatalf("input prompt missing:\n%s", html)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	files := EmbeddedTemplates()
	if _, err := files.Open("templates/field.tmpl"); err != nil {
		t.Fatalf("embedded template missing: %v", err)
	}
}
