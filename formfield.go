// Package formfield exposes the module's simplest entry points: build
// validating text fields from an OpenAPI component or a declarative config
// document and render them with a named renderer.
package formfield

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fieldconfig"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

// New constructs an unconfigured text field, re-exported for callers that
// only need the core component.
func New() *field.Text {
	return field.New()
}

// FieldView aliases render.FieldView for callers composing views manually.
type FieldView = render.FieldView

// NewRegistry builds a renderer registry. With no arguments it registers the
// built-in vanilla HTML renderer; supplied renderers are registered instead.
func NewRegistry(renderers ...render.Renderer) (*render.Registry, error) {
	registry := render.NewRegistry()
	if len(renderers) == 0 {
		htmlRenderer, err := vanilla.New()
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, htmlRenderer)
	}
	for _, renderer := range renderers {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// GenerateHTML loads the OpenAPI source, builds the component's text fields,
// and renders each with the named renderer. It is the simplest entry point
// for callers that just want markup output.
func GenerateHTML(ctx context.Context, source openapi.Source, component, rendererName string, registry *render.Registry) ([]byte, error) {
	defs, err := openapi.DefinitionsFrom(ctx, source, component)
	if err != nil {
		return nil, err
	}

	renderer, err := resolveRenderer(registry, rendererName)
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	for _, def := range defs {
		built, err := def.Build()
		if err != nil {
			return nil, err
		}
		markup, err := renderer.Render(render.FieldView{
			Name:  def.Name,
			Field: built,
		})
		if err != nil {
			return nil, fmt.Errorf("formfield: render %q: %w", def.Name, err)
		}
		out.WriteString(markup)
	}
	return []byte(out.String()), nil
}

// GenerateConfigHTML parses a declarative field document and renders its
// fields, ordered by name, with the named renderer.
func GenerateConfigHTML(raw []byte, rendererName string, registry *render.Registry) ([]byte, error) {
	doc, err := fieldconfig.Parse(raw)
	if err != nil {
		return nil, err
	}
	fields, err := doc.Build()
	if err != nil {
		return nil, err
	}

	renderer, err := resolveRenderer(registry, rendererName)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		markup, err := renderer.Render(render.FieldView{
			Name:  name,
			Field: fields[name],
		})
		if err != nil {
			return nil, fmt.Errorf("formfield: render %q: %w", name, err)
		}
		out.WriteString(markup)
	}
	return []byte(out.String()), nil
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

func resolveRenderer(registry *render.Registry, name string) (render.Renderer, error) {
	if registry == nil {
		built, err := NewRegistry()
		if err != nil {
			return nil, err
		}
		registry = built
	}
	return registry.Get(name)
}
