// Package openapi builds configured text fields from the string-typed
// properties of an OpenAPI component schema, translating schema constraints
// (required, minLength, maxLength, pattern) into field validators and schema
// formats into registered presets.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/presets"
	"github.com/goliatone/go-formfield/pkg/validate"
)

// Definition captures the constraints extracted for one text property.
type Definition struct {
	Name        string
	Caption     string
	Prompt      string
	Format      string
	Required    bool
	MinLength   *int
	MaxLength   *int
	Pattern     string
	DefaultText string
}

// Definitions extracts text-field definitions from the named component
// schema of a raw OpenAPI document. Non-string properties are skipped;
// results are ordered by property name so output is stable.
func Definitions(ctx context.Context, raw []byte, component string) ([]Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, errors.New("openapi: document has no components")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}

	schema := ref.Value
	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	var defs []Definition
	for name, property := range schema.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		if firstType(property.Value.Type) != "string" {
			continue
		}
		def := convertProperty(name, property.Value)
		_, def.Required = required[name]
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Fields builds a text field per definition in the document's component
// schema.
func Fields(ctx context.Context, raw []byte, component string) ([]*field.Text, error) {
	defs, err := Definitions(ctx, raw, component)
	if err != nil {
		return nil, err
	}
	fields := make([]*field.Text, 0, len(defs))
	for _, def := range defs {
		built, err := def.Build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, built)
	}
	return fields, nil
}

// Build turns the definition into a configured field. Constraint order
// follows the schema: length limits first, then the pattern.
func (d Definition) Build() (*field.Text, error) {
	f := field.New().
		WithCaption(d.caption()).
		WithInputPrompt(d.Prompt)

	if d.Required {
		f.WithRequired(true).
			WithRequiredError(fmt.Sprintf("%s is required", d.caption()))
	}
	if d.MinLength != nil {
		f.WithValidator(validate.MinLength(*d.MinLength, ""))
	}
	if d.MaxLength != nil {
		f.WithValidator(validate.MaxLength(*d.MaxLength, ""))
	}
	if d.Pattern != "" {
		pattern, err := validate.Pattern(d.Pattern, "")
		if err != nil {
			return nil, fmt.Errorf("openapi: property %q: %w", d.Name, err)
		}
		f.WithValidator(pattern)
	}
	presets.Default().Apply(presets.Descriptor{Name: d.Name, Format: d.Format}, f)
	if d.DefaultText != "" {
		if err := f.SetValue(d.DefaultText); err != nil {
			return nil, fmt.Errorf("openapi: property %q default: %w", d.Name, err)
		}
	}
	return f, nil
}

func (d Definition) caption() string {
	if d.Caption != "" {
		return d.Caption
	}
	return d.Name
}

func convertProperty(name string, src *openapi3.Schema) Definition {
	def := Definition{
		Name:    name,
		Caption: src.Title,
		Prompt:  src.Description,
		Format:  src.Format,
		Pattern: src.Pattern,
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		def.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		def.MaxLength = &value
	}
	if text, ok := src.Default.(string); ok {
		def.DefaultText = text
	}
	return def
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
