// Package fieldconfig builds configured text fields from declarative
// JSON or YAML definitions, so applications can keep field setup next to
// their other configuration instead of in code.
package fieldconfig

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/presets"
	"github.com/goliatone/go-formfield/pkg/validate"
)

// FieldConfig mirrors one field entry in a definition document.
type FieldConfig struct {
	Caption            string   `json:"caption" yaml:"caption"`
	InputPrompt        string   `json:"inputPrompt" yaml:"inputPrompt"`
	Width              string   `json:"width" yaml:"width"`
	ReadOnly           bool     `json:"readOnly" yaml:"readOnly"`
	Required           bool     `json:"required" yaml:"required"`
	RequiredError      string   `json:"requiredError" yaml:"requiredError"`
	Eager              bool     `json:"eager" yaml:"eager"`
	NullRepresentation *string  `json:"nullRepresentation" yaml:"nullRepresentation"`
	Locale             string   `json:"locale" yaml:"locale"`
	ConversionError    string   `json:"conversionError" yaml:"conversionError"`
	MinLength          *int     `json:"minLength" yaml:"minLength"`
	MaxLength          *int     `json:"maxLength" yaml:"maxLength"`
	Pattern            string   `json:"pattern" yaml:"pattern"`
	Options            []string `json:"options" yaml:"options"`
	Format             string   `json:"format" yaml:"format"`
	Preset             string   `json:"preset" yaml:"preset"`
	Value              *string  `json:"value" yaml:"value"`
}

// Document is the top-level definition file: field configurations keyed by
// field name.
type Document struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// Parse decodes a definition document. JSON is tried first, then YAML.
func Parse(data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("fieldconfig: document is empty")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Document{}, fmt.Errorf("fieldconfig: invalid JSON or YAML")
}

// Build constructs every field in the document, keyed by name.
func (d Document) Build() (map[string]*field.Text, error) {
	out := make(map[string]*field.Text, len(d.Fields))

	// deterministic construction order so pattern errors are stable
	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		built, err := d.Fields[name].Build(name)
		if err != nil {
			return nil, err
		}
		out[name] = built
	}
	return out, nil
}

// Build constructs a single field from its configuration.
func (c FieldConfig) Build(name string) (*field.Text, error) {
	f := field.New().
		WithCaption(c.captionOr(name)).
		WithInputPrompt(c.InputPrompt).
		WithEagerValidation(c.Eager).
		WithLocale(c.Locale)

	if c.Width != "" {
		f.WithWidth(c.Width)
	}
	if c.Required {
		message := c.RequiredError
		if message == "" {
			message = fmt.Sprintf("%s is required", c.captionOr(name))
		}
		f.WithRequired(true).WithRequiredError(message)
	}
	if c.ConversionError != "" {
		f.WithConversionError(c.ConversionError)
	}
	if c.NullRepresentation != nil {
		f.WithNullRepresentation(*c.NullRepresentation)
	}
	if c.MinLength != nil {
		f.WithValidator(validate.MinLength(*c.MinLength, ""))
	}
	if c.MaxLength != nil {
		f.WithValidator(validate.MaxLength(*c.MaxLength, ""))
	}
	if c.Pattern != "" {
		pattern, err := validate.Pattern(c.Pattern, "")
		if err != nil {
			return nil, fmt.Errorf("fieldconfig: field %q: %w", name, err)
		}
		f.WithValidator(pattern)
	}
	if len(c.Options) > 0 {
		f.WithValidator(validate.OneOf(c.Options, ""))
	}
	presets.Default().Apply(presets.Descriptor{Name: name, Format: c.Format, Preset: c.Preset}, f)
	if c.Value != nil {
		if err := f.SetValue(*c.Value); err != nil {
			return nil, fmt.Errorf("fieldconfig: field %q initial value: %w", name, err)
		}
	}
	// the read-only flag is applied last so an initial value can still be set
	f.WithReadOnly(c.ReadOnly)
	return f, nil
}

func (c FieldConfig) captionOr(name string) string {
	if c.Caption != "" {
		return c.Caption
	}
	return name
}
