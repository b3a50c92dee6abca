// Package vanilla renders fields to dependency-free HTML markup. Markup is
// produced through the template seam so applications can restyle it, and
// caller-supplied description markup is sanitized before it reaches the
// document.
package vanilla

import (
	"errors"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/validate"
)

const fieldTemplate = "templates/field"

// Renderer produces HTML for one field at a time.
type Renderer struct {
	templates template.TemplateRenderer
	policy    *bluemonday.Policy
	theme     *theme.RendererConfig
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplateRenderer overrides the template engine, typically for tests.
func WithTemplateRenderer(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// WithTheme applies a resolved theme; its tokens and CSS variables flow into
// the field chrome.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithSanitizerPolicy overrides the policy applied to description markup.
func WithSanitizerPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// New constructs a renderer backed by the embedded templates unless
// overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
		if err != nil {
			return nil, err
		}
		r.templates = engine
	}
	if r.policy == nil {
		r.policy = bluemonday.UGCPolicy()
	}
	return r, nil
}

// Name identifies this renderer in a registry.
func (r *Renderer) Name() string {
	return "vanilla"
}

// ContentType reports the MIME type of rendered output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// View pairs a field with presentation extras the field itself does not
// carry: the form input name and optional description markup.
type View = render.FieldView

// Render produces the markup for one field view, including its current
// error list.
func (r *Renderer) Render(view View) (string, error) {
	if view.Field == nil {
		return "", errors.New("vanilla: field is nil")
	}
	f := view.Field

	data := map[string]any{
		"name":        view.Name,
		"caption":     f.Caption(),
		"value":       f.Value(),
		"prompt":      f.InputPrompt(),
		"width":       f.Width(),
		"required":    f.Required(),
		"readonly":    f.ReadOnly(),
		"invalid":     !f.Valid(),
		"errors":      visibleMessages(f.ErrorMessage()),
		"description": r.sanitize(view.Description),
		"chromeClass": r.chromeClass(),
		"themeStyle":  r.themeStyle(),
	}
	return r.templates.RenderTemplate(fieldTemplate, data)
}

func (r *Renderer) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.policy.Sanitize(trimmed))
}

func (r *Renderer) chromeClass() string {
	if r.theme == nil {
		return ""
	}
	return r.theme.Tokens["field"]
}

// themeStyle flattens the theme's CSS variables into an inline style, keyed
// order kept stable for snapshot-friendly output.
func (r *Renderer) themeStyle() string {
	if r.theme == nil || len(r.theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(r.theme.CSSVars))
	for key := range r.theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(r.theme.CSSVars[key])
		b.WriteString(";")
	}
	return b.String()
}

// visibleMessages flattens an aggregated error into display strings,
// dropping invisible rejections.
func visibleMessages(err error) []string {
	if err == nil {
		return nil
	}
	sources := []error{err}
	var composite *validate.Composite
	if errors.As(err, &composite) {
		sources = composite.Errors()
	}

	var messages []string
	for _, source := range sources {
		if source == nil || validate.IsInvisible(source) {
			continue
		}
		messages = append(messages, source.Error())
	}
	return messages
}
