// Package presets maps declarative field formats to ready-made field
// configurations: validators, converters, and input prompts. Schema loaders
// resolve a preset from a descriptor instead of hand-wiring the same rules.
package presets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/convert"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/validate"
)

// Built-in preset identifiers exposed by the registry.
const (
	PresetEmail    = "email"
	PresetURL      = "url"
	PresetUUID     = "uuid"
	PresetDate     = "date"
	PresetDateTime = "date-time"
	PresetInteger  = "integer"
	PresetNumber   = "number"
)

// Descriptor carries the hints a schema loader knows about a field. Preset,
// when set, names a preset explicitly and bypasses matcher evaluation.
type Descriptor struct {
	Name   string
	Format string
	Preset string
}

// Preset applies a canned configuration to a field.
type Preset func(*field.Text)

// Matcher decides whether a preset should handle the supplied descriptor.
type Matcher func(Descriptor) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	apply    Preset
	order    int
}

// Registry selects presets for field descriptors based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a preset.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
	named map[string]Preset
}

// NewRegistry constructs a registry with the built-in presets registered.
func NewRegistry() *Registry {
	reg := &Registry{named: make(map[string]Preset)}
	reg.registerBuiltins()
	return reg
}

// Register adds a preset under the provided name and priority. Higher
// priority values take precedence during matcher evaluation; the latest
// registration wins for explicit name lookups.
func (r *Registry) Register(name string, priority int, matcher Matcher, preset Preset) {
	if r == nil || preset == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.named[trimmed] = preset
	if matcher == nil {
		return
	}
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		apply:    preset,
		order:    len(r.rules),
	})
}

// Resolve returns the preset for a descriptor. An explicit Preset hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(d Descriptor) (string, Preset, bool) {
	if r == nil {
		return "", nil, false
	}
	r.mu.RLock()
	if explicit := strings.TrimSpace(d.Preset); explicit != "" {
		preset, ok := r.named[explicit]
		r.mu.RUnlock()
		return explicit, preset, ok
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(d) {
			return entry.name, entry.apply, true
		}
	}
	return "", nil, false
}

// Apply resolves and applies a preset to the field, reporting the preset name
// when one matched.
func (r *Registry) Apply(d Descriptor, f *field.Text) (string, bool) {
	name, preset, ok := r.Resolve(d)
	if !ok || f == nil {
		return "", false
	}
	preset(f)
	return name, true
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry with the built-in presets.
func Default() *Registry {
	return defaultRegistry
}

func formatIs(values ...string) Matcher {
	return func(d Descriptor) bool {
		format := strings.ToLower(strings.TrimSpace(d.Format))
		for _, v := range values {
			if format == v {
				return true
			}
		}
		return false
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(PresetEmail, 90, formatIs("email", "idn-email"), func(f *field.Text) {
		f.AddValidator(validate.MustPattern(`[^@\s]+@[^@\s]+\.[^@\s]+`, "enter a valid email address"))
		if f.InputPrompt() == "" {
			f.SetInputPrompt("name@example.com")
		}
	})

	r.Register(PresetURL, 80, formatIs("uri", "url", "iri"), func(f *field.Text) {
		f.AddValidator(validate.MustPattern(`https?://\S+`, "enter a valid URL"))
		if f.InputPrompt() == "" {
			f.SetInputPrompt("https://example.com")
		}
	})

	r.Register(PresetUUID, 70, formatIs("uuid"), func(f *field.Text) {
		f.AddValidator(validate.MustPattern(
			`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
			"enter a valid UUID"))
	})

	r.Register(PresetDateTime, 60, formatIs("date-time"), func(f *field.Text) {
		f.SetConverter(convert.Time{})
		if f.InputPrompt() == "" {
			f.SetInputPrompt("2024-05-17T09:30:00Z")
		}
	})

	r.Register(PresetDate, 55, formatIs("date"), func(f *field.Text) {
		f.SetConverter(convert.Time{Layout: "2006-01-02"})
		if f.InputPrompt() == "" {
			f.SetInputPrompt("2024-05-17")
		}
	})

	r.Register(PresetNumber, 50, formatIs("number", "float", "double"), func(f *field.Text) {
		f.SetConverter(convert.Float{})
	})

	r.Register(PresetInteger, 45, formatIs("integer", "int32", "int64"), func(f *field.Text) {
		f.SetConverter(convert.Int{})
	})
}
