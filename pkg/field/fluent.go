package field

import (
	"github.com/goliatone/go-formfield/pkg/binding"
	"github.com/goliatone/go-formfield/pkg/convert"
	"github.com/goliatone/go-formfield/pkg/validate"
)

// Plain setters and accessors. The With* builders below delegate here and
// return the field so configuration reads as one chain.

func (t *Text) SetCaption(caption string) { t.caption = caption }

func (t *Text) Caption() string { return t.caption }

func (t *Text) SetInputPrompt(prompt string) { t.inputPrompt = prompt }

func (t *Text) InputPrompt() string { return t.inputPrompt }

func (t *Text) SetWidth(width string) { t.width = width }

func (t *Text) Width() string { return t.width }

func (t *Text) SetReadOnly(readOnly bool) { t.readOnly = readOnly }

func (t *Text) ReadOnly() bool { return t.readOnly }

// SetImmediate controls whether interaction events are dispatched to the
// field as they happen rather than batched on commit.
func (t *Text) SetImmediate(immediate bool) { t.immediate = immediate }

func (t *Text) Immediate() bool { return t.immediate }

func (t *Text) SetRequired(required bool) { t.required = required }

func (t *Text) Required() bool { return t.required }

// SetRequiredError configures the message used when a required field is
// empty.
func (t *Text) SetRequiredError(message string) { t.requiredError = message }

func (t *Text) RequiredError() string { return t.requiredError }

// SetConversionError configures the display message used when converting
// the field text to the bound model type fails.
func (t *Text) SetConversionError(message string) { t.conversionError = message }

func (t *Text) SetNullRepresentation(repr string) { t.nullRepresentation = repr }

func (t *Text) NullRepresentation() string { return t.nullRepresentation }

func (t *Text) SetLocale(locale string) { t.locale = locale }

func (t *Text) Locale() string { return t.locale }

func (t *Text) SetConverter(c convert.Converter) { t.converter = c }

// AddValidator appends a validator to the chain. Order is preserved.
func (t *Text) AddValidator(v validate.Validator) {
	if v != nil {
		t.validators = append(t.validators, v)
	}
}

// SetValidationVisible controls whether standard validation failures are
// reported through ErrorMessage. Eager failures are tracked independently.
func (t *Text) SetValidationVisible(visible bool) { t.validationVisible = visible }

// SetComponentError attaches an error on behalf of a host container. Pass
// nil to clear it.
func (t *Text) SetComponentError(err error) { t.componentError = err }

func (t *Text) ComponentError() error { return t.componentError }

// Fluent builders.

// WithCaption sets the field caption.
func (t *Text) WithCaption(caption string) *Text {
	t.SetCaption(caption)
	return t
}

// WithValue commits an initial value. Commit errors are not raised here;
// they surface through ErrorMessage like any other buffered failure.
func (t *Text) WithValue(text string) *Text {
	_ = t.SetValue(text)
	return t
}

// WithFullWidth stretches the field across its container.
func (t *Text) WithFullWidth() *Text {
	t.SetWidth("100%")
	return t
}

// WithWidth sets an explicit CSS width such as "20em" or "100%".
func (t *Text) WithWidth(width string) *Text {
	t.SetWidth(width)
	return t
}

// WithReadOnly toggles write protection.
func (t *Text) WithReadOnly(readOnly bool) *Text {
	t.SetReadOnly(readOnly)
	return t
}

// WithRequired marks the field as mandatory.
func (t *Text) WithRequired(required bool) *Text {
	t.SetRequired(required)
	return t
}

// WithRequiredError sets the required-but-empty message.
func (t *Text) WithRequiredError(message string) *Text {
	t.SetRequiredError(message)
	return t
}

// WithValidator appends a validator and forces the field into immediate
// mode; per-interaction validators are meaningless without immediate
// dispatch.
func (t *Text) WithValidator(v validate.Validator) *Text {
	t.SetImmediate(true)
	t.AddValidator(v)
	return t
}

// WithConverter overrides the converter used for the bound data source.
func (t *Text) WithConverter(c convert.Converter) *Text {
	t.SetConverter(c)
	return t
}

// WithConversionError sets the display message for conversion failures.
func (t *Text) WithConversionError(message string) *Text {
	t.SetConversionError(message)
	return t
}

// WithInputPrompt sets the placeholder shown while the field is empty.
func (t *Text) WithInputPrompt(prompt string) *Text {
	t.SetInputPrompt(prompt)
	return t
}

// WithNullRepresentation overrides how an unset value is presented.
func (t *Text) WithNullRepresentation(repr string) *Text {
	t.SetNullRepresentation(repr)
	return t
}

// WithDataSource binds the field to a data source.
func (t *Text) WithDataSource(property binding.Property) *Text {
	t.SetDataSource(property)
	return t
}

// WithEagerValidation toggles per-keystroke validation.
func (t *Text) WithEagerValidation(enabled bool) *Text {
	t.SetEagerValidation(enabled)
	return t
}

// WithLocale sets the locale converters use.
func (t *Text) WithLocale(locale string) *Text {
	t.SetLocale(locale)
	return t
}
