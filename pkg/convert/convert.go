// Package convert translates between a field's presentation text and the
// model values of a bound data source. Converters are locale aware; the
// locale is a BCP 47 style language tag such as "en" or "de-DE".
package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Converter maps presentation text to a model value of the target type and
// back. ToModel failures surface as *ConversionError.
type Converter interface {
	ToModel(text string, target reflect.Type, locale string) (any, error)
	ToPresentation(value any, locale string) (string, error)
}

// ConversionError reports a failed text-to-model translation. Message is the
// caller-configured display text; when empty a generated one is used.
type ConversionError struct {
	Text    string
	Target  reflect.Type
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Text, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// String is the identity converter for string-typed data sources.
type String struct{}

func (String) ToModel(text string, _ reflect.Type, _ string) (any, error) {
	return text, nil
}

func (String) ToPresentation(value any, _ string) (string, error) {
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("convert: expected string model value, got %T", value)
	}
	return s, nil
}

// Int parses whole numbers. Grouping separators are not accepted.
type Int struct{}

func (Int) ToModel(text string, target reflect.Type, _ string) (any, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, &ConversionError{Text: text, Target: target, Cause: err}
	}
	return n, nil
}

func (Int) ToPresentation(value any, _ string) (string, error) {
	if value == nil {
		return "", nil
	}
	n, ok := value.(int)
	if !ok {
		return "", fmt.Errorf("convert: expected int model value, got %T", value)
	}
	return strconv.Itoa(n), nil
}

// Float parses decimal numbers, honouring the locale's decimal separator.
type Float struct{}

func (Float) ToModel(text string, target reflect.Type, locale string) (any, error) {
	trimmed := strings.TrimSpace(text)
	if decimalComma(locale) {
		trimmed = strings.ReplaceAll(trimmed, ",", ".")
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, &ConversionError{Text: text, Target: target, Cause: err}
	}
	return f, nil
}

func (Float) ToPresentation(value any, locale string) (string, error) {
	if value == nil {
		return "", nil
	}
	f, ok := value.(float64)
	if !ok {
		return "", fmt.Errorf("convert: expected float64 model value, got %T", value)
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if decimalComma(locale) {
		out = strings.Replace(out, ".", ",", 1)
	}
	return out, nil
}

// Bool accepts the strconv.ParseBool forms.
type Bool struct{}

func (Bool) ToModel(text string, target reflect.Type, _ string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return nil, &ConversionError{Text: text, Target: target, Cause: err}
	}
	return b, nil
}

func (Bool) ToPresentation(value any, _ string) (string, error) {
	if value == nil {
		return "", nil
	}
	b, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("convert: expected bool model value, got %T", value)
	}
	return strconv.FormatBool(b), nil
}

// Time parses and formats timestamps using Layout, defaulting to RFC 3339.
type Time struct {
	Layout string
}

func (c Time) layout() string {
	if c.Layout == "" {
		return time.RFC3339
	}
	return c.Layout
}

func (c Time) ToModel(text string, target reflect.Type, _ string) (any, error) {
	ts, err := time.Parse(c.layout(), strings.TrimSpace(text))
	if err != nil {
		return nil, &ConversionError{Text: text, Target: target, Cause: err}
	}
	return ts, nil
}

func (c Time) ToPresentation(value any, _ string) (string, error) {
	if value == nil {
		return "", nil
	}
	ts, ok := value.(time.Time)
	if !ok {
		return "", fmt.Errorf("convert: expected time.Time model value, got %T", value)
	}
	return ts.Format(c.layout()), nil
}

// ForType returns the built-in converter for a model type, if one exists.
// Fields fall back to this lookup when no explicit converter is configured.
func ForType(target reflect.Type) (Converter, bool) {
	if target == nil {
		return nil, false
	}
	switch target {
	case reflect.TypeOf(""):
		return String{}, true
	case reflect.TypeOf(0):
		return Int{}, true
	case reflect.TypeOf(float64(0)):
		return Float{}, true
	case reflect.TypeOf(false):
		return Bool{}, true
	case reflect.TypeOf(time.Time{}):
		return Time{}, true
	}
	return nil, false
}

// Locales whose conventional decimal separator is a comma. The check only
// looks at the language part of the tag.
var commaLocales = map[string]struct{}{
	"de": {}, "fr": {}, "es": {}, "it": {}, "pt": {}, "nl": {},
	"fi": {}, "sv": {}, "da": {}, "nb": {}, "pl": {}, "tr": {},
}

func decimalComma(locale string) bool {
	if locale == "" {
		return false
	}
	lang := strings.ToLower(locale)
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	_, ok := commaLocales[lang]
	return ok
}
