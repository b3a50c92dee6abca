package field

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/binding"
	"github.com/goliatone/go-formfield/pkg/convert"
	"github.com/goliatone/go-formfield/pkg/validate"
)

// ErrReadOnly is returned when a value is committed to a read-only field.
var ErrReadOnly = errors.New("field: field is read-only")

// Text is a single-line text input field. The zero value is not usable;
// construct instances with New.
type Text struct {
	caption            string
	value              *string
	nullRepresentation string
	inputPrompt        string
	width              string
	readOnly           bool
	immediate          bool
	required           bool
	requiredError      string
	conversionError    string
	locale             string
	validators         []validate.Validator
	validationVisible  bool
	converter          convert.Converter
	dataSource         binding.Property
	componentError     error
	bufferedErr        error
	onRepaint          func()
	dirtyCount         int
	listeners          []Listener

	eager           bool
	eagerStatus     bool
	lastKnownText   *string
	eagerErr        error
	skipValueChange bool
}

// New constructs an empty text field. The null representation defaults to
// the empty string so an unset field never renders a null marker.
func New() *Text {
	return &Text{
		nullRepresentation: "",
		validationVisible:  true,
	}
}

// NewWithCaption constructs a field with a caption.
func NewWithCaption(caption string) *Text {
	return New().WithCaption(caption)
}

// NewWithDataSource constructs a field bound to a data source.
func NewWithDataSource(property binding.Property) *Text {
	return New().WithDataSource(property)
}

// NewWithCaptionValue constructs a captioned field with an initial value.
func NewWithCaptionValue(caption, value string) *Text {
	return New().WithCaption(caption).WithValue(value)
}

// Value returns the committed presentation text, or the null representation
// when no value has been committed yet.
func (t *Text) Value() string {
	if t.value == nil {
		return t.nullRepresentation
	}
	return *t.value
}

// SetValue commits a new value through the standard assignment path. Any
// pending eager-validation state is discarded first; the committed value is
// authoritative from here on.
func (t *Text) SetValue(text string) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.lastKnownText = nil
	t.eagerErr = nil
	return t.assign(text, true)
}

// assign stores the committed text, optionally writing it through to the
// bound data source first. The change echo produced by that write is
// swallowed by the one-shot guard.
func (t *Text) assign(text string, push bool) error {
	if push && t.dataSource != nil {
		value, err := t.convertToModel(text)
		if err != nil {
			t.bufferedErr = err
			t.markDirty()
			return err
		}
		t.skipValueChange = true
		err = t.dataSource.SetValue(value)
		t.skipValueChange = false
		if err != nil {
			t.bufferedErr = err
			t.markDirty()
			return err
		}
	}
	t.bufferedErr = nil
	committed := text
	t.value = &committed
	t.markDirty()
	t.FireEvent(ValueChangeEvent{Value: text})
	return nil
}

// Valid reports the eager outcome while uncommitted text is pending and
// eager mode is on; otherwise it validates the committed value.
func (t *Text) Valid() bool {
	if t.eager && t.lastKnownText != nil {
		return t.eagerStatus
	}
	return t.ValidateText(t.Value()) == nil
}

// Validate applies the classic fail-fast contract: the failure the eager
// path merely records is raised to the caller here instead.
func (t *Text) Validate() error {
	if t.eager && t.lastKnownText != nil {
		return t.ValidateText(*t.lastKnownText)
	}
	return t.ValidateText(t.Value())
}

// ValidateText validates a candidate text against the required flag and the
// validator chain without touching field state: the required/empty check
// first, then every configured validator. All rejections are preserved, not
// just the first.
func (t *Text) ValidateText(text string) error {
	if t.required && text == "" {
		return validate.NewEmptyValueError(t.requiredError)
	}
	var errs []error
	for _, v := range t.validators {
		if err := v.Validate(text); err != nil {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return validate.Compose(errs...)
	}
}

// ErrorMessage aggregates the three independent error sources: the component
// error attached by a host container, the current validation error, and the
// buffered conversion/commit error from the data-binding layer. It returns
// nil when all three are absent and otherwise preserves every present
// source in one composite.
func (t *Text) ErrorMessage() error {
	validationErr := t.validationError()
	if t.componentError == nil && validationErr == nil && t.bufferedErr == nil {
		return nil
	}
	return validate.Compose(t.componentError, validationErr, t.bufferedErr)
}

// validationError selects between the recorded eager failure and a fresh
// standard validation of the committed value. Invisible rejections are
// stripped on both paths: the field stays invalid, but only visible sources
// are rendered, and a mixed rejection keeps its visible members.
func (t *Text) validationError() error {
	if t.eager && t.lastKnownText != nil {
		return validate.Visible(t.eagerErr)
	}
	if !t.validationVisible {
		return nil
	}
	return validate.Visible(t.ValidateText(t.Value()))
}

func (t *Text) convertToModel(text string) (any, error) {
	target := t.dataSource.Type()
	conv := t.converter
	if conv == nil {
		builtin, ok := convert.ForType(target)
		if !ok {
			return nil, fmt.Errorf("field: no converter for model type %s", target)
		}
		conv = builtin
	}
	value, err := conv.ToModel(text, target, t.locale)
	if err != nil {
		var conversion *convert.ConversionError
		if t.conversionError != "" && errors.As(err, &conversion) {
			conversion.Message = t.conversionError
		}
		return nil, err
	}
	return value, nil
}

func (t *Text) convertToPresentation(value any) (string, error) {
	conv := t.converter
	if conv == nil {
		if t.dataSource != nil {
			if builtin, ok := convert.ForType(t.dataSource.Type()); ok {
				conv = builtin
			}
		}
	}
	if conv == nil {
		if s, ok := value.(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("field: no converter for model value %T", value)
	}
	return conv.ToPresentation(value, t.locale)
}

func (t *Text) markDirty() {
	t.MarkAsDirty()
}

// MarkAsDirty records a re-render request and invokes the repaint callback.
// The counter lets tests and renderers observe exactly how often the field
// asked to be redrawn.
func (t *Text) MarkAsDirty() {
	t.dirtyCount++
	if t.onRepaint != nil {
		t.onRepaint()
	}
}

// DirtyCount returns the number of re-render requests so far.
func (t *Text) DirtyCount() int {
	return t.dirtyCount
}

// OnRepaint registers the re-render signal. Renderers use it to learn that
// the field's visual state, including its error indicator, went stale.
func (t *Text) OnRepaint(fn func()) {
	t.onRepaint = fn
}
