package validate

import "errors"

// Validator checks a candidate text value and reports a rejection as an
// error. Implementations receive the presentation-layer text exactly as the
// user typed it; conversion to model types happens elsewhere.
type Validator interface {
	Validate(text string) error
}

// Func adapts a plain function to the Validator interface.
type Func func(text string) error

// Validate implements Validator.
func (f Func) Validate(text string) error {
	return f(text)
}

// InvalidValueError is the rejection a validator reports. Invisible failures
// still mark the field invalid but are omitted from rendered error output.
type InvalidValueError struct {
	Message   string
	Invisible bool
}

// NewInvalidValueError builds a visible rejection with the given message.
func NewInvalidValueError(message string) *InvalidValueError {
	return &InvalidValueError{Message: message}
}

func (e *InvalidValueError) Error() string {
	if e.Message == "" {
		return "invalid value"
	}
	return e.Message
}

// EmptyValueError reports a required field with no content. It unwraps to an
// InvalidValueError so callers can treat both uniformly.
type EmptyValueError struct {
	InvalidValueError
}

// NewEmptyValueError builds the required-but-empty rejection. An empty
// message falls back to a generic one.
func NewEmptyValueError(message string) *EmptyValueError {
	if message == "" {
		message = "value is required"
	}
	return &EmptyValueError{InvalidValueError{Message: message}}
}

// Unwrap exposes the embedded InvalidValueError to errors.As.
func (e *EmptyValueError) Unwrap() error {
	return &e.InvalidValueError
}

// IsInvisible reports whether err carries the invisible flag. An aggregated
// error is invisible only when every source is; a single visible rejection
// makes the whole aggregate visible. Errors outside the validate taxonomy
// are never invisible.
func IsInvisible(err error) bool {
	if err == nil {
		return false
	}
	var composite *Composite
	if errors.As(err, &composite) {
		for _, source := range composite.Errors() {
			if !IsInvisible(source) {
				return false
			}
		}
		return true
	}
	var invalid *InvalidValueError
	if errors.As(err, &invalid) {
		return invalid.Invisible
	}
	return false
}

// Visible strips invisible rejections from an error so only displayable
// sources remain. It returns nil when nothing is left to show; a field can
// still be invalid in that case.
func Visible(err error) error {
	if err == nil {
		return nil
	}
	var composite *Composite
	if errors.As(err, &composite) {
		var kept []error
		for _, source := range composite.Errors() {
			if !IsInvisible(source) {
				kept = append(kept, source)
			}
		}
		switch len(kept) {
		case 0:
			return nil
		case 1:
			return kept[0]
		default:
			return Compose(kept...)
		}
	}
	if IsInvisible(err) {
		return nil
	}
	return err
}

// AsInvalid normalises an arbitrary validator error into an
// InvalidValueError, preserving it when it already is one.
func AsInvalid(err error) *InvalidValueError {
	if err == nil {
		return nil
	}
	var invalid *InvalidValueError
	if errors.As(err, &invalid) {
		return invalid
	}
	return &InvalidValueError{Message: err.Error()}
}
