package validate

import "strings"

// Composite aggregates simultaneous error sources while preserving each one.
// Rendering layers decide how multiple messages are displayed; Error joins
// them for plain-text consumers.
type Composite struct {
	errs []error
}

// Compose drops nil entries and aggregates the rest. It returns nil when no
// source is present and never collapses multiple sources into the first.
func Compose(errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &Composite{errs: kept}
}

func (e *Composite) Error() string {
	parts := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the aggregated sources to errors.Is and errors.As.
func (e *Composite) Unwrap() []error {
	return e.errs
}

// Errors returns a copy of the aggregated sources in composition order.
func (e *Composite) Errors() []error {
	return append([]error(nil), e.errs...)
}
