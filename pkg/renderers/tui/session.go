package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session drives interactive prompting for text fields. Each Ask runs the
// field's validation per submitted answer, so the terminal behaves like a
// field validating while the user types: the prompt is re-shown with the
// validation message until the answer passes, and the accepted answer is
// committed to the field.
type Session struct {
	driver PromptDriver
}

// NewSession builds a session backed by a survey prompt driver unless an
// option swaps it out.
func NewSession(opts ...Option) *Session {
	s := &Session{driver: newSurveyDriver()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask prompts for a single field and commits the accepted answer. A read-only
// field is printed instead of prompted. Returns ErrAborted when the user
// cancels the prompt.
func (s *Session) Ask(ctx context.Context, f *field.Text) error {
	if f == nil {
		return ErrNoField
	}
	if f.ReadOnly() {
		return s.driver.Info(ctx, fmt.Sprintf("%s: %s", promptMessage(f), f.Value()))
	}
	cfg := InputConfig{
		Message: promptMessage(f),
		Default: f.Value(),
		Help:    f.InputPrompt(),
		Validator: func(text string) error {
			f.FireEvent(field.TextChangeEvent{Text: text})
			return f.ValidateText(text)
		},
	}
	answer, err := s.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	return f.SetValue(answer)
}

// AskAll prompts for each field in order, stopping at the first failure.
func (s *Session) AskAll(ctx context.Context, fields []*field.Text) error {
	for _, f := range fields {
		if err := s.Ask(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func promptMessage(f *field.Text) string {
	if caption := f.Caption(); caption != "" {
		return caption
	}
	return "Value"
}
