package field

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/binding"
	"github.com/goliatone/go-formfield/pkg/validate"
)

func TestEager_NoConstraintsAlwaysValid(t *testing.T) {
	f := New().WithEagerValidation(true)

	for _, text := range []string{"", "a", "hello world", "äöü"} {
		f.FireEvent(TextChangeEvent{Text: text})
		if !f.Valid() {
			t.Fatalf("unconstrained field invalid for %q", text)
		}
		if err := f.ErrorMessage(); err != nil {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
	}
}

func TestEager_RequiredEmptyFails(t *testing.T) {
	f := New().
		WithEagerValidation(true).
		WithRequired(true).
		WithRequiredError("give me a value")

	f.FireEvent(TextChangeEvent{Text: ""})

	if f.Valid() {
		t.Fatal("empty required field should be invalid")
	}
	err := f.ErrorMessage()
	if err == nil {
		t.Fatal("expected an aggregated error")
	}
	var empty *validate.EmptyValueError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyValueError in aggregate, got %v", err)
	}
}

func TestEager_DisabledModeIgnoresTextChanges(t *testing.T) {
	f := New().WithRequired(true)

	f.FireEvent(TextChangeEvent{Text: "pending"})
	if got := f.LastKnownTextContent(); got != "" {
		t.Fatalf("non-eager field recorded text %q", got)
	}
}

func TestEager_IdempotentRevalidation(t *testing.T) {
	f := New().
		WithEagerValidation(true).
		WithValidator(validate.MinLength(3, "too short"))

	var repaints int
	f.OnRepaint(func() { repaints++ })

	f.FireEvent(TextChangeEvent{Text: "ok"})
	if f.Valid() {
		t.Fatal("expected invalid")
	}
	firstErr := f.ErrorMessage().Error()
	if repaints != 1 {
		t.Fatalf("first failure should repaint once, got %d", repaints)
	}

	// same text, same validators: same outcome, and no redundant repaint
	f.FireEvent(TextChangeEvent{Text: "ok"})
	if f.Valid() {
		t.Fatal("expected invalid on re-run")
	}
	if got := f.ErrorMessage().Error(); got != firstErr {
		t.Fatalf("outcome changed between identical runs: %q vs %q", firstErr, got)
	}
	if repaints != 1 {
		t.Fatalf("repaints = %d, want 1 after identical failure", repaints)
	}

	// valid text twice: the first run repaints for the transition, the
	// second must not repaint at all
	f.FireEvent(TextChangeEvent{Text: "okay"})
	if repaints != 2 {
		t.Fatalf("transition to valid should repaint once, got %d total", repaints)
	}
	f.FireEvent(TextChangeEvent{Text: "okay"})
	if repaints != 2 {
		t.Fatalf("revalidating unchanged valid text repainted, total %d", repaints)
	}
}

func TestEager_PushSwallowsExactlyOneEcho(t *testing.T) {
	holder := binding.NewHolder("")
	f := New().
		WithEagerValidation(true).
		WithDataSource(holder)

	if err := f.SetValue("committed"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	f.FireEvent(TextChangeEvent{Text: "interim"})

	if got, _ := holder.Value().(string); got != "interim" {
		t.Fatalf("eager push did not reach the data source, holder = %q", got)
	}
	// the echo was swallowed: the committed value is untouched and the
	// interim text is still pending
	if got := f.Value(); got != "committed" {
		t.Fatalf("echo was processed, committed value became %q", got)
	}
	if got := f.LastKnownTextContent(); got != "interim" {
		t.Fatalf("pending text = %q", got)
	}

	// an external write immediately after is processed normally
	if err := holder.SetValue("external"); err != nil {
		t.Fatalf("external SetValue: %v", err)
	}
	if got := f.Value(); got != "external" {
		t.Fatalf("external change not adopted, value = %q", got)
	}
	if got := f.LastKnownTextContent(); got != "" {
		t.Fatalf("adoption should clear pending text, got %q", got)
	}
}

func TestEager_FailureDoesNotReachDataSource(t *testing.T) {
	holder := binding.NewHolder("")
	f := New().
		WithEagerValidation(true).
		WithDataSource(holder).
		WithValidator(validate.MinLength(3, "too short"))

	f.FireEvent(TextChangeEvent{Text: "no"})

	if got, _ := holder.Value().(string); got != "" {
		t.Fatalf("invalid interim text was pushed: %q", got)
	}
	if f.Valid() {
		t.Fatal("expected invalid")
	}
}

// Mirrors a full typing session: empty, then too short, then acceptable.
func TestEager_TypingScenario(t *testing.T) {
	f := New().
		WithEagerValidation(true).
		WithRequired(true).
		WithRequiredError("name is required").
		WithValidator(validate.MinLength(3, "at least 3 characters"))

	f.FireEvent(TextChangeEvent{Text: ""})
	if f.Valid() {
		t.Fatal("step 1: empty should be invalid")
	}
	if msg := f.ErrorMessage(); msg == nil || msg.Error() != "name is required" {
		t.Fatalf("step 1: error = %v, want required text", msg)
	}

	f.FireEvent(TextChangeEvent{Text: "ok"})
	if f.Valid() {
		t.Fatal("step 2: short text should be invalid")
	}
	if msg := f.ErrorMessage(); msg == nil || msg.Error() != "at least 3 characters" {
		t.Fatalf("step 2: error = %v, want validator text", msg)
	}

	var repaints int
	f.OnRepaint(func() { repaints++ })
	f.FireEvent(TextChangeEvent{Text: "okay"})
	if !f.Valid() {
		t.Fatal("step 3: acceptable text should be valid")
	}
	if msg := f.ErrorMessage(); msg != nil {
		t.Fatalf("step 3: unexpected error %v", msg)
	}
	if repaints != 1 {
		t.Fatalf("step 3: invalid-to-valid transition should repaint exactly once, got %d", repaints)
	}
}
