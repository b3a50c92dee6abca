package validate

import (
	"errors"
	"testing"
)

func TestMinLength(t *testing.T) {
	cases := []struct {
		name    string
		min     int
		text    string
		wantErr bool
	}{
		{name: "shorter rejected", min: 3, text: "ok", wantErr: true},
		{name: "exact accepted", min: 3, text: "okk"},
		{name: "longer accepted", min: 3, text: "okay"},
		{name: "runes not bytes", min: 2, text: "äö"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := MinLength(tc.min, "").Validate(tc.text)
			if (err != nil) != tc.wantErr {
				t.Fatalf("MinLength(%d).Validate(%q) = %v, wantErr %v", tc.min, tc.text, err, tc.wantErr)
			}
		})
	}
}

func TestPattern_Anchored(t *testing.T) {
	v, err := Pattern(`[a-z]+`, "lowercase only")
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if err := v.Validate("abc"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	// a partial match must not satisfy the anchored expression
	if err := v.Validate("abc1"); err == nil {
		t.Fatal("expected rejection for trailing digit")
	}
}

func TestPattern_CompileError(t *testing.T) {
	if _, err := Pattern(`[`, ""); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestEmptyValueError_UnwrapsToInvalid(t *testing.T) {
	err := NewEmptyValueError("field is required")

	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatal("EmptyValueError should unwrap to InvalidValueError")
	}
	if invalid.Message != "field is required" {
		t.Fatalf("unexpected message %q", invalid.Message)
	}

	var empty *EmptyValueError
	if !errors.As(err, &empty) {
		t.Fatal("EmptyValueError identity lost")
	}
}

func TestInvisible(t *testing.T) {
	v := Invisible(MinLength(5, "too short"))

	err := v.Validate("ok")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !IsInvisible(err) {
		t.Fatal("expected invisible rejection")
	}
	if got := err.Error(); got != "too short" {
		t.Fatalf("message changed: %q", got)
	}
	if IsInvisible(errors.New("plain")) {
		t.Fatal("plain errors are never invisible")
	}
}

func TestIsInvisible_Composite(t *testing.T) {
	invisible := Invisible(MinLength(5, "hidden")).Validate("ok")
	visible := MinLength(10, "shown").Validate("ok")

	if !IsInvisible(Compose(invisible, invisible)) {
		t.Fatal("all-invisible aggregate should be invisible")
	}
	if IsInvisible(Compose(invisible, visible)) {
		t.Fatal("one visible source makes the aggregate visible")
	}
	if IsInvisible(Compose(visible, visible)) {
		t.Fatal("all-visible aggregate is visible")
	}
}

func TestVisible(t *testing.T) {
	invisible := Invisible(MinLength(5, "hidden")).Validate("ok")
	visible := MinLength(10, "shown").Validate("ok")

	if got := Visible(nil); got != nil {
		t.Fatalf("Visible(nil) = %v", got)
	}
	if got := Visible(invisible); got != nil {
		t.Fatalf("lone invisible rejection should vanish, got %v", got)
	}
	if got := Visible(visible); got != visible {
		t.Fatalf("lone visible rejection should pass through, got %v", got)
	}

	// a mixed aggregate keeps exactly its visible members
	got := Visible(Compose(invisible, visible))
	if got == nil {
		t.Fatal("visible member was stripped with the invisible one")
	}
	if got.Error() != "shown" {
		t.Fatalf("remaining message = %q, want %q", got.Error(), "shown")
	}

	if got := Visible(Compose(invisible, invisible)); got != nil {
		t.Fatalf("all-invisible aggregate should vanish, got %v", got)
	}

	second := MinLength(12, "also shown").Validate("ok")
	got = Visible(Compose(invisible, visible, second))
	var composite *Composite
	if !errors.As(got, &composite) || len(composite.Errors()) != 2 {
		t.Fatalf("expected two visible members, got %v", got)
	}
}

func TestCompose(t *testing.T) {
	if err := Compose(nil, nil, nil); err != nil {
		t.Fatalf("all-nil compose should be nil, got %v", err)
	}

	first := errors.New("component broken")
	third := errors.New("conversion failed")
	err := Compose(first, nil, third)
	if err == nil {
		t.Fatal("expected composite")
	}

	var composite *Composite
	if !errors.As(err, &composite) {
		t.Fatalf("expected *Composite, got %T", err)
	}
	kept := composite.Errors()
	if len(kept) != 2 || kept[0] != first || kept[1] != third {
		t.Fatalf("composite should keep both non-nil sources in order, got %v", kept)
	}
	if !errors.Is(err, first) || !errors.Is(err, third) {
		t.Fatal("composite should unwrap to its sources")
	}
}
