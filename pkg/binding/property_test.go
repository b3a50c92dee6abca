package binding

import (
	"errors"
	"reflect"
	"testing"
)

func TestHolder_TypeChecked(t *testing.T) {
	h := NewHolder(42)

	if got := h.Type(); got != reflect.TypeOf(0) {
		t.Fatalf("declared type = %s, want int", got)
	}
	if err := h.SetValue(7); err != nil {
		t.Fatalf("SetValue(7): %v", err)
	}
	if err := h.SetValue("nope"); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if got := h.Value(); got != 7 {
		t.Fatalf("value = %v, want 7 after rejected write", got)
	}
}

func TestHolder_ReadOnly(t *testing.T) {
	h := NewHolder("initial")
	h.SetReadOnly(true)

	if err := h.SetValue("changed"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if got := h.Value(); got != "initial" {
		t.Fatalf("value = %v, want initial", got)
	}
}

func TestHolder_NotifiesSubscribersInOrder(t *testing.T) {
	h := NewTypedHolder(reflect.TypeOf(""))

	var seen []string
	h.Subscribe(func(v any) { seen = append(seen, "first:"+v.(string)) })
	h.Subscribe(func(v any) { seen = append(seen, "second:"+v.(string)) })

	if err := h.SetValue("hello"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	want := []string{"first:hello", "second:hello"}
	if len(seen) != 2 || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
}
