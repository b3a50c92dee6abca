// Package binding models the data source a field can be bound to: a typed,
// settable value slot that notifies subscribers when it changes.
package binding

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrReadOnly is returned when a write reaches a read-only property.
var ErrReadOnly = errors.New("binding: property is read-only")

// Property is the bound data source abstraction. Implementations hold one
// typed value; Type reports the declared model type writes are checked
// against.
type Property interface {
	Value() any
	SetValue(value any) error
	Type() reflect.Type
}

// Notifier is implemented by properties that push change notifications to
// subscribers. Notifications fire synchronously from within SetValue.
type Notifier interface {
	Subscribe(fn func(value any))
}

// Holder is an in-memory Property with subscription support. It is not
// goroutine safe; like the fields that bind to it, it belongs to a single
// event-handling flow.
type Holder struct {
	typ         reflect.Type
	value       any
	readOnly    bool
	subscribers []func(any)
}

// NewHolder seeds a holder with an initial value; the declared type is taken
// from that value and enforced on later writes.
func NewHolder(initial any) *Holder {
	if initial == nil {
		return &Holder{typ: reflect.TypeOf("")}
	}
	return &Holder{typ: reflect.TypeOf(initial), value: initial}
}

// NewTypedHolder declares the model type up front, leaving the value unset.
func NewTypedHolder(typ reflect.Type) *Holder {
	if typ == nil {
		typ = reflect.TypeOf("")
	}
	return &Holder{typ: typ}
}

// Value returns the current model value.
func (h *Holder) Value() any {
	return h.value
}

// Type reports the declared model type.
func (h *Holder) Type() reflect.Type {
	return h.typ
}

// SetReadOnly toggles write protection.
func (h *Holder) SetReadOnly(readOnly bool) {
	h.readOnly = readOnly
}

// SetValue stores a new value after a type check and notifies subscribers in
// registration order before returning.
func (h *Holder) SetValue(value any) error {
	if h.readOnly {
		return ErrReadOnly
	}
	if value != nil {
		got := reflect.TypeOf(value)
		if got != h.typ && !got.AssignableTo(h.typ) {
			return fmt.Errorf("binding: cannot assign %s to property of type %s", got, h.typ)
		}
	}
	h.value = value
	for _, fn := range h.subscribers {
		fn(value)
	}
	return nil
}

// Subscribe registers a change callback. There is no unsubscribe; holders
// live as long as the fields bound to them.
func (h *Holder) Subscribe(fn func(value any)) {
	if fn == nil {
		return
	}
	h.subscribers = append(h.subscribers, fn)
}
