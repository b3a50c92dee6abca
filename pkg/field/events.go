package field

import "github.com/goliatone/go-formfield/pkg/binding"

// Event is a notification dispatched through the field's event hook.
type Event interface {
	event()
}

// TextChangeEvent carries interim text as the user types, before any value
// is committed.
type TextChangeEvent struct {
	Text string
}

func (TextChangeEvent) event() {}

// ValueChangeEvent announces a committed value.
type ValueChangeEvent struct {
	Value any
}

func (ValueChangeEvent) event() {}

// Listener observes every event the field dispatches.
type Listener func(Event)

// AddListener registers an event listener. Listeners run synchronously in
// registration order, after any eager validation triggered by the event.
func (t *Text) AddListener(l Listener) {
	if l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// FireEvent dispatches an event through the field. When eager validation is
// enabled and the event carries interim text, the text is recorded and
// validated before the event reaches any listener. Every other event kind is
// forwarded unchanged.
func (t *Text) FireEvent(ev Event) {
	if change, ok := ev.(TextChangeEvent); ok && t.eager {
		text := change.Text
		t.lastKnownText = &text
		t.runEagerValidation()
	}
	for _, listener := range t.listeners {
		listener(ev)
	}
}

// ValueChange handles a change notification from the bound data source. The
// notification produced by the field's own eager push is consumed here
// exactly once; external changes are adopted as the new committed value.
func (t *Text) ValueChange(ev ValueChangeEvent) {
	if t.skipValueChange {
		t.skipValueChange = false
		return
	}
	t.adoptDataSourceValue()
}

// adoptDataSourceValue pulls the data source's current value into the field
// as a committed value, discarding pending eager state.
func (t *Text) adoptDataSourceValue() {
	if t.dataSource == nil {
		return
	}
	text, err := t.convertToPresentation(t.dataSource.Value())
	if err != nil {
		t.bufferedErr = err
		t.markDirty()
		return
	}
	t.lastKnownText = nil
	t.eagerErr = nil
	_ = t.assign(text, false)
}

// SetDataSource binds the field to a data source. Properties that notify on
// change are subscribed so external writes flow back into the field; the
// data source's current value is adopted immediately.
func (t *Text) SetDataSource(property binding.Property) {
	t.dataSource = property
	if property == nil {
		return
	}
	if notifier, ok := property.(binding.Notifier); ok {
		notifier.Subscribe(func(value any) {
			t.ValueChange(ValueChangeEvent{Value: value})
		})
	}
	t.adoptDataSourceValue()
}

// DataSource returns the bound data source, if any.
func (t *Text) DataSource() binding.Property {
	return t.dataSource
}
