package field

// SetEagerValidation toggles per-keystroke validation. Toggling has no side
// effects of its own; the mode only changes how the next text-change
// notification is handled.
func (t *Text) SetEagerValidation(enabled bool) {
	t.eager = enabled
}

// EagerValidation reports whether eager mode is enabled.
func (t *Text) EagerValidation() bool {
	return t.eager
}

// LastKnownTextContent returns the most recent interim text reported by a
// text-change notification, or the empty string when none is pending.
func (t *Text) LastKnownTextContent() string {
	if t.lastKnownText == nil {
		return ""
	}
	return *t.lastKnownText
}

// runEagerValidation validates the pending interim text. Failures are
// recorded, never raised: the event hook that triggers this must always
// complete normally so the field keeps rendering while invalid.
func (t *Text) runEagerValidation() {
	wasValid := t.eagerStatus
	previousErr := t.eagerErr
	t.eagerStatus = true
	t.eagerErr = nil

	if err := t.ValidateText(t.LastKnownTextContent()); err != nil {
		t.eagerErr = err
		t.eagerStatus = false
		// repeating the same failure leaves the indicator as it is
		if wasValid || !sameFailure(previousErr, err) {
			t.markDirty()
		}
		return
	}
	if !wasValid {
		t.markDirty()
	}
	if t.dataSource == nil {
		return
	}

	// Push the interim value so bound models track typing. The resulting
	// change notification must be swallowed exactly once, so the one-shot
	// guard stays set only for the duration of this push.
	value, err := t.convertToModel(t.LastKnownTextContent())
	if err != nil {
		t.bufferedErr = err
		t.markDirty()
		return
	}
	t.skipValueChange = true
	defer func() { t.skipValueChange = false }()
	if err := t.dataSource.SetValue(value); err != nil {
		t.bufferedErr = err
		t.markDirty()
		return
	}
	t.bufferedErr = nil
}

func sameFailure(previous, current error) bool {
	return previous != nil && current != nil && previous.Error() == current.Error()
}
