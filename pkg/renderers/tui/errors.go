package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoField is returned when a session is asked to prompt for a nil field.
	ErrNoField = errors.New("tui: no field to prompt for")
)
