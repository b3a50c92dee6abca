// Package field implements a text input field with optional eager
// validation: instead of validating only when a value is committed, the
// field can validate every interim text-change notification, track the
// latest uncommitted text and its validation outcome, and eagerly push the
// interim value into a bound data source while swallowing the change echo
// that push produces.
//
// Fields are single-flow objects. Every method is expected to run on the one
// event-handling flow that owns the field; nothing here is goroutine safe.
package field
