// Package template defines renderer-agnostic template interfaces so markup
// renderers can swap template engines without changing their render logic.
package template
