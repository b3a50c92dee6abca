// Package render defines the renderer contract and a name-keyed registry so
// hosts can pick an output format at runtime.
package render

import (
	"github.com/goliatone/go-formfield/pkg/field"
)

// FieldView pairs a field with presentation extras the field itself does not
// carry: the form input name and optional description markup.
type FieldView struct {
	Name        string
	Field       *field.Text
	Description string
}

// Renderer converts a field view into a markup representation (HTML, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(view FieldView) (string, error)
}
