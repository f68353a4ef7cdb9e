package template

import (
	"io"
)

// TemplateRenderer is the part of a github.com/goliatone/go-template engine
// a page-oriented renderer needs: render a named template with data.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
