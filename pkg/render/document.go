package render

import (
	"html"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/model"
)

// Document is what every renderer consumes: one template and the facts
// resolved for it.
type Document struct {
	Template document.Template
	Facts    model.FactSet
}

// Body substitutes the facts into the template body with HTML-escaped values.
// Every format starts from this body, so the HTML, text and PDF outputs of
// one Document always carry the same values.
func (d Document) Body() (string, document.Report) {
	return document.RenderReport(d.Template.Body, EscapeFacts(d.Facts))
}

// EscapeFacts returns a copy of facts with values escaped for HTML text.
func EscapeFacts(facts model.FactSet) model.FactSet {
	out := make(model.FactSet, len(facts))
	for token, value := range facts {
		out[token] = html.EscapeString(value)
	}
	return out
}
