package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/render"
)

func TestDocument_BodyEscapesValues(t *testing.T) {
	tpl := document.NewTemplate("t", "1", "<p>{importer.company} / {x.y}</p>")
	doc := render.Document{
		Template: tpl,
		Facts:    model.FactSet{"{importer.company}": "Smith & <Sons>"},
	}

	body, report := doc.Body()
	if body != "<p>Smith &amp; &lt;Sons&gt; / {x.y}</p>" {
		t.Fatalf("body = %q", body)
	}
	if diff := cmp.Diff([]string{"{x.y}"}, report.Unresolved); diff != "" {
		t.Fatalf("unresolved mismatch (-want +got):\n%s", diff)
	}
	if doc.Facts["{importer.company}"] != "Smith & <Sons>" {
		t.Fatalf("facts mutated")
	}
}

func TestRenderOptions_TitleFor(t *testing.T) {
	doc := render.Document{Template: document.Template{ID: "cotizacion"}}
	if got := (render.RenderOptions{}).TitleFor(doc); got != "cotizacion" {
		t.Fatalf("title = %q", got)
	}
	doc.Template.Title = "Cotización"
	if got := (render.RenderOptions{}).TitleFor(doc); got != "Cotización" {
		t.Fatalf("title = %q", got)
	}
	if got := (render.RenderOptions{Title: "X"}).TitleFor(doc); got != "X" {
		t.Fatalf("title = %q", got)
	}
}
