package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/render"
	"github.com/goliatone/go-contractgen/pkg/renderers/pdf"
)

func TestRenderer_WritesPDF(t *testing.T) {
	tpl := document.NewTemplate("cotizacion", "1", "<h1>COTIZACIÓN</h1><p>Cliente: {importer.company}</p>")
	doc := render.Document{Template: tpl, Facts: model.FactSet{"{importer.company}": "Peña & Cía"}}

	r := pdf.New()
	if r.ContentType() != "application/pdf" {
		t.Fatalf("content type = %q", r.ContentType())
	}

	layout, err := r.Layout(doc)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := layout.Pages[0].Lines[1].Text; got != "Cliente: Peña & Cía" {
		t.Fatalf("layout line = %q", got)
	}

	out, err := r.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
	count, err := api.PageCount(bytes.NewReader(out), nil)
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if count != len(layout.Pages) {
		t.Fatalf("pages = %d, want %d", count, len(layout.Pages))
	}
}

func pageContent(t *testing.T, pdfBytes []byte, page int) string {
	t.Helper()
	dir := t.TempDir()
	if err := api.ExtractContent(bytes.NewReader(pdfBytes), dir, "doc.pdf", nil, nil); err != nil {
		t.Fatalf("extract content: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("doc_Content_page_%d.txt", page)))
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	return string(data)
}

func TestRenderer_KeepsPercentSigns(t *testing.T) {
	tpl := document.NewTemplate("honorarios", "1", "<p>Honorarios: {fee.rate} del monto, pagaderos al {fee.rate}pago.</p>")
	doc := render.Document{Template: tpl, Facts: model.FactSet{"{fee.rate}": "5%"}}

	out, err := pdf.New().Render(context.Background(), doc, render.RenderOptions{Fragment: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	content := pageContent(t, out, 1)
	for _, want := range []string{"(Honorarios: 5% del monto, pagaderos al 5%)", "(pago.)"} {
		if !strings.Contains(content, want) {
			t.Fatalf("content missing %q:\n%s", want, content)
		}
	}
}

func TestRenderer_TitleAndMetadata(t *testing.T) {
	tpl := document.NewTemplate("contrato", "1", "<p>Cuerpo</p>")
	doc := render.Document{Template: tpl}
	options := render.RenderOptions{
		Title:    "Contrato de prueba",
		Metadata: map[string]string{"document-id": "abc-123", "bad key": "skipped"},
	}

	out, err := pdf.New().Render(context.Background(), doc, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if content := pageContent(t, out, 1); !strings.Contains(content, "(Contrato de prueba)") {
		t.Fatalf("header line missing:\n%s", content)
	}

	props, err := api.Properties(bytes.NewReader(out), nil)
	if err != nil {
		t.Fatalf("properties: %v", err)
	}
	if got := props["document-id"]; got != "abc-123" {
		t.Fatalf("document-id = %q, props %v", got, props)
	}
	if _, ok := props["bad key"]; ok {
		t.Fatalf("key with whitespace written: %v", props)
	}
}
