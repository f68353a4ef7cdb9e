package document_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/model"
)

func TestRender_EndToEnd(t *testing.T) {
	facts := model.FactSet{
		"{importer.company}":    "ACME SRL",
		"{service.amount}":      "10,000",
		"{service.amountWords}": "diez mil",
	}
	tpl := "Empresa: {importer.company}. Monto: {service.amount} ({service.amountWords})."

	got := document.Render(tpl, facts)
	want := "Empresa: ACME SRL. Monto: 10,000 (diez mil)."
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRender_ReplacesEveryOccurrence(t *testing.T) {
	tpl := "{importer.company} / {importer.company} / {importer.company}"
	got := document.Render(tpl, model.FactSet{"{importer.company}": "ACME"})
	if strings.Contains(got, "{importer.company}") {
		t.Fatalf("token left in output: %q", got)
	}
	if strings.Count(got, "ACME") != 3 {
		t.Fatalf("expected three substitutions, got %q", got)
	}
}

func TestRender_LeavesUnknownTokens(t *testing.T) {
	tpl := "Empresa: {importer.company}, NIT {importer.nit}"
	got := document.Render(tpl, model.FactSet{"{importer.company}": "ACME"})
	if want := "Empresa: ACME, NIT {importer.nit}"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRender_ValuesAreLiteral(t *testing.T) {
	facts := model.FactSet{
		"{importer.company}": `Pagos $& $1 \1 SRL`,
		"{importer.nit}":     "{importer.company}",
	}
	got := document.Render("{importer.company} | {importer.nit}", facts)
	want := `Pagos $& $1 \1 SRL | {importer.company}`
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	facts := model.FactSet{"{a.b}": "x", "{c.d}": "y"}
	tpl := "{a.b}{c.d}{a.b}{e.f}"
	first := document.Render(tpl, facts)
	second := document.Render(tpl, facts)
	if first != second {
		t.Fatalf("render not idempotent: %q vs %q", first, second)
	}
}

func TestRenderReport(t *testing.T) {
	tpl := "{a.b} {c.d} {a.b} {e.f}"
	out, report := document.RenderReport(tpl, model.FactSet{"{a.b}": "1"})
	if out != "1 {c.d} 1 {e.f}" {
		t.Fatalf("unexpected output %q", out)
	}
	if diff := cmp.Diff([]string{"{c.d}", "{e.f}"}, report.Unresolved); diff != "" {
		t.Fatalf("unresolved mismatch (-want +got):\n%s", diff)
	}
	if report.Complete() {
		t.Fatalf("report should be incomplete")
	}
}

func TestUnresolved(t *testing.T) {
	body := "<p>{a.b} {c.d} {a.b} {e.f} {c.d}</p>"
	got := document.Unresolved(body, model.FactSet{"{a.b}": "1"})
	if diff := cmp.Diff([]string{"{c.d}", "{e.f}"}, got); diff != "" {
		t.Fatalf("unresolved mismatch (-want +got):\n%s", diff)
	}
	if got := document.Unresolved(body, model.FactSet{"{a.b}": "", "{c.d}": "", "{e.f}": ""}); got != nil {
		t.Fatalf("expected nothing unresolved, got %v", got)
	}
}

func TestTokens(t *testing.T) {
	got := document.Tokens("<p>{b.x} {a.y} {b.x} {notatoken} {1.bad} {a.y.z}</p>")
	want := []string{"{b.x}", "{a.y}", "{a.y.z}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}
