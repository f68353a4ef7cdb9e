package text_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/renderers/text"
)

func TestBlocks(t *testing.T) {
	body := `<h1>CONTRATO</h1>
<p class="ref">Contrato N° 42</p>
<h2>PRIMERA.- (PARTES)</h2>
<p>1.1. <strong>ACME   SRL</strong>,
   con NIT 123 &amp; otros.</p>
<script>alert(1)</script>
<table class="figures">
<tr><th>Concepto</th><th>Monto</th></tr>
<tr><td>Comisión</td><td>Bs. 3,480</td></tr>
</table>
<table class="signatures"><tr><td>Ana<br>EL PRESTADOR</td><td>Luis<br>EL CLIENTE</td></tr></table>
<p>línea uno<br>línea dos</p>`

	got, err := text.Blocks(body)
	if err != nil {
		t.Fatalf("blocks: %v", err)
	}

	want := []text.Block{
		{Kind: text.BlockHeading, Level: 1, Text: "CONTRATO"},
		{Kind: text.BlockParagraph, Text: "Contrato N° 42"},
		{Kind: text.BlockHeading, Level: 2, Text: "PRIMERA.- (PARTES)"},
		{Kind: text.BlockParagraph, Text: "1.1. ACME SRL, con NIT 123 & otros."},
		{Kind: text.BlockRow, Header: true, Cells: []string{"Concepto", "Monto"}, Text: "Concepto | Monto"},
		{Kind: text.BlockRow, Cells: []string{"Comisión", "Bs. 3,480"}, Text: "Comisión | Bs. 3,480"},
		{Kind: text.BlockRow, Cells: []string{"Ana EL PRESTADOR", "Luis EL CLIENTE"}, Text: "Ana EL PRESTADOR | Luis EL CLIENTE"},
		{Kind: text.BlockParagraph, Text: "línea uno\nlínea dos"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestWrap(t *testing.T) {
	got := text.Wrap("el presente contrato entrará en vigencia\nhoy", 20)
	want := []string{"el presente contrato", "entrará en vigencia", "hoy"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"sin cambios"}, text.Wrap("sin cambios", 0)); diff != "" {
		t.Fatalf("unwrapped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"supercalifragilistico", "x"}, text.Wrap("supercalifragilistico x", 5)); diff != "" {
		t.Fatalf("long word mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Nro", "SOL-2020-077"}, text.Wrap("Nro   SOL-2020-077", 8)); diff != "" {
		t.Fatalf("hyphenated mismatch (-want +got):\n%s", diff)
	}
}
