package pdf_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/renderers/pdf"
	"github.com/goliatone/go-contractgen/pkg/renderers/text"
)

func TestBuildLayout_SinglePage(t *testing.T) {
	blocks := []text.Block{
		{Kind: text.BlockHeading, Level: 1, Text: "CONTRATO"},
		{Kind: text.BlockParagraph, Text: "Primera línea"},
		{Kind: text.BlockRow, Header: true, Cells: []string{"Concepto", "Monto"}},
	}
	cfg := pdf.DefaultLayoutConfig()
	layout := pdf.BuildLayout(blocks, cfg)

	if len(layout.Pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(layout.Pages))
	}
	lines := layout.Pages[0].Lines
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5: %+v", len(lines), lines)
	}

	heading := lines[0]
	if heading.Font != pdf.FontBold || heading.Size != 14 || heading.X <= cfg.Margin {
		t.Fatalf("heading not bold/centred: %+v", heading)
	}
	if lines[1].Font != pdf.FontRegular || lines[1].X != cfg.Margin || lines[1].Y <= heading.Y {
		t.Fatalf("paragraph misplaced: %+v", lines[1])
	}
	if lines[2].Y != lines[3].Y || lines[3].X <= lines[2].X || lines[2].Font != pdf.FontBold {
		t.Fatalf("row cells not side by side: %+v %+v", lines[2], lines[3])
	}
	if lines[4].Text != "Página 1 de 1" {
		t.Fatalf("footer = %q", lines[4].Text)
	}
}

func TestBuildLayout_Paginates(t *testing.T) {
	var blocks []text.Block
	for i := 0; i < 80; i++ {
		blocks = append(blocks, text.Block{Kind: text.BlockParagraph, Text: fmt.Sprintf("Cláusula %d", i)})
	}
	cfg := pdf.DefaultLayoutConfig()
	layout := pdf.BuildLayout(blocks, cfg)

	if len(layout.Pages) < 2 {
		t.Fatalf("expected several pages, got %d", len(layout.Pages))
	}
	seen := 0
	for i, page := range layout.Pages {
		if page.Number != i+1 {
			t.Fatalf("page number %d at index %d", page.Number, i)
		}
		for _, line := range page.Lines {
			if strings.HasPrefix(line.Text, "Página ") {
				continue
			}
			seen++
			if line.Y > cfg.PageHeight-cfg.Margin {
				t.Fatalf("line below bottom margin on page %d: %+v", page.Number, line)
			}
		}
	}
	if seen != 80 {
		t.Fatalf("placed %d lines, want 80", seen)
	}
	last := layout.Pages[len(layout.Pages)-1].Lines
	want := fmt.Sprintf("Página %d de %d", len(layout.Pages), len(layout.Pages))
	if last[len(last)-1].Text != want {
		t.Fatalf("footer = %q, want %q", last[len(last)-1].Text, want)
	}
}

func TestBuildLayout_WrapsLongParagraphs(t *testing.T) {
	long := strings.Repeat("palabra ", 60)
	cfg := pdf.DefaultLayoutConfig()
	cfg.Footer = false
	layout := pdf.BuildLayout([]text.Block{{Kind: text.BlockParagraph, Text: long}}, cfg)

	lines := layout.Pages[0].Lines
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	var words int
	for _, line := range lines {
		words += len(strings.Fields(line.Text))
	}
	if words != 60 {
		t.Fatalf("words = %d, want 60", words)
	}
}

func TestLayout_Descriptor(t *testing.T) {
	cfg := pdf.DefaultLayoutConfig()
	cfg.Footer = false
	layout := pdf.BuildLayout([]text.Block{{Kind: text.BlockParagraph, Text: "Hola"}}, cfg)

	data, err := layout.JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]any{
		"paper":  "A4",
		"origin": "UpperLeft",
		"pages": map[string]any{
			"1": map[string]any{
				"content": map[string]any{
					"text": []any{
						map[string]any{
							"value": "Hola",
							"pos":   []any{56.0, 71.4},
							"font":  map[string]any{"name": "Times-Roman", "size": 11.0},
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLayout_StaysInsideRightMargin(t *testing.T) {
	upper := strings.Repeat("CLÁUSULA WWW MMM OBLIGACIONES DEL PRESTADOR ", 12)
	blocks := []text.Block{
		{Kind: text.BlockHeading, Level: 1, Text: upper},
		{Kind: text.BlockParagraph, Text: upper},
		{Kind: text.BlockParagraph, Text: strings.Repeat("W", 200)},
		{Kind: text.BlockRow, Cells: []string{upper, "MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM"}},
	}
	cfg := pdf.DefaultLayoutConfig()
	cfg.Header = upper
	layout := pdf.BuildLayout(blocks, cfg)

	limit := cfg.PageWidth - cfg.Margin
	for _, page := range layout.Pages {
		for _, line := range page.Lines {
			width := pdf.TextWidth(line.Text, line.Font, line.Size)
			if line.X+width > limit+0.01 {
				t.Fatalf("line ends at %.2f past %.2f: %q", line.X+width, limit, line.Text)
			}
		}
	}
}

func TestWrapWidth_KeepsEveryWord(t *testing.T) {
	got := pdf.WrapWidth("uno dos\ntres", pdf.FontRegular, 11, 1000)
	if diff := cmp.Diff([]string{"uno dos", "tres"}, got); diff != "" {
		t.Fatalf("WrapWidth mismatch (-want +got):\n%s", diff)
	}

	narrow := pdf.WrapWidth("SOL-2020-077", pdf.FontRegular, 11, 20)
	if strings.Join(narrow, "") != "SOL-2020-077" {
		t.Fatalf("split word lost runes: %q", narrow)
	}
	for _, piece := range narrow {
		if pdf.TextWidth(piece, pdf.FontRegular, 11) > 20 && len([]rune(piece)) > 1 {
			t.Fatalf("piece %q wider than 20pt", piece)
		}
	}
}

func TestLayout_DescriptorEscapesPercent(t *testing.T) {
	cfg := pdf.DefaultLayoutConfig()
	cfg.Footer = false
	layout := pdf.BuildLayout([]text.Block{{Kind: text.BlockParagraph, Text: "Tasa 5% al 5%pago"}}, cfg)

	boxes := layout.Descriptor().Pages["1"].Content.Text
	var values []string
	for _, box := range boxes {
		values = append(values, box.Value)
	}
	if diff := cmp.Diff([]string{"Tasa 5%% al 5%%", "pago"}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if boxes[1].Pos[0] <= boxes[0].Pos[0] || boxes[1].Pos[1] != boxes[0].Pos[1] {
		t.Fatalf("second box not after the first: %+v", boxes)
	}
}
