package pdf

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/goliatone/go-contractgen/pkg/renderers/text"
)

// Core fonts; pdfcpu ships their metrics so no font files are needed.
const (
	FontRegular = "Times-Roman"
	FontBold    = "Times-Bold"
)

// LayoutConfig sizes the page and the type. Lengths are in points.
type LayoutConfig struct {
	Paper       string
	PageWidth   float64
	PageHeight  float64
	Margin      float64
	BodySize    int
	LineSpacing float64
	// Footer prints "Página N de M" at the bottom of every page.
	Footer bool
	// Header, when set, is printed at the top of every page.
	Header string
}

// DefaultLayoutConfig is A4 portrait with 2cm margins and 11pt body text.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Paper:       "A4",
		PageWidth:   595,
		PageHeight:  842,
		Margin:      56,
		BodySize:    11,
		LineSpacing: 1.4,
		Footer:      true,
	}
}

func (c LayoutConfig) normalize() LayoutConfig {
	def := DefaultLayoutConfig()
	if c.Paper == "" {
		c.Paper = def.Paper
	}
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		c.PageWidth, c.PageHeight = def.PageWidth, def.PageHeight
	}
	if c.Margin <= 0 || 2*c.Margin >= math.Min(c.PageWidth, c.PageHeight) {
		c.Margin = def.Margin
	}
	if c.BodySize <= 0 {
		c.BodySize = def.BodySize
	}
	if c.LineSpacing < 1 {
		c.LineSpacing = def.LineSpacing
	}
	return c
}

// Line is one positioned line of text. Y grows downwards from the top edge.
type Line struct {
	Text string
	X    float64
	Y    float64
	Font string
	Size int
}

// Page holds the lines placed on one page.
type Page struct {
	Number int
	Lines  []Line
}

// Layout is the paginated document.
type Layout struct {
	Config LayoutConfig
	Pages  []Page
}

// BuildLayout paginates blocks. Lines are wrapped using the core font
// metrics so no line crosses the right margin.
func BuildLayout(blocks []text.Block, cfg LayoutConfig) Layout {
	cfg = cfg.normalize()
	b := &builder{cfg: cfg}
	b.newPage()

	for _, block := range blocks {
		switch block.Kind {
		case text.BlockHeading:
			size := headingSize(block.Level, cfg.BodySize)
			b.paragraph(block.Text, FontBold, size, block.Level == 1)
		case text.BlockRow:
			b.row(block)
		default:
			b.paragraph(block.Text, FontRegular, cfg.BodySize, false)
		}
	}

	layout := Layout{Config: cfg, Pages: b.pages}
	if cfg.Header != "" {
		size := cfg.BodySize - 2
		header := fitLine(cfg.Header, FontRegular, size, cfg.PageWidth-2*cfg.Margin)
		for i := range layout.Pages {
			layout.Pages[i].Lines = append(layout.Pages[i].Lines, Line{
				Text: header,
				X:    cfg.Margin,
				Y:    cfg.Margin / 2,
				Font: FontRegular,
				Size: size,
			})
		}
	}
	if cfg.Footer {
		total := len(layout.Pages)
		size := cfg.BodySize - 3
		for i := range layout.Pages {
			value := fmt.Sprintf("Página %d de %d", i+1, total)
			layout.Pages[i].Lines = append(layout.Pages[i].Lines, Line{
				Text: value,
				X:    cfg.PageWidth - cfg.Margin - TextWidth(value, FontRegular, size),
				Y:    cfg.PageHeight - cfg.Margin/2,
				Font: FontRegular,
				Size: size,
			})
		}
	}
	return layout
}

type builder struct {
	cfg   LayoutConfig
	pages []Page
	y     float64
}

func (b *builder) newPage() {
	b.pages = append(b.pages, Page{Number: len(b.pages) + 1})
	b.y = b.cfg.Margin
}

func (b *builder) current() *Page {
	return &b.pages[len(b.pages)-1]
}

func (b *builder) lineHeight(size int) float64 {
	return float64(size) * b.cfg.LineSpacing
}

// reserve moves to a new page when height does not fit, unless the page is
// still empty.
func (b *builder) reserve(height float64) {
	bottom := b.cfg.PageHeight - b.cfg.Margin
	if b.y+height > bottom && len(b.current().Lines) > 0 {
		b.newPage()
	}
}

func (b *builder) contentWidth() float64 {
	return b.cfg.PageWidth - 2*b.cfg.Margin
}

func (b *builder) paragraph(value, font string, size int, centered bool) {
	lh := b.lineHeight(size)
	for _, line := range WrapWidth(value, font, size, b.contentWidth()) {
		if line == "" {
			continue
		}
		b.reserve(lh)
		x := b.cfg.Margin
		if centered {
			x += math.Max(0, (b.contentWidth()-TextWidth(line, font, size))/2)
		}
		b.y += lh
		b.current().Lines = append(b.current().Lines, Line{Text: line, X: x, Y: b.y, Font: font, Size: size})
	}
	b.y += lh / 2
}

func (b *builder) row(block text.Block) {
	if len(block.Cells) == 0 {
		return
	}
	size := b.cfg.BodySize
	font := FontRegular
	if block.Header {
		font = FontBold
	}
	lh := b.lineHeight(size)
	colWidth := b.contentWidth() / float64(len(block.Cells))

	cells := make([][]string, len(block.Cells))
	rows := 1
	for i, cell := range block.Cells {
		cells[i] = WrapWidth(cell, font, size, colWidth-cellGap)
		if len(cells[i]) > rows {
			rows = len(cells[i])
		}
	}

	b.reserve(float64(rows) * lh)
	top := b.y
	for i, lines := range cells {
		x := b.cfg.Margin + float64(i)*colWidth
		for j, line := range lines {
			if line == "" {
				continue
			}
			b.current().Lines = append(b.current().Lines, Line{
				Text: line,
				X:    x,
				Y:    top + float64(j+1)*lh,
				Font: font,
				Size: size,
			})
		}
	}
	b.y = top + float64(rows)*lh + lh/4
}

func headingSize(level, body int) int {
	switch level {
	case 1:
		return body + 3
	case 2:
		return body + 1
	default:
		return body
	}
}

// cellGap keeps adjacent table cells apart.
const cellGap = 6

// TextWidth is the width of s in points when set in fontName at size.
// Runes outside the font encoding count as spaces.
func TextWidth(s, fontName string, size int) float64 {
	return font.TextWidth(model.DecodeUTF8ToByte(s), fontName, size)
}

// WrapWidth breaks s into lines no wider than width points. Explicit
// newlines start a new line; words wider than a whole line are split.
func WrapWidth(s, fontName string, size int, width float64) []string {
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if TextWidth(candidate, fontName, size) <= width {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
			}
			pieces := splitWord(word, fontName, size, width)
			out = append(out, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		out = append(out, line)
	}
	return out
}

// splitWord cuts word into pieces that each fit width. A piece holds at
// least one rune.
func splitWord(word, fontName string, size int, width float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		next := current + string(r)
		if current != "" && TextWidth(next, fontName, size) > width {
			pieces = append(pieces, current)
			next = string(r)
		}
		current = next
	}
	return append(pieces, current)
}

// fitLine truncates s with an ellipsis so it fits width.
func fitLine(s, fontName string, size int, width float64) string {
	if TextWidth(s, fontName, size) <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimSpace(string(runes[:n])) + "..."
		if TextWidth(candidate, fontName, size) <= width {
			return candidate
		}
	}
	return "..."
}
