package text

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind classifies a Block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockRow       BlockKind = "row"
)

// Block is one unit of document flow extracted from the rendered HTML.
type Block struct {
	Kind BlockKind
	// Level is the heading level (1-6); zero for other kinds.
	Level int
	// Text holds the block text. Lines are separated by "\n" where the
	// source had <br>.
	Text string
	// Cells holds the cell texts of a table row.
	Cells []string
	// Header marks rows made of <th> cells.
	Header bool
}

// Blocks parses an HTML fragment into document flow. Whitespace inside text
// is collapsed the way a browser would; scripts and styles are skipped.
func Blocks(body string) ([]Block, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(body), context)
	if err != nil {
		return nil, fmt.Errorf("text: parse html: %w", err)
	}
	c := &collector{kind: BlockParagraph}
	for _, n := range nodes {
		c.walk(n)
	}
	c.flush()
	return c.blocks, nil
}

type collector struct {
	blocks []Block
	inline strings.Builder
	kind   BlockKind
	level  int
}

func (c *collector) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.inline.WriteString(collapse(n.Data))
		return
	case html.ElementNode:
	default:
		c.children(n)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Title:
		return
	case atom.Br:
		c.inline.WriteString("\n")
	case atom.Tr:
		c.flush()
		c.row(n)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		c.flush()
		c.kind, c.level = BlockHeading, headingLevel(n.DataAtom)
		c.children(n)
		c.flush()
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Li, atom.Ul, atom.Ol,
		atom.Table, atom.Thead, atom.Tbody, atom.Tfoot, atom.Caption, atom.Hr, atom.Blockquote:
		c.flush()
		c.children(n)
		c.flush()
	default:
		c.children(n)
	}
}

func (c *collector) children(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
}

func (c *collector) row(tr *html.Node) {
	block := Block{Kind: BlockRow, Header: true}
	for cell := tr.FirstChild; cell != nil; cell = cell.NextSibling {
		if cell.Type != html.ElementNode || (cell.DataAtom != atom.Td && cell.DataAtom != atom.Th) {
			continue
		}
		if cell.DataAtom == atom.Td {
			block.Header = false
		}
		var sb strings.Builder
		cellText(cell, &sb)
		block.Cells = append(block.Cells, strings.Join(strings.Fields(sb.String()), " "))
	}
	if len(block.Cells) == 0 {
		return
	}
	block.Text = strings.Join(block.Cells, " | ")
	c.blocks = append(c.blocks, block)
}

func cellText(n *html.Node, sb *strings.Builder) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			sb.WriteString(child.Data)
		case html.ElementNode:
			if child.DataAtom == atom.Br {
				sb.WriteString(" ")
				continue
			}
			cellText(child, sb)
		}
	}
}

func (c *collector) flush() {
	raw := c.inline.String()
	c.inline.Reset()
	kind, level := c.kind, c.level
	c.kind, c.level = BlockParagraph, 0

	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return
	}
	c.blocks = append(c.blocks, Block{Kind: kind, Level: level, Text: strings.Join(kept, "\n")})
}

func collapse(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(strings.Fields(s), " ")
	if first := s[0]; first == ' ' || first == '\n' || first == '\t' || first == '\r' {
		out = " " + out
	}
	if last := s[len(s)-1]; last == ' ' || last == '\n' || last == '\t' || last == '\r' {
		out += " "
	}
	return out
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	default:
		return 6
	}
}
