// Package text renders documents as plain text. The HTML body is parsed with
// golang.org/x/net/html into blocks, which the pdf renderer reuses for its
// layout.
package text

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-contractgen/pkg/render"
)

// Name is the registry name of this renderer.
const Name = "text"

// Option configures the text renderer.
type Option func(*Renderer)

// WithWidth wraps paragraphs at width runes. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.width = width
		}
	}
}

// Renderer implements render.Renderer for plain text.
type Renderer struct {
	width int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: 80}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render returns the document text. Metadata, when present and the output
// is not a fragment, is appended as "key: value" lines after a separator.
func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, _ := doc.Body()
	blocks, err := Blocks(body)
	if err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}

	out := Format(blocks, r.width)
	if !options.Fragment && len(options.Metadata) > 0 {
		var sb strings.Builder
		sb.WriteString(out)
		sb.WriteString("\n--\n")
		for _, meta := range sortedMetadata(options.Metadata) {
			sb.WriteString(meta[0] + ": " + meta[1] + "\n")
		}
		out = sb.String()
	}
	return []byte(out), nil
}

// Format lays blocks out as text: headings and paragraphs separated by a
// blank line, consecutive table rows on adjacent lines.
func Format(blocks []Block, width int) string {
	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			if block.Kind == BlockRow && blocks[i-1].Kind == BlockRow {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		switch block.Kind {
		case BlockRow:
			sb.WriteString(block.Text)
		default:
			sb.WriteString(strings.Join(Wrap(block.Text, width), "\n"))
		}
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func sortedMetadata(meta map[string]string) [][2]string {
	out := make([][2]string, 0, len(meta))
	for key, value := range meta {
		out = append(out, [2]string{key, value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
