// Package pdf renders documents as PDF. The substituted HTML body is split
// into blocks (see package text), paginated into a Layout and written with
// pdfcpu from a JSON content descriptor.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/goliatone/go-contractgen/pkg/render"
	"github.com/goliatone/go-contractgen/pkg/renderers/text"
)

// Name is the registry name of this renderer.
const Name = "pdf"

// nameDelimiters cannot appear in an info dictionary key.
const nameDelimiters = " \t\r\n()<>[]{}/%#"

var configOnce sync.Once

// pdfcpuConfig returns a configuration that never touches the user config
// directory; only core fonts are used.
func pdfcpuConfig() *model.Configuration {
	configOnce.Do(func() {
		model.ConfigPath = "disable"
	})
	return model.NewDefaultConfiguration()
}

// Option configures the pdf renderer.
type Option func(*Renderer)

// WithLayout overrides page and type settings.
func WithLayout(cfg LayoutConfig) Option {
	return func(r *Renderer) {
		r.layout = cfg
	}
}

// Renderer implements render.Renderer for PDF.
type Renderer struct {
	layout LayoutConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the pdf renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{layout: DefaultLayoutConfig()}
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
	return "application/pdf"
}

// Layout builds the paginated layout of doc with the configured page
// settings and no running header.
func (r *Renderer) Layout(doc render.Document) (Layout, error) {
	return r.layoutWith(doc, r.layout)
}

func (r *Renderer) layoutWith(doc render.Document, cfg LayoutConfig) (Layout, error) {
	body, _ := doc.Body()
	blocks, err := text.Blocks(body)
	if err != nil {
		return Layout{}, fmt.Errorf("pdf renderer: %w", err)
	}
	return BuildLayout(blocks, cfg), nil
}

// Render writes doc as PDF. Unless a fragment is requested, the title is
// printed as a running header and stored with the metadata in the document
// information dictionary.
func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := r.layout
	if !options.Fragment {
		cfg.Header = options.TitleFor(doc)
	}
	layout, err := r.layoutWith(doc, cfg)
	if err != nil {
		return nil, err
	}
	descriptor, err := layout.JSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(descriptor), &buf, pdfcpuConfig()); err != nil {
		return nil, fmt.Errorf("pdf renderer: create: %w", err)
	}
	if options.Fragment {
		return buf.Bytes(), nil
	}

	properties := make(map[string]string, len(options.Metadata)+1)
	for key, value := range options.Metadata {
		if key == "" || value == "" || strings.ContainsAny(key, nameDelimiters) {
			continue
		}
		properties[key] = value
	}
	if cfg.Header != "" {
		properties["Title"] = cfg.Header
	}

	var out bytes.Buffer
	if err := api.AddProperties(bytes.NewReader(buf.Bytes()), &out, properties, pdfcpuConfig()); err != nil {
		return nil, fmt.Errorf("pdf renderer: properties: %w", err)
	}
	return out.Bytes(), nil
}
