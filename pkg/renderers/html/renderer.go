// Package html renders documents as standalone HTML pages.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/goliatone/go-contractgen/pkg/money"
	"github.com/goliatone/go-contractgen/pkg/render"
	rendertemplate "github.com/goliatone/go-contractgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-contractgen/pkg/render/template/gotemplate"
)

// Name is the registry name of this renderer.
const Name = "html"

const pageTemplate = "templates/page"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       *string
	lang             string
	money            *money.Formatter
	sanitize         bool
	now              func() time.Time
}

// WithTemplatesFS supplies an alternate page shell bundle via fs.FS. It must
// contain templates/page.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the page shell from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded stylesheet. An empty string emits no
// style block.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// WithLang sets the page language attribute. Defaults to "es".
func WithLang(lang string) Option {
	return func(cfg *config) {
		if lang != "" {
			cfg.lang = lang
		}
	}
}

// WithMoney sets the formatter behind the page template helpers.
func WithMoney(formatter *money.Formatter) Option {
	return func(cfg *config) {
		if formatter != nil {
			cfg.money = formatter
		}
	}
}

// WithClock sets the clock behind the generation date in the page footer.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithSanitizedBody runs the substituted body through SanitizeEdited before
// it is wrapped. Useful when templates come from outside the binary.
func WithSanitizedBody(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	lang       string
	sanitize   bool
	now        func() time.Time
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lang: "es", now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(cfg.templateFS, render.TemplateFuncs(render.TemplateFuncsConfig{Money: cfg.money}))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{
		templates:  renderer,
		stylesheet: stylesheet,
		lang:       cfg.lang,
		sanitize:   cfg.sanitize,
		now:        cfg.now,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render substitutes the facts and wraps the body in the page shell, or
// returns the body alone when options.Fragment is set.
func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	body, _ := doc.Body()
	if r.sanitize {
		body = SanitizeEdited(body)
	}
	if options.Fragment {
		return []byte(body), nil
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"lang":       r.lang,
		"title":      options.TitleFor(doc),
		"kind":       string(doc.Template.Kind),
		"ref":        doc.Template.Ref(),
		"metadata":   metadataList(options.Metadata),
		"stylesheet": r.stylesheet,
		"body":       body,
		"generated":  r.now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func metadataList(meta map[string]string) []map[string]string {
	if len(meta) == 0 {
		return nil
	}
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]string{"name": name, "content": meta[name]})
	}
	return out
}
