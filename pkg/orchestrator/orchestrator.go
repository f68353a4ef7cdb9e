package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/facts"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/money"
	"github.com/goliatone/go-contractgen/pkg/render"
	htmlrenderer "github.com/goliatone/go-contractgen/pkg/renderers/html"
	"github.com/goliatone/go-contractgen/pkg/renderers/pdf"
	"github.com/goliatone/go-contractgen/pkg/renderers/text"
)

const (
	defaultRendererName = htmlrenderer.Name
	defaultTemplateID   = "contrato-servicio"
)

// Reviewer lets a person supply values for facts before rendering. It
// returns overrides; tui.Reviewer implements it.
type Reviewer interface {
	Review(ctx context.Context, facts model.FactSet, pending []string) (model.FactSet, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDefaultTemplate overrides the template used when a request names none.
func WithDefaultTemplate(id string) Option {
	return func(o *Orchestrator) {
		o.defaultTemplate = id
	}
}

// WithStore injects a template store.
func WithStore(store *document.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithTemplatesFS loads the template store from fsys (manifest.yaml plus
// bodies) instead of the embedded templates.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.templatesFS = fsys
	}
}

// WithTable replaces the fact resolution table.
func WithTable(table facts.Table) Option {
	return func(o *Orchestrator) {
		o.table = &table
	}
}

// WithMoney sets the formatter used by the default fact table.
func WithMoney(formatter *money.Formatter) Option {
	return func(o *Orchestrator) {
		o.money = formatter
	}
}

// WithFeeRate sets the service fee rate used by the default fact table.
func WithFeeRate(rate float64) Option {
	return func(o *Orchestrator) {
		o.feeRate = rate
	}
}

// WithTransformer registers a Transformer that runs after resolution.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// WithReviewer sets the reviewer used for requests with Review enabled.
func WithReviewer(r Reviewer) Option {
	return func(o *Orchestrator) {
		o.reviewer = r
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the source of the reference date used when a request
// context carries none.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// Orchestrator coordinates the pipeline from records to rendered document.
// It applies sensible defaults (embedded templates, default fact table,
// html/text/pdf renderers) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	store           *document.Store
	templatesFS     fs.FS
	table           *facts.Table
	money           *money.Formatter
	feeRate         float64
	transformers    []Transformer
	reviewer        Reviewer
	logger          *zap.Logger
	now             func() time.Time
	defaultRenderer string
	defaultTemplate string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		defaultTemplate: defaultTemplateID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one document to produce.
type Request struct {
	// TemplateID selects a template from the store. Defaults to the
	// configured default template.
	TemplateID string

	// Template bypasses the store when set.
	Template *document.Template

	// Context carries the records facts are resolved from.
	Context model.DocumentContext

	// Overrides are manual fact values; non-blank entries replace resolved
	// ones.
	Overrides map[string]string

	// Review asks the configured Reviewer for the facts that fell back.
	Review bool

	// Renderer names the output format. Defaults to the configured default.
	Renderer string

	// RenderOptions is passed through to the renderer. Document metadata
	// (id, template) is added to it.
	RenderOptions render.RenderOptions
}

// Resolution is a template with its facts, ready for any renderer.
type Resolution struct {
	ID          uuid.UUID
	Template    document.Template
	Facts       model.FactSet
	Diagnostics render.Diagnostics
}

// Document returns the renderer input for r.
func (r Resolution) Document() render.Document {
	return render.Document{Template: r.Template, Facts: r.Facts}
}

// Result is one rendered output.
type Result struct {
	Resolution
	Renderer    string
	ContentType string
	Output      []byte
}

// Templates lists the templates available to requests.
func (o *Orchestrator) Templates() []document.Template {
	if o.store == nil {
		return nil
	}
	return o.store.List()
}

// Renderers lists the registered output formats.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// Table returns the fact table in use.
func (o *Orchestrator) Table() facts.Table {
	if o.table == nil {
		return facts.Table{}
	}
	return *o.table
}

// Resolve looks up the template and computes its facts. Data gaps never
// fail: they surface in the Diagnostics.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (Resolution, error) {
	if ctx == nil {
		return Resolution{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Resolution{}, err
	}

	tpl, err := o.templateFor(req)
	if err != nil {
		return Resolution{}, err
	}

	docCtx := req.Context
	if docCtx.Now.IsZero() {
		docCtx.Now = o.now()
	}

	resolved := facts.Resolve(docCtx, *o.table)
	values := resolved.Facts
	fallbacks := relevant(resolved.Fallbacks, tpl.Tokens)
	before := pick(values, fallbacks)
	for _, t := range o.transformers {
		if err := t.Transform(ctx, values); err != nil {
			return Resolution{}, fmt.Errorf("orchestrator: transform facts: %w", err)
		}
	}
	fallbacks = unchanged(fallbacks, before, values)

	overrides := model.FactSet(nil).Merge(req.Overrides)
	if req.Review && o.reviewer != nil {
		pending := withoutKeys(fallbacks, overrides)
		answers, err := o.reviewer.Review(ctx, values.Merge(overrides), pending)
		if err != nil {
			return Resolution{}, fmt.Errorf("orchestrator: review facts: %w", err)
		}
		overrides = overrides.Merge(answers)
	}
	values = values.Merge(overrides)

	res := Resolution{
		ID:       uuid.New(),
		Template: tpl,
		Facts:    values,
		Diagnostics: render.Diagnostics{
			Unresolved: document.Unresolved(tpl.Body, values),
			Fallbacks:  withoutKeys(fallbacks, overrides),
		},
	}
	o.logDiagnostics(res)
	return res, nil
}

// Generate resolves facts and renders them with one renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	res, err := o.Resolve(ctx, req)
	if err != nil {
		return Result{}, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}
	return o.render(ctx, res, renderer, req.RenderOptions)
}

// GenerateAll resolves facts once and renders every named format
// concurrently. Results keep the order of names and share one document ID.
func (o *Orchestrator) GenerateAll(ctx context.Context, req Request, names ...string) ([]Result, error) {
	if len(names) == 0 {
		return nil, errors.New("orchestrator: at least one renderer is required")
	}
	renderers := make([]render.Renderer, len(names))
	for i, name := range names {
		renderer, err := o.rendererFor(name)
		if err != nil {
			return nil, err
		}
		renderers[i] = renderer
	}

	res, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(renderers))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, renderer := range renderers {
		group.Go(func() error {
			result, err := o.render(groupCtx, res, renderer, req.RenderOptions)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *Orchestrator) render(ctx context.Context, res Resolution, renderer render.Renderer, opts render.RenderOptions) (Result, error) {
	opts.Metadata = withMetadata(opts.Metadata, res)
	output, err := renderer.Render(ctx, res.Document(), opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render %s: %w", renderer.Name(), err)
	}
	o.logger.Debug("document rendered",
		zap.String("id", res.ID.String()),
		zap.String("template", res.Template.Ref()),
		zap.String("renderer", renderer.Name()),
		zap.Int("bytes", len(output)),
	)
	return Result{
		Resolution:  res,
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Output:      output,
	}, nil
}

func (o *Orchestrator) templateFor(req Request) (document.Template, error) {
	if req.Template != nil {
		tpl := *req.Template
		if tpl.Tokens == nil {
			tpl.Tokens = document.Tokens(tpl.Body)
		}
		return tpl, nil
	}
	id := req.TemplateID
	if id == "" {
		id = o.defaultTemplate
	}
	if o.store == nil {
		return document.Template{}, errors.New("orchestrator: template store is nil")
	}
	tpl, err := o.store.Get(id)
	if err != nil {
		return document.Template{}, fmt.Errorf("orchestrator: %w", err)
	}
	return tpl, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) logDiagnostics(res Resolution) {
	if len(res.Diagnostics.Unresolved) > 0 {
		o.logger.Warn("unresolved tokens left in document",
			zap.String("id", res.ID.String()),
			zap.String("template", res.Template.Ref()),
			zap.Strings("tokens", res.Diagnostics.Unresolved),
		)
	}
	if len(res.Diagnostics.Fallbacks) > 0 {
		o.logger.Warn("facts rendered with fallback values",
			zap.String("id", res.ID.String()),
			zap.String("template", res.Template.Ref()),
			zap.Strings("tokens", res.Diagnostics.Fallbacks),
		)
	}
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.money == nil {
		o.money = money.NewFormatter()
	}
	if o.table == nil {
		table := facts.DefaultTable(facts.Config{Money: o.money, FeeRate: o.feeRate})
		o.table = &table
	}
	if o.store == nil {
		if o.templatesFS == nil {
			o.templatesFS = document.EmbeddedFS()
		}
		store, err := document.LoadFS(o.templatesFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load templates: %w", err)
		} else {
			o.store = store
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := htmlrenderer.New(htmlrenderer.WithMoney(o.money))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(text.New())
		o.registry.MustRegister(pdf.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.defaultTemplate == "" {
		o.defaultTemplate = defaultTemplateID
	}
}

// relevant keeps the tokens that appear in the template.
func relevant(tokens, templateTokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	used := make(map[string]struct{}, len(templateTokens))
	for _, token := range templateTokens {
		used[token] = struct{}{}
	}
	var out []string
	for _, token := range tokens {
		if _, ok := used[token]; ok {
			out = append(out, token)
		}
	}
	return out
}

func pick(set model.FactSet, tokens []string) map[string]string {
	out := make(map[string]string, len(tokens))
	for _, token := range tokens {
		out[token] = set[token]
	}
	return out
}

// unchanged keeps the tokens a transformer left at their fallback value.
func unchanged(tokens []string, before map[string]string, after model.FactSet) []string {
	var out []string
	for _, token := range tokens {
		if after[token] == before[token] {
			out = append(out, token)
		}
	}
	return out
}

func withoutKeys(tokens []string, set model.FactSet) []string {
	var out []string
	for _, token := range tokens {
		if _, ok := set[token]; ok {
			continue
		}
		out = append(out, token)
	}
	return out
}

func withMetadata(meta map[string]string, res Resolution) map[string]string {
	out := make(map[string]string, len(meta)+3)
	for key, value := range meta {
		out[key] = value
	}
	out["document-id"] = res.ID.String()
	out["template"] = res.Template.Ref()
	out["template-hash"] = res.Template.Hash
	return out
}
