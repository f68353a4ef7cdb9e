// Package contractgen renders legal documents (service contracts,
// quotations) from loosely-typed trade records. The root package re-exports
// the common entry points; the pkg/ tree holds the building blocks.
package contractgen

import (
	"context"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
	"github.com/goliatone/go-contractgen/pkg/render"
)

// DocumentContext aliases model.DocumentContext for callers that only
// import the root package.
type DocumentContext = model.DocumentContext

// FactSet aliases model.FactSet.
type FactSet = model.FactSet

// RenderOptions describes per-request options passed to renderers.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders templateID for docCtx with the named renderer ("html",
// "text" or "pdf"; empty selects html). It is the simplest entry point for
// callers that want one document.
func Generate(ctx context.Context, templateID string, docCtx DocumentContext, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		TemplateID: templateID,
		Context:    docCtx,
		Renderer:   rendererName,
	})
}

// RenderString substitutes facts into body. Values are inserted literally;
// tokens without a fact stay in the output.
func RenderString(body string, facts FactSet) string {
	return document.Render(body, facts)
}
