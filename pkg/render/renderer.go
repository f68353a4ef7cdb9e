package render

import (
	"context"
)

// Renderer converts a resolved Document into one output format (HTML, PDF,
// plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
