package contractgen

import (
	"io/fs"

	"github.com/goliatone/go-contractgen/pkg/document"
	htmlrenderer "github.com/goliatone/go-contractgen/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in document templates (manifest.yaml
// plus bodies) so callers can copy or extend them.
func EmbeddedTemplates() fs.FS {
	return document.EmbeddedFS()
}

// EmbeddedPageShell exposes the HTML page shell used by the html renderer.
func EmbeddedPageShell() fs.FS {
	return htmlrenderer.TemplatesFS()
}

// StylesheetFS exposes the default document stylesheet.
func StylesheetFS() fs.FS {
	return htmlrenderer.AssetsFS()
}
