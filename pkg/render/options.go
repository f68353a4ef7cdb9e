package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the resolved facts.
type RenderOptions struct {
	// Title overrides the document title. Defaults to the template title.
	// The PDF renderer prints it as a running page header.
	Title string
	// Fragment asks page-oriented renderers for the document body only,
	// without the surrounding page shell.
	Fragment bool
	// Metadata is emitted where the format supports it: HTML meta tags, a
	// text preamble, PDF document information entries. Keys are sorted
	// before output where order is visible.
	Metadata map[string]string
}

// TitleFor returns the effective title for doc.
func (o RenderOptions) TitleFor(doc Document) string {
	if o.Title != "" {
		return o.Title
	}
	if doc.Template.Title != "" {
		return doc.Template.Title
	}
	return doc.Template.ID
}
