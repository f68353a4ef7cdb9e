package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	documentPolicyOnce sync.Once
	documentPolicy     *bluemonday.Policy
)

// SanitizeEdited cleans document HTML that was edited by hand before it is
// stored or re-rendered. Structural markup used by the templates survives;
// scripts, event handlers, inline styles and links do not.
func SanitizeEdited(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(documentSanitizer().Sanitize(trimmed))
}

func documentSanitizer() *bluemonday.Policy {
	documentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"h1", "h2", "h3", "h4", "p", "br", "hr", "strong", "b", "em", "i", "u",
			"span", "div", "section", "ol", "ul", "li",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption",
		)
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		policy.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
		documentPolicy = policy
	})
	return documentPolicy
}
