package document

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-contractgen/pkg/model"
)

var tokenPattern = regexp.MustCompile(`\{[A-Za-z][A-Za-z0-9_]*(?:\.[A-Za-z][A-Za-z0-9_]*)+\}`)

// Tokens lists the distinct tokens in body in order of first appearance.
func Tokens(body string) []string {
	matches := tokenPattern.FindAllString(body, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, token := range matches {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// Render replaces every occurrence of every fact token in body with its
// value. Values are literal text and substituted text is never rescanned.
// Tokens without a fact stay in the output as written.
func Render(body string, facts model.FactSet) string {
	if body == "" || len(facts) == 0 {
		return body
	}
	pairs := make([]string, 0, len(facts)*2)
	for _, token := range facts.Keys() {
		if token == "" {
			continue
		}
		pairs = append(pairs, token, facts[token])
	}
	if len(pairs) == 0 {
		return body
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

// Report lists the template tokens a render left unresolved.
type Report struct {
	Unresolved []string
}

// Complete reports whether every template token had a fact.
func (r Report) Complete() bool {
	return len(r.Unresolved) == 0
}

// Unresolved lists, in order of first appearance, the tokens of body that
// have no fact.
func Unresolved(body string, facts model.FactSet) []string {
	var out []string
	for _, token := range Tokens(body) {
		if _, ok := facts[token]; !ok {
			out = append(out, token)
		}
	}
	return out
}

// RenderReport renders body and reports template tokens with no fact.
func RenderReport(body string, facts model.FactSet) (string, Report) {
	return Render(body, facts), Report{Unresolved: Unresolved(body, facts)}
}
