// Package facts turns the records in a model.DocumentContext into a
// model.FactSet.
//
// Resolution policy is data: a Table lists, per token, the ordered
// candidates to try and the literal to use when all of them come back
// blank. Each token's chain is independent of every other token's. A
// Derivation produces several tokens from one computed value, which is how
// an amount's numeral and its spelled-out words are kept describing the
// same integer.
package facts

import (
	"sort"
	"strings"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// Blank is the fill-in line used when nothing is known about a fact.
const Blank = "_________________"

// Scope is the evaluation input shared by every candidate of one resolve.
type Scope struct {
	Context model.DocumentContext
	vars    map[string]any
}

// NewScope wraps ctx.
func NewScope(ctx model.DocumentContext) *Scope {
	return &Scope{Context: ctx}
}

// Vars returns ctx.Vars(), computed once per scope.
func (s *Scope) Vars() map[string]any {
	if s.vars == nil {
		s.vars = s.Context.Vars()
	}
	return s.vars
}

// Candidate yields one possible value for a token; "" means no value.
type Candidate interface {
	Value(scope *Scope) string
}

// Accessor adapts a plain function to Candidate.
type Accessor func(ctx model.DocumentContext) string

// Value implements Candidate.
func (a Accessor) Value(scope *Scope) string {
	if a == nil || scope == nil {
		return ""
	}
	return strings.TrimSpace(a(scope.Context))
}

// Formatter finishes a raw winning value for display.
type Formatter func(string) string

// Rule is one token's fallback chain.
type Rule struct {
	Token      string
	Candidates []Candidate
	Fallback   string
	Format     Formatter
}

// Derivation computes several tokens at once. Derive returns the values it
// could compute; tokens it omits take their Fallback entry, or Blank.
type Derivation struct {
	Name     string
	Tokens   []string
	Derive   func(scope *Scope) map[string]string
	Fallback map[string]string
}

// Table is a complete resolution policy. Derivations run first; a Rule for
// the same token replaces a derived value only when one of its candidates
// yields something.
type Table struct {
	Rules       []Rule
	Derivations []Derivation
}

// Tokens lists every token the table can produce, sorted.
func (t Table) Tokens() []string {
	seen := make(map[string]struct{})
	for _, d := range t.Derivations {
		for _, token := range d.Tokens {
			seen[token] = struct{}{}
		}
	}
	for _, r := range t.Rules {
		seen[r.Token] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for token := range seen {
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// Rule returns the rule registered for token.
func (t Table) Rule(token string) (Rule, bool) {
	for i := len(t.Rules) - 1; i >= 0; i-- {
		if t.Rules[i].Token == token {
			return t.Rules[i], true
		}
	}
	return Rule{}, false
}

// With returns a table whose rules replace t's rules for the same tokens.
func (t Table) With(rules ...Rule) Table {
	replaced := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		replaced[r.Token] = struct{}{}
	}
	out := Table{Derivations: append([]Derivation(nil), t.Derivations...)}
	for _, r := range t.Rules {
		if _, ok := replaced[r.Token]; ok {
			continue
		}
		out.Rules = append(out.Rules, r)
	}
	out.Rules = append(out.Rules, rules...)
	return out
}

// Result is the outcome of one resolve.
type Result struct {
	Facts model.FactSet
	// Fallbacks lists, sorted, the tokens no candidate could supply.
	Fallbacks []string
}

// Resolve evaluates table against ctx. It never fails: a token without a
// usable candidate gets its fallback literal.
func Resolve(ctx model.DocumentContext, table Table) Result {
	scope := NewScope(ctx)
	facts := make(model.FactSet)
	fallback := make(map[string]bool)
	derived := make(map[string]bool)

	for _, d := range table.Derivations {
		var values map[string]string
		if d.Derive != nil {
			values = d.Derive(scope)
		}
		for _, token := range d.Tokens {
			if value := strings.TrimSpace(values[token]); value != "" {
				facts[token] = value
				derived[token] = true
				delete(fallback, token)
				continue
			}
			delete(derived, token)
			facts[token] = fallbackValue(d.Fallback[token])
			fallback[token] = true
		}
	}

	for _, r := range table.Rules {
		if r.Token == "" {
			continue
		}
		value, ok := first(scope, r.Candidates)
		if !ok && derived[r.Token] {
			continue
		}
		if !ok {
			facts[r.Token] = fallbackValue(r.Fallback)
			fallback[r.Token] = true
			continue
		}
		if r.Format != nil {
			value = r.Format(value)
		}
		facts[r.Token] = value
		delete(fallback, r.Token)
	}

	result := Result{Facts: facts}
	for token := range fallback {
		result.Fallbacks = append(result.Fallbacks, token)
	}
	sort.Strings(result.Fallbacks)
	return result
}

func first(scope *Scope, candidates []Candidate) (string, bool) {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if value := strings.TrimSpace(c.Value(scope)); value != "" {
			return value, true
		}
	}
	return "", false
}

func fallbackValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return Blank
	}
	return v
}
