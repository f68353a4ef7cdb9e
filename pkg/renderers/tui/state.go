package tui

import (
	"sort"
	"strings"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// State tracks the facts under review and the answers collected so far.
type State struct {
	facts     model.FactSet
	overrides model.FactSet
}

// NewState seeds the state with the resolved facts.
func NewState(facts model.FactSet) *State {
	return &State{
		facts:     facts.Clone(),
		overrides: make(model.FactSet),
	}
}

// Value returns the current value of token, answered or resolved.
func (s *State) Value(token string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.overrides[token]; ok {
		return v
	}
	return s.facts[token]
}

// Set records an answer. Blank answers are ignored and report false.
func (s *State) Set(token, value string) bool {
	if s == nil {
		return false
	}
	value = strings.TrimSpace(value)
	if value == "" || value == s.facts[token] {
		return false
	}
	s.overrides[token] = value
	return true
}

// Overrides returns the answers collected so far.
func (s *State) Overrides() model.FactSet {
	if s == nil {
		return nil
	}
	return s.overrides.Clone()
}

// Facts returns the resolved facts with the answers applied.
func (s *State) Facts() model.FactSet {
	if s == nil {
		return nil
	}
	return s.facts.Merge(s.overrides)
}

// Answered lists the tokens that received an answer, sorted.
func (s *State) Answered() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.overrides))
	for token := range s.overrides {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
