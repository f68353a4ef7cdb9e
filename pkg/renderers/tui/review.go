// Package tui reviews resolved facts in a terminal before a document is
// rendered. Facts that fell back to a placeholder are prompted for; an empty
// answer keeps the placeholder.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// Reviewer drives one review session per call to Review.
type Reviewer struct {
	driver  PromptDriver
	labels  map[string]string
	theme   Theme
	all     bool
	confirm bool
}

// New constructs a Reviewer with the survey driver unless one is supplied.
func New(options ...Option) *Reviewer {
	r := &Reviewer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Review prompts for the pending tokens (or every fact when configured with
// WithReviewAll) and returns the answers as overrides.
func (r *Reviewer) Review(ctx context.Context, facts model.FactSet, pending []string) (model.FactSet, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.driver == nil {
		return nil, ErrNoDriver
	}

	state := NewState(facts)
	tokens := pending
	if r.all {
		tokens = facts.Keys()
	}
	if len(tokens) == 0 {
		return state.Overrides(), nil
	}

	if err := r.info(ctx, fmt.Sprintf("%d dato(s) por revisar", len(tokens))); err != nil {
		return nil, err
	}

	for _, token := range tokens {
		if err := r.promptFact(ctx, token, state); err != nil {
			return nil, err
		}
	}

	if r.confirm {
		ok, err := r.confirmAnswers(ctx, state)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}
	return state.Overrides(), nil
}

// ChooseFormat asks which output format to produce. def preselects an option.
func (r *Reviewer) ChooseFormat(ctx context.Context, formats []string, def string) (string, error) {
	if r == nil || r.driver == nil {
		return "", ErrNoDriver
	}
	if len(formats) == 0 {
		return "", errors.New("tui: no formats to choose from")
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + "Formato de salida",
		Options:      formats,
		DefaultIndex: indexOf(formats, def),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(formats) {
		return "", fmt.Errorf("tui: invalid format selection %d", idx)
	}
	return formats[idx], nil
}

func (r *Reviewer) promptFact(ctx context.Context, token string, state *State) error {
	current := state.Value(token)
	cfg := InputConfig{
		Message: r.theme.PromptPrefix + r.label(token),
		Help:    fmt.Sprintf("%s (vacío mantiene %q)", token, current),
	}
	if r.all {
		cfg.Default = current
	}
	answer, err := r.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	state.Set(token, answer)
	return nil
}

func (r *Reviewer) confirmAnswers(ctx context.Context, state *State) (bool, error) {
	answered := state.Answered()
	if len(answered) == 0 {
		if err := r.info(ctx, "Sin cambios"); err != nil {
			return false, err
		}
	}
	for _, token := range answered {
		if err := r.info(ctx, fmt.Sprintf("%s = %s", token, state.Value(token))); err != nil {
			return false, err
		}
	}
	return r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.theme.PromptPrefix + "¿Generar el documento con estos datos?",
		Default: true,
	})
}

func (r *Reviewer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

// label returns the configured label or one derived from the token:
// "{importer.representativeId}" -> "importer representativeId".
func (r *Reviewer) label(token string) string {
	if label := strings.TrimSpace(r.labels[token]); label != "" {
		return label
	}
	trimmed := strings.Trim(token, "{}")
	return strings.ReplaceAll(trimmed, ".", " ")
}
