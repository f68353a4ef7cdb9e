package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/model"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	prompts      []InputConfig
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.prompts = append(s.prompts, cfg)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func reviewFacts() model.FactSet {
	return model.FactSet{
		"{importer.company}": "ACME SRL",
		"{importer.nit}":     "NIT no especificado",
		"{importer.address}": "_________________",
	}
}

func TestReview_PromptsPendingOnly(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Av. Arce 123", ""}}
	reviewer := New(WithPromptDriver(driver), WithLabels(map[string]string{"{importer.address}": "Dirección"}))

	overrides, err := reviewer.Review(context.Background(), reviewFacts(), []string{"{importer.address}", "{importer.nit}"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	want := model.FactSet{"{importer.address}": "Av. Arce 123"}
	if diff := cmp.Diff(want, overrides); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
	if len(driver.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(driver.prompts))
	}
	if driver.prompts[0].Message != "Dirección" || driver.prompts[1].Message != "importer nit" {
		t.Fatalf("unexpected prompt labels: %q, %q", driver.prompts[0].Message, driver.prompts[1].Message)
	}
	if driver.prompts[0].Default != "" {
		t.Fatalf("pending prompts should not prefill the placeholder")
	}
	if diff := cmp.Diff([]string{"2 dato(s) por revisar"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestReview_NothingPending(t *testing.T) {
	driver := &stubDriver{}
	overrides, err := New(WithPromptDriver(driver)).Review(context.Background(), reviewFacts(), nil)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if len(overrides) != 0 || len(driver.infoMessages) != 0 {
		t.Fatalf("expected no interaction, got %v / %v", overrides, driver.infoMessages)
	}
}

func TestReview_AllWithConfirm(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"", "ACME SA", "NIT no especificado"},
		confirm: []bool{true},
	}
	reviewer := New(WithPromptDriver(driver), WithReviewAll(true), WithConfirm(true), WithTheme(Theme{InfoPrefix: "> "}))

	overrides, err := reviewer.Review(context.Background(), reviewFacts(), nil)
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if diff := cmp.Diff(model.FactSet{"{importer.company}": "ACME SA"}, overrides); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
	if driver.prompts[1].Default != "ACME SRL" {
		t.Fatalf("review-all prompt should prefill current value, got %q", driver.prompts[1].Default)
	}
	wantInfo := []string{"> 3 dato(s) por revisar", "> {importer.company} = ACME SA"}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestReview_DeclinedConfirm(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x"}, confirm: []bool{false}}
	reviewer := New(WithPromptDriver(driver), WithConfirm(true))

	_, err := reviewer.Review(context.Background(), reviewFacts(), []string{"{importer.nit}"})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestReview_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(WithPromptDriver(&stubDriver{})).Review(ctx, reviewFacts(), []string{"{importer.nit}"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChooseFormat(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	got, err := New(WithPromptDriver(driver)).ChooseFormat(context.Background(), []string{"html", "pdf", "text"}, "html")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got != "text" {
		t.Fatalf("format = %q", got)
	}

	if _, err := New(WithPromptDriver(&stubDriver{selectIdx: []int{-1}})).ChooseFormat(context.Background(), []string{"html"}, ""); err == nil {
		t.Fatalf("expected invalid selection error")
	}
}

func TestState(t *testing.T) {
	state := NewState(reviewFacts())
	if state.Set("{importer.company}", "  ") {
		t.Fatalf("blank answer should be ignored")
	}
	if state.Set("{importer.company}", "ACME SRL") {
		t.Fatalf("unchanged answer should be ignored")
	}
	if !state.Set("{importer.nit}", " 1020304050 ") {
		t.Fatalf("answer should be recorded")
	}
	if got := state.Facts()["{importer.nit}"]; got != "1020304050" {
		t.Fatalf("merged nit = %q", got)
	}
	if diff := cmp.Diff([]string{"{importer.nit}"}, state.Answered()); diff != "" {
		t.Fatalf("answered mismatch (-want +got):\n%s", diff)
	}
}
