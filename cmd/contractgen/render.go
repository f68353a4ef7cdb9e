package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
	"github.com/goliatone/go-contractgen/pkg/renderers/tui"
)

var extensions = map[string]string{
	"html": ".html",
	"text": ".txt",
	"pdf":  ".pdf",
}

type renderFlags struct {
	template    string
	format      string
	out         string
	set         []string
	interactive bool
	all         bool
	fragment    bool
	title       string
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render [context-file]",
		Short: "Render a document from a JSON or YAML context ('-' reads stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.render(cmd.Context(), path, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "template id (defaults to the configured template)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: html, text or pdf")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file, or directory with --all (defaults to stdout)")
	cmd.Flags().StringArrayVar(&flags.set, "set", nil, "override a fact, e.g. --set '{contract.city}=La Paz'")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for facts that fell back to a placeholder")
	cmd.Flags().BoolVar(&flags.all, "all", false, "render every registered format into --out")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false, "emit the document body without the page shell")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title")
	return cmd
}

func (a *app) render(ctx context.Context, path string, flags renderFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	docCtx, err := a.readContext(path)
	if err != nil {
		return err
	}
	overrides, err := parseOverrides(flags.set)
	if err != nil {
		return err
	}

	var extra []orchestrator.Option
	var reviewer *tui.Reviewer
	if flags.interactive {
		reviewer = tui.New(tui.WithPromptDriver(tui.NewSurveyDriver(a.errOut)))
		extra = append(extra, orchestrator.WithReviewer(reviewer))
	}
	orch, err := a.orchestrator(extra...)
	if err != nil {
		return err
	}

	req := orchestrator.Request{
		TemplateID: flags.template,
		Context:    docCtx,
		Overrides:  overrides,
		Review:     flags.interactive,
		Renderer:   flags.format,
	}
	req.RenderOptions.Fragment = flags.fragment
	req.RenderOptions.Title = flags.title

	if flags.all {
		if flags.out == "" {
			return errors.New("render: --all requires --out to name a directory")
		}
		results, err := orch.GenerateAll(ctx, req, orch.Renderers()...)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(flags.out, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		for _, result := range results {
			target := filepath.Join(flags.out, result.Template.ID+extensions[result.Renderer])
			if err := os.WriteFile(target, result.Output, 0o644); err != nil {
				return fmt.Errorf("render: write %s: %w", target, err)
			}
			a.logger.Info("document written",
				zap.String("path", target),
				zap.String("document_id", result.ID.String()),
			)
		}
		return nil
	}

	if reviewer != nil && req.Renderer == "" {
		format, err := reviewer.ChooseFormat(ctx, orch.Renderers(), a.cfg.DefaultRenderer)
		if err != nil {
			return err
		}
		req.Renderer = format
	}

	result, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}
	if flags.out == "" {
		_, err := a.out.Write(result.Output)
		return err
	}
	if err := os.WriteFile(flags.out, result.Output, 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", flags.out, err)
	}
	a.logger.Info("document written",
		zap.String("path", flags.out),
		zap.String("document_id", result.ID.String()),
		zap.Int("unresolved", len(result.Diagnostics.Unresolved)),
	)
	return nil
}

func (a *app) readContext(path string) (model.DocumentContext, error) {
	if path == "" {
		return model.DocumentContext{}, nil
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.DocumentContext{}, fmt.Errorf("read context: %w", err)
	}
	return model.ParseContext(data)
}

// parseOverrides reads "{group.field}=value" pairs. The braces are optional.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		token, value, ok := strings.Cut(pair, "=")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid --set %q: want {group.field}=value", pair)
		}
		if !strings.HasPrefix(token, "{") {
			token = "{" + token + "}"
		}
		out[token] = value
	}
	return out, nil
}
