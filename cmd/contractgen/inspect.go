package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contractgen/pkg/facts"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
)

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			table := newListing("ID", "VERSION", "KIND", "TITLE", "HASH")
			for _, tpl := range orch.Templates() {
				hash := tpl.Hash
				if len(hash) > 12 {
					hash = hash[:12]
				}
				table.add(tpl.ID, tpl.Version, string(tpl.Kind), tpl.Title, hash)
			}
			return table.write(a.out)
		},
	}
}

func newTokensCmd(a *app) *cobra.Command {
	var contextPath string
	cmd := &cobra.Command{
		Use:   "tokens [template-id]",
		Short: "List a template's tokens, or every token the fact table produces",
		Long: "Without a template id, lists every token the fact table produces. " +
			"With --context, each token is printed with its resolved value.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}

			tokens := orch.Table().Tokens()
			if len(args) == 1 {
				tokens = nil
				for _, tpl := range orch.Templates() {
					if tpl.ID == args[0] {
						tokens = tpl.Tokens
					}
				}
				if tokens == nil {
					return fmt.Errorf("unknown template %q", args[0])
				}
			}

			if contextPath == "" {
				for _, token := range tokens {
					fmt.Fprintln(a.out, token)
				}
				return nil
			}

			docCtx, err := a.readContext(contextPath)
			if err != nil {
				return err
			}
			return a.printFacts(orch, tokens, docCtx)
		},
	}
	cmd.Flags().StringVar(&contextPath, "context", "", "resolve tokens against this JSON or YAML context")
	return cmd
}

// printFacts resolves tokens against docCtx. Tokens that fell back are
// marked with "*".
func (a *app) printFacts(orch *orchestrator.Orchestrator, tokens []string, docCtx model.DocumentContext) error {
	if docCtx.Now.IsZero() {
		docCtx.Now = time.Now()
	}
	result := facts.Resolve(docCtx, orch.Table())
	fallbacks := make(map[string]struct{}, len(result.Fallbacks))
	for _, token := range result.Fallbacks {
		fallbacks[token] = struct{}{}
	}

	table := newListing()
	for _, token := range tokens {
		mark := ""
		if _, ok := fallbacks[token]; ok {
			mark = "*"
		}
		table.add(token+mark, result.Facts[token])
	}
	return table.write(a.out)
}
