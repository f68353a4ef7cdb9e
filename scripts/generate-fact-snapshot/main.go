package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
	"github.com/goliatone/go-contractgen/pkg/render"
)

const snapshotRendererName = "facts-snapshot"

type snapshot struct {
	Template   string        `json:"template"`
	Facts      model.FactSet `json:"facts"`
	Unresolved []string      `json:"unresolved,omitempty"`
}

// snapshotRenderer writes the resolved facts instead of a document so fact
// table changes can be reviewed as a JSON diff.
type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, doc render.Document, _ render.RenderOptions) ([]byte, error) {
	_, report := doc.Body()
	payload, err := json.MarshalIndent(snapshot{
		Template:   doc.Template.Ref(),
		Facts:      doc.Facts,
		Unresolved: report.Unresolved,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		contextPath = flag.String("context", "examples/fixtures/contract.yaml", "JSON or YAML document context")
		templateID  = flag.String("template", "contrato-servicio", "template id to resolve")
		outputPath  = flag.String("output", "examples/fixtures/out/contract_facts.json", "output path for the fact snapshot")
		now         = flag.String("now", "2024-03-05", "reference date (YYYY-MM-DD) for today's facts")
	)
	flag.Parse()

	data, err := os.ReadFile(*contextPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read context: %v\n", err)
		os.Exit(1)
	}
	docCtx, err := model.ParseContext(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse context: %v\n", err)
		os.Exit(1)
	}
	ref, err := time.Parse(time.DateOnly, *now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -now: %v\n", err)
		os.Exit(1)
	}

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
		orchestrator.WithClock(func() time.Time { return ref }),
	)

	_, err = orch.Generate(context.Background(), orchestrator.Request{
		TemplateID: *templateID,
		Context:    docCtx,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot facts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote fact snapshot to %s\n", *outputPath)
}
