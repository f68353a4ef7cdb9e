package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// Transformer adjusts resolved facts before review, overrides and rendering.
// Implementations can pin deployment constants or restyle values.
type Transformer interface {
	Transform(ctx context.Context, facts model.FactSet) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, facts model.FactSet) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, facts model.FactSet) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, facts)
}

// PresetTransformer applies declarative patches loaded from JSON or YAML:
//
//	facts:
//	  "{provider.company}": "Servicios Financieros SRL"
//	  "{provider.nit}": "1020304050"
//	upper:
//	  - "{importer.company}"
//
// Facts are set unconditionally; upper-cases existing values.
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Facts map[string]string `json:"facts" yaml:"facts"`
	Upper []string          `json:"upper" yaml:"upper"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		if yerr := yaml.Unmarshal(data, &document); yerr != nil {
			return nil, fmt.Errorf("preset transformer: parse document: %w", yerr)
		}
	}
	for token := range document.Facts {
		if !isToken(token) {
			return nil, fmt.Errorf("preset transformer: %q is not a {group.field} token", token)
		}
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset onto facts.
func (t *PresetTransformer) Transform(ctx context.Context, facts model.FactSet) error {
	if facts == nil {
		return errors.New("preset transformer: facts are nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for token, value := range t.document.Facts {
		facts[token] = value
	}
	for _, token := range t.document.Upper {
		if value, ok := facts[token]; ok {
			facts[token] = strings.ToUpper(value)
		}
	}
	return nil
}

func isToken(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && strings.Contains(s, ".")
}
