package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseContext decodes a DocumentContext from JSON, falling back to YAML.
func ParseContext(data []byte) (DocumentContext, error) {
	var out DocumentContext
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return out, errors.New("model: context document is empty")
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &out); err == nil {
			return out, nil
		}
	}
	if err := yaml.Unmarshal(trimmed, &out); err != nil {
		return DocumentContext{}, fmt.Errorf("model: decode context: %w", err)
	}
	return out, nil
}
