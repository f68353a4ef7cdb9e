package facts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contractgen/pkg/datefmt"
	"github.com/goliatone/go-contractgen/pkg/model"
)

type tableFile struct {
	Rules []ruleFile `json:"rules" yaml:"rules"`
}

type ruleFile struct {
	Token      string   `json:"token" yaml:"token"`
	Candidates []string `json:"candidates" yaml:"candidates"`
	Fallback   string   `json:"fallback" yaml:"fallback"`
	Format     string   `json:"format" yaml:"format"`
}

// Formats names the formatters a table file may reference.
func Formats(cfg Config) map[string]Formatter {
	cfg = cfg.normalize()
	return map[string]Formatter{
		"":             nil,
		"text":         nil,
		"upper":        strings.ToUpper,
		"date":         datefmt.Format,
		"numeric-date": datefmt.Numeric,
		"words":        cfg.Money.Speller().ParseWords,
		"grouped": func(raw string) string {
			n, ok := model.Number(raw)
			if !ok || n < 0 {
				return raw
			}
			return cfg.Money.Spell(int64(math.Round(n))).Numeral
		},
	}
}

// ParseTable reads rules written as CEL candidate lists from JSON or YAML.
func ParseTable(data []byte, cfg Config) ([]Rule, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("facts: table is empty")
	}
	var file tableFile
	if err := json.Unmarshal(data, &file); err != nil {
		if yerr := yaml.Unmarshal(data, &file); yerr != nil {
			return nil, fmt.Errorf("facts: parse table: %w", yerr)
		}
	}

	formats := Formats(cfg)
	seen := make(map[string]struct{}, len(file.Rules))
	rules := make([]Rule, 0, len(file.Rules))
	for i, raw := range file.Rules {
		token := strings.TrimSpace(raw.Token)
		if token == "" {
			return nil, fmt.Errorf("facts: rule %d has no token", i)
		}
		if _, dup := seen[token]; dup {
			return nil, fmt.Errorf("facts: duplicate rule for %s", token)
		}
		seen[token] = struct{}{}

		format, ok := formats[strings.TrimSpace(raw.Format)]
		if !ok {
			return nil, fmt.Errorf("facts: rule %s: unknown format %q", token, raw.Format)
		}

		rule := Rule{Token: token, Fallback: raw.Fallback, Format: format}
		for _, source := range raw.Candidates {
			expr, err := CompileExpr(source)
			if err != nil {
				return nil, fmt.Errorf("facts: rule %s: %w", token, err)
			}
			rule.Candidates = append(rule.Candidates, expr)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadTable reads a rule file from fsys and layers it over base.
func LoadTable(fsys fs.FS, path string, base Table, cfg Config) (Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Table{}, fmt.Errorf("facts: read table %s: %w", path, err)
	}
	rules, err := ParseTable(data, cfg)
	if err != nil {
		return Table{}, err
	}
	return base.With(rules...), nil
}
