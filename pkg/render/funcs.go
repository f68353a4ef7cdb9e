package render

import (
	"math"
	"strings"
	"time"

	"github.com/goliatone/go-contractgen/pkg/datefmt"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/money"
)

// TemplateFuncsConfig configures the helpers exposed to page templates.
type TemplateFuncsConfig struct {
	// Money formats numerals and words. Defaults to money.NewFormatter().
	Money *money.Formatter
	// Prefix is prepended to every helper name.
	Prefix string
}

// TemplateFuncs returns helpers suitable for injecting into go-template
// page shells built with gotemplate.New:
//
//	fecha(value) string      "2020-12-15" -> "15 de diciembre de 2020"
//	palabras(value) string   1500 -> "mil quinientos"
//	monto(value) string      10000 -> "10,000"
func TemplateFuncs(cfg TemplateFuncsConfig) map[string]any {
	formatter := cfg.Money
	if formatter == nil {
		formatter = money.NewFormatter()
	}
	prefix := strings.TrimSpace(cfg.Prefix)

	return map[string]any{
		prefix + "fecha": func(value any) string {
			switch v := value.(type) {
			case time.Time:
				return datefmt.FormatTime(v)
			case *time.Time:
				if v == nil {
					return datefmt.Placeholder
				}
				return datefmt.FormatTime(*v)
			default:
				return datefmt.Format(model.Stringify(value))
			}
		},
		prefix + "palabras": func(value any) string {
			return formatter.Speller().ParseWords(model.Stringify(value))
		},
		prefix + "monto": func(value any) string {
			n, ok := model.Number(value)
			if !ok {
				return model.Stringify(value)
			}
			return formatter.Grouped(int64(math.Round(n)))
		},
	}
}
