// Package gotemplate configures a github.com/goliatone/go-template engine for
// page shells: templates come from an fs.FS, helpers are registered as
// globals and the contract filters are installed.
package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-contractgen/pkg/render/template"
)

// BlankLine is what the blank filter prints for an empty value.
const BlankLine = "_________________"

var _ template.TemplateRenderer = (*gotemplate.Engine)(nil)

// New returns an engine loading ".tpl" files from files. funcs are exposed
// to templates as callable globals.
func New(files fs.FS, funcs map[string]any) (*gotemplate.Engine, error) {
	if files == nil {
		return nil, errors.New("gotemplate: templates fs is required")
	}
	all := Filters()
	for name, fn := range funcs {
		name = strings.TrimSpace(name)
		if name == "" || fn == nil {
			continue
		}
		all[name] = fn
	}
	engine, err := gotemplate.NewRenderer(
		gotemplate.WithFS(files),
		gotemplate.WithExtension(".tpl"),
		gotemplate.WithTemplateFunc(all),
	)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	return engine, nil
}

// Filters lists the filters installed by New.
func Filters() map[string]any {
	return map[string]any{
		"blank": pongo2.FilterFunction(filterBlank),
	}
}

// filterBlank renders a fill-in line for empty values: {{ v|blank }} or
// {{ v|blank:"S/N" }}.
func filterBlank(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in != nil && !in.IsNil() && strings.TrimSpace(in.String()) != "" {
		return in, nil
	}
	if param != nil && !param.IsNil() && param.String() != "" {
		return param, nil
	}
	return pongo2.AsValue(BlankLine), nil
}
