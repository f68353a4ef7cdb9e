package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-contractgen/pkg/document"
	"github.com/goliatone/go-contractgen/pkg/facts"
)

type violation struct {
	file    string
	token   string
	message string
}

func main() {
	templatesDir := flag.String("templates", "", "template directory with manifest.yaml (defaults to the embedded templates)")
	tablePath := flag.String("table", "", "YAML fact table layered over the default table")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [template files...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nReport template tokens that no fact rule produces.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	table, err := loadTable(*tablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	templates, err := collect(*templatesDir, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}

	violations := lint(templates, table)
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.token, v.message)
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}

func loadTable(path string) (facts.Table, error) {
	base := facts.DefaultTable(facts.Config{})
	if path == "" {
		return base, nil
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return facts.LoadTable(os.DirFS(dir), name, base, facts.Config{})
}

// collect returns the templates to lint keyed by a display name. Explicit
// files win over the template directory.
func collect(dir string, files []string) (map[string]string, error) {
	out := make(map[string]string)
	if len(files) > 0 {
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			out[path] = string(data)
		}
		return out, nil
	}

	var fsys fs.FS = document.EmbeddedFS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	store, err := document.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	for _, tpl := range store.List() {
		out[tpl.Ref()] = tpl.Body
	}
	return out, nil
}

func lint(templates map[string]string, table facts.Table) []violation {
	known := make(map[string]struct{})
	for _, token := range table.Tokens() {
		known[token] = struct{}{}
	}

	var result []violation
	for name, body := range templates {
		for _, token := range document.Tokens(body) {
			if _, ok := known[token]; ok {
				continue
			}
			result = append(result, violation{file: name, token: token, message: "no fact rule produces this token"})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].file == result[j].file {
			return result[i].token < result[j].token
		}
		return result[i].file < result[j].file
	})
	return result
}
