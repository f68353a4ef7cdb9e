package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// listing is a plain column table for command output.
type listing struct {
	headers []string
	rows    [][]string
}

func newListing(headers ...string) *listing {
	return &listing{headers: headers}
}

func (l *listing) add(row ...string) {
	l.rows = append(l.rows, row)
}

// write renders the table to w. Styles resolve against w, so output to a
// file or buffer carries no escape codes.
func (l *listing) write(w io.Writer) error {
	columns := len(l.headers)
	for _, row := range l.rows {
		columns = max(columns, len(row))
	}
	if columns == 0 {
		return nil
	}

	widths := make([]int, columns)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	measure(l.headers)
	for _, row := range l.rows {
		measure(row)
	}

	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).PaddingRight(2)
	cell := r.NewStyle().PaddingRight(2)

	var sb strings.Builder
	line := func(style lipgloss.Style, row []string) {
		var parts []string
		for i := 0; i < columns; i++ {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			if i == columns-1 {
				parts = append(parts, value)
				continue
			}
			parts = append(parts, style.Width(widths[i]+2).Render(value))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, ""), " "))
		sb.WriteString("\n")
	}
	if len(l.headers) > 0 {
		line(header, l.headers)
	}
	for _, row := range l.rows {
		line(cell, row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
