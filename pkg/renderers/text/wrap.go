package text

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap breaks s into lines of at most width cells, splitting on spaces.
// Existing line breaks are kept; words longer than width stay whole. Runs of
// whitespace inside a line collapse to one space. A width below one returns
// s unchanged.
func Wrap(s string, width int) []string {
	if width < 1 {
		return strings.Split(s, "\n")
	}
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		ww := wordwrap.NewWriter(width)
		// Identifiers such as "SOL-2020-077" must not break at the hyphen.
		ww.Breakpoints = nil
		_, _ = ww.Write([]byte(strings.Join(words, " ")))
		_ = ww.Close()
		out = append(out, strings.Split(ww.String(), "\n")...)
	}
	return out
}
