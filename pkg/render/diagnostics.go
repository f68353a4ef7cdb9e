package render

import (
	"strings"
)

// Diagnostics collects the data-quality notes produced while building one
// document. None of them stop rendering.
type Diagnostics struct {
	// Unresolved lists tokens left literally in the output.
	Unresolved []string `json:"unresolved,omitempty"`
	// Fallbacks lists tokens rendered with their fallback literal.
	Fallbacks []string `json:"fallbacks,omitempty"`
	// Notes carries free-form messages, e.g. from renderers.
	Notes []string `json:"notes,omitempty"`
}

// Empty reports whether there is nothing to show.
func (d Diagnostics) Empty() bool {
	return len(d.Unresolved) == 0 && len(d.Fallbacks) == 0 && len(d.Notes) == 0
}

// Merge combines d with other, keeping first-seen order and dropping
// duplicates.
func (d Diagnostics) Merge(other Diagnostics) Diagnostics {
	return Diagnostics{
		Unresolved: MergeMessages(d.Unresolved, other.Unresolved...),
		Fallbacks:  MergeMessages(d.Fallbacks, other.Fallbacks...),
		Notes:      MergeMessages(d.Notes, other.Notes...),
	}
}

// MergeMessages concatenates and normalises message slices, trimming
// whitespace and removing duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
