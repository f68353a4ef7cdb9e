package model

import "sort"

// FactSet maps a token (e.g. "{importer.company}") to its finished display
// value. Values are inserted verbatim.
type FactSet map[string]string

// Keys returns the tokens in sorted order.
func (f FactSet) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (f FactSet) Clone() FactSet {
	out := make(FactSet, len(f))
	for key, value := range f {
		out[key] = value
	}
	return out
}

// Merge returns a copy of f with overrides applied. Blank override values
// are ignored.
func (f FactSet) Merge(overrides map[string]string) FactSet {
	out := f.Clone()
	for key, value := range overrides {
		if key == "" || isBlank(value) {
			continue
		}
		out[key] = value
	}
	return out
}
