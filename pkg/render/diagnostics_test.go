package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/render"
)

func TestMergeMessages(t *testing.T) {
	merged := render.MergeMessages([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged messages mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	a := render.Diagnostics{Unresolved: []string{"{x.y}"}, Fallbacks: []string{"{importer.nit}"}}
	b := render.Diagnostics{Unresolved: []string{"{x.y}", "{a.b}"}, Notes: []string{"pdf: 2 pages"}}

	got := a.Merge(b)
	want := render.Diagnostics{
		Unresolved: []string{"{x.y}", "{a.b}"},
		Fallbacks:  []string{"{importer.nit}"},
		Notes:      []string{"pdf: 2 pages"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if got.Empty() || !(render.Diagnostics{}).Empty() {
		t.Fatalf("Empty() wrong")
	}
}
