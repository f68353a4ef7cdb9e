package testsupport_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/testsupport"
)

func TestLoadContext_YAML(t *testing.T) {
	docCtx := testsupport.LoadContext(t, filepath.Join("testdata", "contract.yaml"))

	if docCtx.Request == nil || docCtx.Request.Company == nil {
		t.Fatalf("request company not decoded: %+v", docCtx.Request)
	}
	if got := docCtx.Request.Company.Name; got != "Importadora Andina SRL" {
		t.Fatalf("company name = %q", got)
	}
	if got := docCtx.Request.AmountBs; got != 200000 {
		t.Fatalf("amountBs = %v", got)
	}
	if diff := cmp.Diff(map[string]any{"endDate": "2021-03-31"}, docCtx.Additional()); diff != "" {
		t.Fatalf("additional mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadContext_JSON(t *testing.T) {
	docCtx := testsupport.LoadContext(t, filepath.Join("testdata", "quotation.json"))

	want := &model.Quotation{Number: "COT-9", AmountUSD: 1000, ExchangeRate: 7, FeePercent: 5, Date: "2021-01-04"}
	if diff := cmp.Diff(want, docCtx.Quotation); diff != "" {
		t.Fatalf("quotation mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadContextFromPath_Errors(t *testing.T) {
	if _, err := testsupport.LoadContextFromPath(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := testsupport.LoadContextFromPath(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSquash(t *testing.T) {
	if got := testsupport.Squash("  a\n b\t\tc "); got != "a b c" {
		t.Fatalf("squash = %q", got)
	}
}
