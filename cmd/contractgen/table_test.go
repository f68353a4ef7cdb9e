package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListing_AlignsColumns(t *testing.T) {
	table := newListing("ID", "TITLE")
	table.add("contrato-servicio", "Contrato")
	table.add("cotizacion", "Cotización")

	var buf bytes.Buffer
	if err := table.write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "ID                 TITLE\n" +
		"contrato-servicio  Contrato\n" +
		"cotizacion         Cotización\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}
}
