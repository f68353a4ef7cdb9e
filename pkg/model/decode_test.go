package model_test

import (
	"testing"

	"github.com/goliatone/go-contractgen/pkg/model"
)

func TestParseContext(t *testing.T) {
	jsonDoc := []byte(`{"request": {"code": "SOL-1", "amountBs": 1500.5}}`)
	got, err := model.ParseContext(jsonDoc)
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if got.Request == nil || got.Request.Code != "SOL-1" || got.Request.AmountBs != 1500.5 {
		t.Fatalf("unexpected request %+v", got.Request)
	}

	yamlDoc := []byte("contract:\n  number: CT-1\n  additionalData:\n    city: Sucre\n")
	got, err = model.ParseContext(yamlDoc)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if got.Contract == nil || got.Contract.Number != "CT-1" {
		t.Fatalf("unexpected contract %+v", got.Contract)
	}
	if got.Additional()["city"] != "Sucre" {
		t.Fatalf("additional = %v", got.Additional())
	}
}

func TestParseContext_Errors(t *testing.T) {
	if _, err := model.ParseContext([]byte("  \n")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := model.ParseContext([]byte("request: [unterminated")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
