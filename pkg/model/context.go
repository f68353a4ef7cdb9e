package model

import (
	"encoding/json"
	"time"
)

// Company describes a company profile. The same shape is embedded in
// requests and contracts and also stands alone as the importer profile.
type Company struct {
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	NIT              string `json:"nit,omitempty" yaml:"nit,omitempty"`
	Address          string `json:"address,omitempty" yaml:"address,omitempty"`
	City             string `json:"city,omitempty" yaml:"city,omitempty"`
	Phone            string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email            string `json:"email,omitempty" yaml:"email,omitempty"`
	Representative   string `json:"representative,omitempty" yaml:"representative,omitempty"`
	RepresentativeID string `json:"representativeId,omitempty" yaml:"representativeId,omitempty"`
}

// Request is an import request submitted by an importer.
type Request struct {
	ID                 string         `json:"id,omitempty" yaml:"id,omitempty"`
	Code               string         `json:"code,omitempty" yaml:"code,omitempty"`
	Status             string         `json:"status,omitempty" yaml:"status,omitempty"`
	Company            *Company       `json:"company,omitempty" yaml:"company,omitempty"`
	ProductDescription string         `json:"productDescription,omitempty" yaml:"productDescription,omitempty"`
	Origin             string         `json:"origin,omitempty" yaml:"origin,omitempty"`
	Supplier           string         `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	AmountUSD          float64        `json:"amountUsd,omitempty" yaml:"amountUsd,omitempty"`
	AmountBs           float64        `json:"amountBs,omitempty" yaml:"amountBs,omitempty"`
	CreatedAt          string         `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	AdditionalData     map[string]any `json:"additionalData,omitempty" yaml:"additionalData,omitempty"`
}

// Quotation is the priced offer issued against a request.
type Quotation struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Number       string  `json:"number,omitempty" yaml:"number,omitempty"`
	AmountUSD    float64 `json:"amountUsd,omitempty" yaml:"amountUsd,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty" yaml:"exchangeRate,omitempty"`
	AmountBs     float64 `json:"amountBs,omitempty" yaml:"amountBs,omitempty"`
	FeePercent   float64 `json:"feePercent,omitempty" yaml:"feePercent,omitempty"`
	Date         string  `json:"date,omitempty" yaml:"date,omitempty"`
	ValidUntil   string  `json:"validUntil,omitempty" yaml:"validUntil,omitempty"`
}

// Contract holds the contract record, including a denormalised copy of the
// importer company taken when the contract was drafted.
type Contract struct {
	ID             string         `json:"id,omitempty" yaml:"id,omitempty"`
	Number         string         `json:"number,omitempty" yaml:"number,omitempty"`
	City           string         `json:"city,omitempty" yaml:"city,omitempty"`
	StartDate      string         `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate        string         `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	SignedAt       string         `json:"signedAt,omitempty" yaml:"signedAt,omitempty"`
	Company        *Company       `json:"company,omitempty" yaml:"company,omitempty"`
	AdditionalData map[string]any `json:"additionalData,omitempty" yaml:"additionalData,omitempty"`
}

// DocumentContext gathers every record in scope for one render pass.
// Provider is the intermediary issuing the document. Now is the reference
// date used for "today" facts; the zero value leaves those facts blank.
type DocumentContext struct {
	Request   *Request   `json:"request,omitempty" yaml:"request,omitempty"`
	Quotation *Quotation `json:"quotation,omitempty" yaml:"quotation,omitempty"`
	Contract  *Contract  `json:"contract,omitempty" yaml:"contract,omitempty"`
	Company   *Company   `json:"company,omitempty" yaml:"company,omitempty"`
	Provider  *Company   `json:"provider,omitempty" yaml:"provider,omitempty"`
	Now       time.Time  `json:"-" yaml:"-"`
}

// Additional returns the request's free-form data bag, falling back to the
// contract's when the request carries none.
func (c DocumentContext) Additional() map[string]any {
	if c.Request != nil && len(c.Request.AdditionalData) > 0 {
		return c.Request.AdditionalData
	}
	if c.Contract != nil && len(c.Contract.AdditionalData) > 0 {
		return c.Contract.AdditionalData
	}
	return nil
}

// Vars exposes the context as nested maps keyed by the JSON field names.
// Missing records become empty maps so lookups fail per key rather than per
// record.
func (c DocumentContext) Vars() map[string]any {
	return map[string]any{
		"request":    toMap(c.Request),
		"quotation":  toMap(c.Quotation),
		"contract":   toMap(c.Contract),
		"company":    toMap(c.Company),
		"provider":   toMap(c.Provider),
		"additional": cloneMap(c.Additional()),
	}
}

func toMap[T any](v *T) map[string]any {
	if v == nil {
		return map[string]any{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}
