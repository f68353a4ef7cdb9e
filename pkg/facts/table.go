package facts

import (
	"math"
	"strconv"

	"github.com/goliatone/go-contractgen/pkg/datefmt"
	"github.com/goliatone/go-contractgen/pkg/model"
	"github.com/goliatone/go-contractgen/pkg/money"
)

// Fallback literals shown when a fact is unknown.
const (
	DefaultImporterName = "Empresa Importadora"
	DefaultNIT          = "NIT no especificado"
	DefaultNumber       = "S/N"
)

// Config tunes the default table.
type Config struct {
	// Money renders numerals and spelled amounts. Defaults to money.NewFormatter().
	Money *money.Formatter
	// FeeRate is the service fee as a fraction. Defaults to money.DefaultFeeRate.
	FeeRate float64
}

func (c Config) normalize() Config {
	if c.Money == nil {
		c.Money = money.NewFormatter()
	}
	if c.FeeRate <= 0 || math.IsNaN(c.FeeRate) || math.IsInf(c.FeeRate, 0) {
		c.FeeRate = money.DefaultFeeRate
	}
	return c
}

// DefaultTable returns the resolution policy for the built-in contract and
// quotation templates.
func DefaultTable(cfg Config) Table {
	cfg = cfg.normalize()

	return Table{
		Derivations: []Derivation{
			serviceDerivation(cfg),
			quotationDerivation(cfg),
		},
		Rules: []Rule{
			company("{importer.company}", CompanyName, DefaultImporterName, "companyData.name", "companyName"),
			company("{importer.nit}", CompanyNIT, DefaultNIT, "companyData.nit", "nit"),
			company("{importer.address}", CompanyAddress, Blank, "companyData.address"),
			company("{importer.city}", CompanyCity, Blank, "companyData.city"),
			company("{importer.phone}", CompanyPhone, Blank, "companyData.phone"),
			company("{importer.email}", CompanyEmail, Blank, "companyData.email"),
			company("{importer.representative}", CompanyRepresentative, Blank,
				"companyData.representative", "companyData.legalRepresentative"),
			company("{importer.representativeId}", CompanyRepresentativeID, Blank,
				"companyData.representativeId", "companyData.ci"),

			{Token: "{provider.company}", Candidates: []Candidate{Provider(CompanyName)}, Fallback: Blank},
			{Token: "{provider.nit}", Candidates: []Candidate{Provider(CompanyNIT)}, Fallback: DefaultNIT},
			{Token: "{provider.address}", Candidates: []Candidate{Provider(CompanyAddress)}, Fallback: Blank},
			{Token: "{provider.representative}", Candidates: []Candidate{Provider(CompanyRepresentative)}, Fallback: Blank},
			{Token: "{provider.representativeId}", Candidates: []Candidate{Provider(CompanyRepresentativeID)}, Fallback: Blank},

			{
				Token: "{request.product}",
				Candidates: []Candidate{
					RequestField(func(r *model.Request) string { return r.ProductDescription }),
					Additional("productDescription"),
					Additional("product"),
				},
				Fallback: Blank,
			},
			{
				Token: "{request.origin}",
				Candidates: []Candidate{
					RequestField(func(r *model.Request) string { return r.Origin }),
					Additional("origin"),
					Additional("countryOfOrigin"),
				},
				Fallback: Blank,
			},
			{
				Token: "{request.supplier}",
				Candidates: []Candidate{
					RequestField(func(r *model.Request) string { return r.Supplier }),
					Additional("supplier.name"),
					Additional("supplierName"),
				},
				Fallback: Blank,
			},

			{
				Token: "{contract.number}",
				Candidates: []Candidate{
					ContractField(func(c *model.Contract) string { return c.Number }),
					RequestField(func(r *model.Request) string { return r.Code }),
					Additional("contractNumber"),
				},
				Fallback: DefaultNumber,
			},
			{
				Token: "{contract.city}",
				Candidates: []Candidate{
					ContractField(func(c *model.Contract) string { return c.City }),
					Additional("city"),
					RequestCompany(CompanyCity),
					Profile(CompanyCity),
				},
				Fallback: Blank,
			},
			date("{contract.startDate}",
				ContractField(func(c *model.Contract) string { return c.StartDate }),
				Additional("startDate"),
			),
			date("{contract.endDate}",
				ContractField(func(c *model.Contract) string { return c.EndDate }),
				Additional("endDate"),
			),
			date("{contract.date}",
				ContractField(func(c *model.Contract) string { return c.SignedAt }),
				Today(),
			),

			{
				Token: "{quotation.number}",
				Candidates: []Candidate{
					QuotationField(func(q *model.Quotation) string { return q.Number }),
					QuotationField(func(q *model.Quotation) string { return q.ID }),
					RequestField(func(r *model.Request) string { return r.Code }),
				},
				Fallback: DefaultNumber,
			},
			date("{quotation.date}",
				QuotationField(func(q *model.Quotation) string { return q.Date }),
				Today(),
			),
			date("{quotation.validUntil}",
				QuotationField(func(q *model.Quotation) string { return q.ValidUntil }),
				Additional("validUntil"),
			),
		},
	}
}

// company builds the importer chain used by every company fact: request
// company, additional data paths, contract copy, standalone profile.
func company(token string, field CompanyField, fallback string, paths ...string) Rule {
	candidates := []Candidate{RequestCompany(field)}
	for _, p := range paths {
		candidates = append(candidates, Additional(p))
	}
	candidates = append(candidates, ContractCompany(field), Profile(field))
	return Rule{Token: token, Candidates: candidates, Fallback: fallback}
}

func date(token string, candidates ...Candidate) Rule {
	return Rule{
		Token:      token,
		Candidates: candidates,
		Fallback:   datefmt.Placeholder,
		Format:     datefmt.Format,
	}
}

var serviceTokens = []string{
	"{service.principal}",
	"{service.principalWords}",
	"{service.amount}",
	"{service.amountWords}",
	"{service.feePercent}",
}

func serviceDerivation(cfg Config) Derivation {
	return Derivation{
		Name:   "service",
		Tokens: serviceTokens,
		Derive: func(scope *Scope) map[string]string {
			out := map[string]string{
				"{service.feePercent}": percent(cfg.FeeRate * 100),
			}
			principal := principalBs(scope, cfg)
			if principal <= 0 {
				return out
			}
			fee := cfg.Money.Spell(money.FeeAt(principal, cfg.FeeRate))
			out["{service.principal}"] = cfg.Money.Decimal(principal, 2)
			out["{service.principalWords}"] = cfg.Money.SpellCents(principal)
			out["{service.amount}"] = fee.Numeral
			out["{service.amountWords}"] = fee.Words
			return out
		},
	}
}

var quotationTokens = []string{
	"{quotation.amountUsd}",
	"{quotation.exchangeRate}",
	"{quotation.amountBs}",
	"{quotation.feePercent}",
	"{quotation.fee}",
	"{quotation.feeWords}",
	"{quotation.total}",
	"{quotation.totalWords}",
}

func quotationDerivation(cfg Config) Derivation {
	return Derivation{
		Name:   "quotation",
		Tokens: quotationTokens,
		Derive: func(scope *Scope) map[string]string {
			q := quoteFor(scope, cfg)
			out := map[string]string{
				"{quotation.exchangeRate}": cfg.Money.Decimal(q.ExchangeRate, 2),
				"{quotation.feePercent}":   percent(q.FeePercent),
			}
			if q.AmountBs <= 0 {
				return out
			}
			if q.AmountUSD > 0 {
				out["{quotation.amountUsd}"] = cfg.Money.Decimal(q.AmountUSD, 2)
			}
			fee := cfg.Money.Spell(q.Fee)
			out["{quotation.amountBs}"] = cfg.Money.Decimal(q.AmountBs, 2)
			out["{quotation.fee}"] = fee.Numeral
			out["{quotation.feeWords}"] = fee.Words
			out["{quotation.total}"] = cfg.Money.Decimal(q.Total, 2)
			out["{quotation.totalWords}"] = cfg.Money.SpellCents(q.Total)
			return out
		},
	}
}

func quoteFor(scope *Scope, cfg Config) money.Quote {
	ctx := scope.Context
	var in money.QuoteInput
	if q := ctx.Quotation; q != nil {
		in = money.QuoteInput{
			AmountUSD:    q.AmountUSD,
			ExchangeRate: q.ExchangeRate,
			AmountBs:     q.AmountBs,
			FeePercent:   q.FeePercent,
		}
	}
	if in.AmountUSD <= 0 {
		in.AmountUSD = firstAmount(
			RequestField(func(r *model.Request) string { return positive(r.AmountUSD) }).Value(scope),
			Additional("amountUsd").Value(scope),
		)
	}
	if in.ExchangeRate <= 0 {
		in.ExchangeRate = firstAmount(Additional("exchangeRate").Value(scope))
	}
	if in.FeePercent <= 0 {
		in.FeePercent = cfg.FeeRate * 100
	}
	return money.ComputeQuote(in)
}

// principalBs is the amount in Bs the service fee is charged on.
func principalBs(scope *Scope, cfg Config) float64 {
	ctx := scope.Context
	if ctx.Request != nil && ctx.Request.AmountBs > 0 {
		return ctx.Request.AmountBs
	}
	if q := quoteFor(scope, cfg); q.AmountBs > 0 {
		return q.AmountBs
	}
	return firstAmount(
		Additional("amountBs").Value(scope),
		Additional("montoBs").Value(scope),
	)
}

func firstAmount(values ...string) float64 {
	for _, v := range values {
		if n, ok := model.Number(v); ok && n > 0 {
			return n
		}
	}
	return 0
}

func percent(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
