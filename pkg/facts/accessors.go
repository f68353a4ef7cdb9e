package facts

import (
	"strconv"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// CompanyField reads one field of a company profile.
type CompanyField func(*model.Company) string

var (
	CompanyName             CompanyField = func(c *model.Company) string { return c.Name }
	CompanyNIT              CompanyField = func(c *model.Company) string { return c.NIT }
	CompanyAddress          CompanyField = func(c *model.Company) string { return c.Address }
	CompanyCity             CompanyField = func(c *model.Company) string { return c.City }
	CompanyPhone            CompanyField = func(c *model.Company) string { return c.Phone }
	CompanyEmail            CompanyField = func(c *model.Company) string { return c.Email }
	CompanyRepresentative   CompanyField = func(c *model.Company) string { return c.Representative }
	CompanyRepresentativeID CompanyField = func(c *model.Company) string { return c.RepresentativeID }
)

// RequestCompany reads field from the request's company record.
func RequestCompany(field CompanyField) Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Request == nil {
			return ""
		}
		return companyValue(ctx.Request.Company, field)
	}
}

// ContractCompany reads field from the company copy stored on the contract.
func ContractCompany(field CompanyField) Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Contract == nil {
			return ""
		}
		return companyValue(ctx.Contract.Company, field)
	}
}

// Profile reads field from the standalone company profile.
func Profile(field CompanyField) Accessor {
	return func(ctx model.DocumentContext) string {
		return companyValue(ctx.Company, field)
	}
}

// Provider reads field from the issuing intermediary's profile.
func Provider(field CompanyField) Accessor {
	return func(ctx model.DocumentContext) string {
		return companyValue(ctx.Provider, field)
	}
}

// Additional reads a dotted path from the free-form additional data.
func Additional(path string) Accessor {
	return func(ctx model.DocumentContext) string {
		return model.LookupString(ctx.Additional(), path)
	}
}

// RequestField reads a value from the request record.
func RequestField(fn func(*model.Request) string) Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Request == nil || fn == nil {
			return ""
		}
		return fn(ctx.Request)
	}
}

// ContractField reads a value from the contract record.
func ContractField(fn func(*model.Contract) string) Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Contract == nil || fn == nil {
			return ""
		}
		return fn(ctx.Contract)
	}
}

// QuotationField reads a value from the quotation record.
func QuotationField(fn func(*model.Quotation) string) Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Quotation == nil || fn == nil {
			return ""
		}
		return fn(ctx.Quotation)
	}
}

// Today yields the context reference date as YYYY-MM-DD.
func Today() Accessor {
	return func(ctx model.DocumentContext) string {
		if ctx.Now.IsZero() {
			return ""
		}
		return ctx.Now.Format("2006-01-02")
	}
}

func companyValue(c *model.Company, field CompanyField) string {
	if c == nil || field == nil {
		return ""
	}
	return field(c)
}

// positive renders v when it is a usable amount.
func positive(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
