// Package money holds the fee rule, the quotation cascade and the numeral
// formatting used for amounts in Bs.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-contractgen/pkg/numwords"
)

const (
	// DefaultFeePercent is the service fee charged on the principal.
	DefaultFeePercent = 5
	// DefaultFeeRate is DefaultFeePercent as a fraction.
	DefaultFeeRate = DefaultFeePercent / 100.0
	// DefaultExchangeRate is the Bs per USD rate used when a quotation
	// does not carry one.
	DefaultExchangeRate = 6.96
	// Currency is the unit every fee is expressed in.
	Currency = "Bs"
)

// ServiceFee returns round(principalBs * DefaultFeeRate).
func ServiceFee(principalBs float64) int64 {
	return FeeAt(principalBs, DefaultFeeRate)
}

// FeeAt returns round(principal * rate). Invalid or non-positive input is 0.
func FeeAt(principal, rate float64) int64 {
	if !valid(principal) || !valid(rate) || principal <= 0 || rate <= 0 {
		return 0
	}
	return int64(math.Round(principal * rate))
}

// Round2 rounds v to cents.
func Round2(v float64) float64 {
	if !valid(v) {
		return 0
	}
	return math.Round(v*100) / 100
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Spelled is one integer amount rendered both as numeral and as words.
// Both renderings always describe Value.
type Spelled struct {
	Value   int64
	Numeral string
	Words   string
}

// Formatter renders amounts for one locale.
type Formatter struct {
	printer *message.Printer
	speller *numwords.Speller
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithLocale selects the locale used for digit grouping.
func WithLocale(tag language.Tag) FormatterOption {
	return func(f *Formatter) {
		f.printer = message.NewPrinter(tag)
	}
}

// WithSpeller overrides the number speller.
func WithSpeller(s *numwords.Speller) FormatterOption {
	return func(f *Formatter) {
		if s != nil {
			f.speller = s
		}
	}
}

// NewFormatter builds a Formatter; the default locale groups as "10,000".
func NewFormatter(options ...FormatterOption) *Formatter {
	f := &Formatter{
		printer: message.NewPrinter(language.English),
		speller: numwords.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Grouped renders n with thousands grouping.
func (f *Formatter) Grouped(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Decimal renders v with grouping and a fixed number of decimals.
func (f *Formatter) Decimal(v float64, places int) string {
	if !valid(v) {
		v = 0
	}
	return f.printer.Sprint(number.Decimal(v, number.Scale(places)))
}

// Spell renders n as numeral and words from the same integer.
func (f *Formatter) Spell(n int64) Spelled {
	return Spelled{
		Value:   n,
		Numeral: f.Grouped(n),
		Words:   f.speller.Words(n),
	}
}

// Speller exposes the configured speller.
func (f *Formatter) Speller() *numwords.Speller {
	return f.speller
}

// ParseGrouped reads back a numeral produced by Grouped.
func ParseGrouped(s string) (int64, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SpellCents spells the integer part of v followed by the cents as "NN/100".
func (f *Formatter) SpellCents(v float64) string {
	v = Round2(v)
	if v < 0 {
		v = 0
	}
	whole := math.Floor(v)
	cents := int64(math.Round((v - whole) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return f.speller.FloatWords(whole) + " " + fmt.Sprintf("%02d/100", cents)
}
