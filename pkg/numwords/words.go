// Package numwords spells non-negative integers as Spanish cardinal words for
// the "suma en palabras" clauses of contracts and quotations.
package numwords

import (
	"math"
	"strconv"
	"strings"
)

// Limit is the largest value spelled out; larger values render as digits.
const Limit = 999_999

const zero = "cero"

// Hundreds selects how the hundreds position is spelled.
type Hundreds int

const (
	// Standard spells hundreds as written Spanish does: cien, ciento uno,
	// quinientos, setecientos, novecientos.
	Standard Hundreds = iota
	// Concat joins the unit word with "cientos" (unocientos, cincocientos).
	// Documents generated before Standard existed use this form.
	Concat
)

var units = [...]string{"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}

var teens = [...]string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve"}

var tens = [...]string{"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}

var hundreds = [...]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos"}

// Option configures a Speller.
type Option func(*Speller)

// WithHundreds selects the hundreds policy.
func WithHundreds(policy Hundreds) Option {
	return func(s *Speller) {
		s.hundreds = policy
	}
}

// Speller converts integers to words. The zero value uses Standard.
type Speller struct {
	hundreds Hundreds
}

// New constructs a Speller.
func New(options ...Option) *Speller {
	s := &Speller{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

var defaultSpeller = New()

// Words spells n with the Standard policy.
func Words(n int64) string {
	return defaultSpeller.Words(n)
}

// FloatWords rounds f to the nearest integer and spells it.
func FloatWords(f float64) string {
	return defaultSpeller.FloatWords(f)
}

// ParseWords spells a numeric string; anything unparsable is "cero".
func ParseWords(s string) string {
	return defaultSpeller.ParseWords(s)
}

// Policy reports the configured hundreds policy.
func (s *Speller) Policy() Hundreds {
	if s == nil {
		return Standard
	}
	return s.hundreds
}

// Words spells n. Negative values are "cero"; values above Limit are
// returned as plain digits.
func (s *Speller) Words(n int64) string {
	if n <= 0 {
		return zero
	}
	if n > Limit {
		return strconv.FormatInt(n, 10)
	}

	thousands, rest := n/1000, n%1000
	if thousands == 0 {
		return s.belowThousand(rest)
	}

	var b strings.Builder
	if thousands == 1 {
		b.WriteString("mil")
	} else {
		b.WriteString(s.belowThousand(thousands))
		b.WriteString(" mil")
	}
	if rest > 0 {
		b.WriteByte(' ')
		b.WriteString(s.belowThousand(rest))
	}
	return b.String()
}

// FloatWords rounds f and spells it. NaN, infinities and negative values are
// "cero".
func (s *Speller) FloatWords(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return zero
	}
	rounded := math.Round(f)
	if rounded > Limit {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}
	return s.Words(int64(rounded))
}

// ParseWords parses s as a number and spells it.
func (s *Speller) ParseWords(raw string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return zero
	}
	return s.FloatWords(f)
}

func (s *Speller) belowThousand(n int64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		word := tens[n/10]
		if u := n % 10; u > 0 {
			word += " y " + units[u]
		}
		return word
	}

	h, rest := n/100, n%100
	var word string
	switch s.Policy() {
	case Concat:
		word = units[h] + "cientos"
	default:
		if h == 1 && rest == 0 {
			return "cien"
		}
		word = hundreds[h]
	}
	if rest > 0 {
		word += " " + s.belowThousand(rest)
	}
	return word
}
