package money_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contractgen/pkg/money"
	"github.com/goliatone/go-contractgen/pkg/numwords"
)

func TestServiceFee(t *testing.T) {
	cases := map[float64]int64{
		0:      0,
		-100:   0,
		200000: 10000,
		10:     1,
		9:      0,
		1234.5: 62,
	}
	for in, want := range cases {
		if got := money.ServiceFee(in); got != want {
			t.Fatalf("ServiceFee(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestFormatter_Grouped(t *testing.T) {
	f := money.NewFormatter()
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		10000:   "10,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := f.Grouped(in); got != want {
			t.Fatalf("Grouped(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatter_SpellAgreesWithNumeral(t *testing.T) {
	f := money.NewFormatter()
	for _, principal := range []float64{0, 19.99, 1500, 200000, 3_333_333, 19_999_990} {
		fee := money.ServiceFee(principal)
		spelled := f.Spell(fee)

		parsed, ok := money.ParseGrouped(spelled.Numeral)
		if !ok {
			t.Fatalf("numeral %q not parseable", spelled.Numeral)
		}
		if parsed != fee {
			t.Fatalf("numeral %q describes %d, want %d", spelled.Numeral, parsed, fee)
		}
		if want := numwords.Words(parsed); spelled.Words != want {
			t.Fatalf("words %q, want %q", spelled.Words, want)
		}
	}
}

func TestComputeQuote(t *testing.T) {
	got := money.ComputeQuote(money.QuoteInput{AmountUSD: 10000, ExchangeRate: 6.96})
	want := money.Quote{
		AmountUSD:    10000,
		ExchangeRate: 6.96,
		AmountBs:     69600,
		FeePercent:   5,
		Fee:          3480,
		Total:        73080,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("quote mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeQuote_BsAmountWins(t *testing.T) {
	got := money.ComputeQuote(money.QuoteInput{AmountUSD: 1, AmountBs: 1000, FeePercent: 3})
	if got.AmountBs != 1000 || got.Fee != 30 || got.Total != 1030 {
		t.Fatalf("unexpected quote %+v", got)
	}
	if got.ExchangeRate != money.DefaultExchangeRate {
		t.Fatalf("exchange rate = %v", got.ExchangeRate)
	}
}

func TestParseGrouped(t *testing.T) {
	if _, ok := money.ParseGrouped("n/a"); ok {
		t.Fatalf("expected failure")
	}
	if n, ok := money.ParseGrouped("10.000"); !ok || n != 10000 {
		t.Fatalf("ParseGrouped(10.000) = %d, %v", n, ok)
	}
}

func TestFormatter_SpellCents(t *testing.T) {
	f := money.NewFormatter()
	cases := map[float64]string{
		73080:  "setenta y tres mil ochenta 00/100",
		1030.5: "mil treinta 50/100",
		15.999: "dieciséis 00/100",
		-3:     "cero 00/100",
	}
	for in, want := range cases {
		if got := f.SpellCents(in); got != want {
			t.Fatalf("SpellCents(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatter_Decimal(t *testing.T) {
	f := money.NewFormatter()
	if got := f.Decimal(1234.5, 2); got != "1,234.50" {
		t.Fatalf("Decimal = %q", got)
	}
}
