package datefmt_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-contractgen/pkg/datefmt"
)

func TestFormat(t *testing.T) {
	cases := map[string]string{
		"2020-12-15":                "15 de diciembre de 2020",
		" 2021-01-01 ":              "1 de enero de 2021",
		"2020-12-15T23:30:00-04:00": "15 de diciembre de 2020",
		"2020-12-15T00:30:00Z":      "15 de diciembre de 2020",
		"15/12/2020":                "15 de diciembre de 2020",
		"":                          datefmt.Placeholder,
		"mañana":                    datefmt.Placeholder,
		"2020-13-40":                datefmt.Placeholder,
	}
	for in, want := range cases {
		if got := datefmt.Format(in); got != want {
			t.Fatalf("Format(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormat_IndependentOfLocalZone(t *testing.T) {
	original := time.Local
	t.Cleanup(func() { time.Local = original })

	for _, zone := range []string{"America/La_Paz", "Pacific/Kiritimati", "Pacific/Pago_Pago"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Skipf("zone data unavailable: %v", err)
		}
		time.Local = loc
		if got := datefmt.Format("2020-12-15"); got != "15 de diciembre de 2020" {
			t.Fatalf("Format in %s = %q", zone, got)
		}
	}
}

func TestPlaceholderShape(t *testing.T) {
	if datefmt.Placeholder != "___/___/____" {
		t.Fatalf("placeholder = %q", datefmt.Placeholder)
	}
}

func TestNumericAndFormatTime(t *testing.T) {
	if got := datefmt.Numeric("2020-02-03"); got != "03/02/2020" {
		t.Fatalf("Numeric = %q", got)
	}
	if got := datefmt.FormatTime(time.Time{}); got != datefmt.Placeholder {
		t.Fatalf("FormatTime(zero) = %q", got)
	}
	loc := time.FixedZone("BOT", -4*3600)
	if got := datefmt.FormatTime(time.Date(2024, 7, 9, 22, 0, 0, 0, loc)); got != "9 de julio de 2024" {
		t.Fatalf("FormatTime = %q", got)
	}
}
