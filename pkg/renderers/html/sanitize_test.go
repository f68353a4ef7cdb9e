package html_test

import (
	"testing"

	htmlrenderer "github.com/goliatone/go-contractgen/pkg/renderers/html"
)

func TestSanitizeEdited(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"empty": {in: "   ", want: ""},
		"keeps structure": {
			in:   `<h2 class="clause">PRIMERA</h2><p><strong>EL CLIENTE</strong></p>`,
			want: `<h2 class="clause">PRIMERA</h2><p><strong>EL CLIENTE</strong></p>`,
		},
		"drops scripts and handlers": {
			in:   `<p onclick="x()" style="color:red">Hola</p><script>alert(1)</script>`,
			want: `<p>Hola</p>`,
		},
		"drops links but keeps text": {
			in:   `<p><a href="javascript:x()">ver</a></p>`,
			want: `<p>ver</p>`,
		},
		"table spans": {
			in:   `<table><tr><td colspan="2" width="9">a</td></tr></table>`,
			want: `<table><tr><td colspan="2">a</td></tr></table>`,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := htmlrenderer.SanitizeEdited(tc.in); got != tc.want {
				t.Fatalf("SanitizeEdited() = %q, want %q", got, tc.want)
			}
		})
	}
}
