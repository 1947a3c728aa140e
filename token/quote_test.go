package token

import "testing"

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"no newlines here", "no newlines here"},
		{"", ""},
		{"true", "true"},
		{"a\nb", "\"a\nb\""},
		{`say "hi"`, `"say \"hi\""`},
		{" lead", `" lead"`},
		{"trail ", `"trail "`},
		{`back\slash`, `back\slash`},
		{"in ner", "in ner"},
	}
	for _, tc := range tests {
		if got := QuoteIfNeeded(tc.in); got != tc.want {
			t.Errorf("QuoteIfNeeded(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}
