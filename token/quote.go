package token

import "strings"

// NeedsQuote reports whether an inline string value must be double quoted:
// it contains a newline or a double quote, or starts or ends with a space.
func NeedsQuote(v string) bool {
	if strings.ContainsAny(v, "\n\"") {
		return true
	}
	return strings.HasPrefix(v, " ") || strings.HasSuffix(v, " ")
}

// Quote surrounds v with double quotes, escaping the double quotes inside it.
// Nothing else is escaped.
func Quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}

// QuoteIfNeeded returns Quote(v) when NeedsQuote(v), and v otherwise.
func QuoteIfNeeded(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
