package token

import "strings"

// Unescape expands the backslash escapes \n, \t, \r, \\ and \" in v. Any other
// backslash, including one ending v, is kept along with the byte following
// it. Unescape never fails.
func Unescape(v string) string {
	i := strings.IndexByte(v, '\\')
	if i < 0 {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	b.WriteString(v[:i])
	n := len(v)
	for i < n {
		c := v[i]
		i++
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == n {
			b.WriteByte('\\')
			break
		}
		switch v[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			// unrecognized, the next byte is copied on the following iteration
			b.WriteByte('\\')
			continue
		}
		i++
	}
	return b.String()
}
