package token

import (
	"strings"
	"testing"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{``, ""},
		{`hello world`, "hello world"},
		{`hello\nworld`, "hello\nworld"},
		{`hello\tworld`, "hello\tworld"},
		{`hello\rworld`, "hello\rworld"},
		{`hello\"world`, "hello\"world"},
		{`hello\\world`, "hello\\world"},
		{`line1\nline2\tindented\"quoted\"`, "line1\nline2\tindented\"quoted\""},
		{`hello\`, "hello\\"},
		{`\`, "\\"},
		{`hello\zworld`, "hello\\zworld"},
		{`\z`, "\\z"},
		{`\u00e9`, "\\u00e9"},
		{`hello\\\\world`, "hello\\\\world"},
		{`\\n\\t\\r\\\"\\\\`, "\\n\\t\\r\\\"\\\\"},
		{`Hello\nWorld\n🌍\n世界`, "Hello\nWorld\n🌍\n世界"},
		{`\é`, "\\é"},
		{`{\"a\":\"b\",\n\"c\":\"d\"}`, "{\"a\":\"b\",\n\"c\":\"d\"}"},
	}
	for _, tc := range tests {
		if got := Unescape(tc.in); got != tc.want {
			t.Errorf("Unescape(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnescapePairs(t *testing.T) {
	pairs := map[string]string{
		`\n`: "\n",
		`\t`: "\t",
		`\r`: "\r",
		`\\`: "\\",
		`\"`: "\"",
	}
	for in, want := range pairs {
		if got := Unescape(in); got != want {
			t.Errorf("Unescape(%q) = %q want %q", in, got, want)
		}
	}
}

func TestUnescapeIdentity(t *testing.T) {
	for _, s := range []string{"", "abc", "a\nb", "\"quoted\"", "\xff\xfe", "日本語", "tab\there"} {
		if got := Unescape(s); got != s {
			t.Errorf("Unescape(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestUnescapeLarge(t *testing.T) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "line: this is a line"
	}
	got := Unescape(strings.Join(lines, `\n`))
	if n := len(strings.Split(got, "\n")); n != 1000 {
		t.Errorf("got %d lines", n)
	}
}
