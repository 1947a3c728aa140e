package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	from := "kind: ConfigMap\ndata:\n  a.json: \"{\\n}\"\n"
	to := "kind: ConfigMap\ndata:\n  a.json: |\n    {\n    }\n"
	got := DiffLines(from, to)
	want := []Line{
		{Equal, "kind: ConfigMap"},
		{Equal, "data:"},
		{Delete, `  a.json: "{\n}"`},
		{Insert, "  a.json: |"},
		{Insert, "    {"},
		{Insert, "    }"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected change")
	}
}

func TestDiffLinesSame(t *testing.T) {
	lines := DiffLines("a: 1\nb: 2\n", "a: 1\nb: 2\n")
	if Changed(lines) {
		t.Errorf("unexpected change: %v", lines)
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines", len(lines))
	}
}

func TestWriteLines(t *testing.T) {
	lines := []Line{{Equal, "a"}, {Delete, "b"}, {Insert, "c"}}
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), " a\n-b\n+c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if err := WriteLines(buf, lines, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[31m-b") {
		t.Errorf("expected red deletion in %q", buf.String())
	}
}
