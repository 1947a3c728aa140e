package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/rsp/ir"
)

func TestParseConfigMap(t *testing.T) {
	in := `apiVersion: v1
kind: ConfigMap
metadata:
  name: test-config
data:
  config.json: "{\"a\":\"b\",\n\"c\":\"d\"}"
  raw.yaml: 'key: value\nother: x'
  replicas: 3
  negative: -3
  ratio: 1.5
  enabled: true
  nothing: null
  list: [a, 1]
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("root type %s", node.Type)
	}
	var keys []string
	for _, f := range node.Fields {
		keys = append(keys, f.String)
	}
	if diff := cmp.Diff([]string{"apiVersion", "kind", "metadata", "data"}, keys); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	data := ir.Get(node, "data")
	if data == nil || data.Type != ir.ObjectType {
		t.Fatalf("data: %v", data)
	}
	if got := ir.Get(data, "config.json").String; got != "{\"a\":\"b\",\n\"c\":\"d\"}" {
		t.Errorf("config.json: %q", got)
	}
	if got := ir.Get(data, "raw.yaml").String; got != `key: value\nother: x` {
		t.Errorf("raw.yaml: %q", got)
	}
	replicas := ir.Get(data, "replicas")
	if replicas.Type != ir.NumberType || replicas.Int64 == nil || *replicas.Int64 != 3 {
		t.Errorf("replicas: %+v", replicas)
	}
	negative := ir.Get(data, "negative")
	if negative.Int64 == nil || *negative.Int64 != -3 {
		t.Errorf("negative: %+v", negative)
	}
	ratio := ir.Get(data, "ratio")
	if ratio.Float64 == nil || *ratio.Float64 != 1.5 {
		t.Errorf("ratio: %+v", ratio)
	}
	if enabled := ir.Get(data, "enabled"); enabled.Type != ir.BoolType || !enabled.Bool {
		t.Errorf("enabled: %+v", enabled)
	}
	if nothing := ir.Get(data, "nothing"); nothing.Type != ir.NullType {
		t.Errorf("nothing: %+v", nothing)
	}
	list := ir.Get(data, "list")
	if list.Type != ir.ArrayType || len(list.Values) != 2 {
		t.Fatalf("list: %+v", list)
	}
	if got := list.Values[0].Path(); got != "$.data.list[0]" {
		t.Errorf("path %q", got)
	}
}

func TestParseDocuments(t *testing.T) {
	in := "a: 1\n---\nb: 2\n"
	docs, err := ParseDocuments([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs", len(docs))
	}
	if ir.Get(docs[1], "b") == nil {
		t.Errorf("second document missing b")
	}
	if _, err := Parse([]byte(in)); !errors.Is(err, ErrMultipleDoc) {
		t.Errorf("expected ErrMultipleDoc, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	docs, err := ParseDocuments(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs", len(docs))
	}
	node, err := Parse([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Errorf("empty input gave %s", node.Type)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("invalid: yaml: content: [unclosed"), ParseFilename("bad.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if pErr.File != "bad.yaml" {
		t.Errorf("file %q", pErr.File)
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("message lacks file name: %s", err)
	}
}

func TestFromAnyDuplicateKey(t *testing.T) {
	_, err := FromAny(toMapSlice("a", 1, "a", 2))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	// same text, different key types
	if _, err := FromAny(toMapSlice("1", "x", uint64(1), "y")); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestFromAnyKeyType(t *testing.T) {
	_, err := FromAny(toMapSlice([]any{1}, "x"))
	if !errors.Is(err, ErrKeyType) {
		t.Errorf("expected ErrKeyType, got %v", err)
	}
}

func TestFromAnyMap(t *testing.T) {
	node, err := FromAny(map[string]any{"b": uint64(1 << 63), "a": float32(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	if node.Fields[0].String != "a" {
		t.Errorf("keys not sorted")
	}
	if got := node.Values[1].Number; got != "9223372036854775808" {
		t.Errorf("big number %q", got)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error for unknown type")
	}
}
