package peel

import (
	"github.com/signadot/rsp/debug"
	"github.com/signadot/rsp/format"
	"github.com/signadot/rsp/ir"
	"github.com/signadot/rsp/token"
)

const (
	KindField     = "kind"
	DataField     = "data"
	ConfigMapKind = "ConfigMap"
)

// Eligible reports whether values under key are peeled: key must end in
// .yaml, .yml, .json or .toml.
func Eligible(key string) bool {
	_, ok := format.FromKey(key)
	return ok
}

// Peel unescapes, in place, the eligible string fields of the data mapping of
// a ConfigMap document and returns how many fields it rewrote. Documents of
// any other kind, or without a data mapping, are left alone. Only the root
// mapping is considered.
func Peel(doc *ir.Node) (int, error) {
	if doc.Type != ir.ObjectType {
		return 0, ir.NewError(ir.ErrInvalidFormat, "expected mapping at root")
	}
	kind := ir.Get(doc, KindField)
	if kind == nil || kind.Type != ir.StringType || kind.String != ConfigMapKind {
		return 0, nil
	}
	data := ir.Get(doc, DataField)
	if data == nil || data.Type != ir.ObjectType {
		return 0, nil
	}
	n := 0
	for i, yField := range data.Fields {
		yVal := data.Values[i]
		if yField.Type != ir.StringType || yVal.Type != ir.StringType {
			continue
		}
		f, ok := format.FromKey(yField.String)
		if !ok {
			continue
		}
		if debug.Peel() {
			debug.Logf("peel %s as %s\n", yVal.Path(), f)
		}
		yVal.String = token.Unescape(yVal.String)
		n++
	}
	return n, nil
}
