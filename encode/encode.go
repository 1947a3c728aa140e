package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/rsp/format"
	"github.com/signadot/rsp/ir"
	"github.com/signadot/rsp/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node as YAML text into w. String values under keys with a
// recognized payload suffix (see format.FromKey) which contain a newline are
// written in block literal style. The text is fully rendered before anything
// is written to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, buf, es); err != nil {
		return ir.WrapError(ir.ErrProcessing, err)
	}
	_, err := w.Write(buf.Bytes())
	if err != nil {
		return ir.WrapError(ir.ErrIO, err)
	}
	return nil
}

// Helper functions for writing

func writeIndent(w io.Writer, es *EncState, depth int) error {
	return writeString(w, strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil || v == "" {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}")+"\n")
		}
		return encodeObject(node, w, es)
	case ir.StringType:
		if err := encodeString(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case ir.ArrayType, ir.NumberType, ir.BoolType, ir.NullType:
		v, err := genericString(node)
		if err != nil {
			return err
		}
		return writeString(w, applyValueColor(es, node.Type, v)+"\n")
	default:
		panic("type")
	}
}

// encodeObject writes each field of node on its own line at es.depth.
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object at %s has %d fields and %d values",
			ErrEncoding, node.Path(), len(node.Fields), len(node.Values))
	}
	for i, yField := range node.Fields {
		if err := writeIndent(w, es, es.depth); err != nil {
			return err
		}
		if err := writeField(w, yField, es); err != nil {
			return err
		}
		if err := encodeObjectValue(yField, node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeObjectValue(yField, yVal *ir.Node, w io.Writer, es *EncState) error {
	switch yVal.Type {
	case ir.StringType:
		if doBlockLit(yField, yVal) {
			return encodeBlockLit(yVal, w, es)
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encodeString(yVal, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case ir.ObjectType:
		if len(yVal.Fields) == 0 {
			return writeString(w, " "+applyColor(es, ir.ObjectType, SepColor, "{}")+"\n")
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		return encodeObject(yVal, w, es)
	case ir.ArrayType, ir.NumberType, ir.BoolType, ir.NullType:
		return encodeGenericValue(yVal, w, es)
	default:
		panic("type")
	}
}

// encodeGenericValue writes a value rendered by the generic serializer:
// inline when it fits on one line, otherwise on the following lines one
// level deeper.
func encodeGenericValue(yVal *ir.Node, w io.Writer, es *EncState) error {
	v, err := genericString(yVal)
	if err != nil {
		return err
	}
	if !strings.Contains(v, "\n") {
		return writeString(w, " "+applyValueColor(es, yVal.Type, v)+"\n")
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	for _, ln := range strings.Split(v, "\n") {
		if err := writeIndent(w, es, es.depth+1); err != nil {
			return err
		}
		if err := writeString(w, applyValueColor(es, yVal.Type, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.QuoteIfNeeded(node.String)
	attr := LiteralSingleColor
	if v != node.String {
		attr = ValueColor
	}
	return writeString(w, applyColor(es, ir.StringType, attr, v))
}

func encodeBlockLit(node *ir.Node, w io.Writer, es *EncState) error {
	lines := blockLines(node.String)
	hdr := "|"
	if leadingSpace(lines) {
		hdr += strconv.Itoa(es.indent)
	}
	if err := writeString(w, " "+applyColor(es, ir.StringType, SepColor, hdr)+"\n"); err != nil {
		return err
	}
	for _, ln := range lines {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeIndent(w, es, es.depth+1); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.StringType, LiteralMultiColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// blockLines splits v into lines: a final newline does not start another
// line and a carriage return ending a line is dropped.
func blockLines(v string) []string {
	v = strings.TrimSuffix(v, "\n")
	lines := strings.Split(v, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// leadingSpace reports whether the first non-empty line starts with a space,
// in which case the block needs an explicit indentation indicator.
func leadingSpace(lines []string) bool {
	for _, ln := range lines {
		if ln != "" {
			return ln[0] == ' '
		}
	}
	return false
}

// Field writing

func writeField(w io.Writer, yField *ir.Node, es *EncState) error {
	f := ir.KeyString(yField)
	if yField.Type == ir.StringType && (f == "" || token.NeedsQuote(f)) {
		f = token.Quote(f)
	}
	sep := ":"
	if es.Color != nil {
		f = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

func doBlockLit(yField, yVal *ir.Node) bool {
	if yField.Type != ir.StringType || yVal.Type != ir.StringType {
		return false
	}
	if _, ok := format.FromKey(yField.String); !ok {
		return false
	}
	return strings.Contains(yVal.String, "\n")
}
