package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/rsp/ir"
)

// genericString renders node with the generic YAML serializer, trimmed of
// trailing white space.
func genericString(node *ir.Node) (string, error) {
	v, err := ToAny(node)
	if err != nil {
		return "", err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEncoding, node.Path(), err)
	}
	return strings.TrimRight(string(d), " \t\r\n"), nil
}

// ToAny converts node to plain Go values: objects become yaml.MapSlice so
// key order is kept, arrays []any, and leaves string, bool, int64, uint64,
// float64 or nil.
func ToAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		return numberAny(node)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, yv := range node.Values {
			v, err := ToAny(yv)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, yf := range node.Fields {
			k, err := ToAny(yf)
			if err != nil {
				return nil, err
			}
			v, err := ToAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: k, Value: v}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %d at %s", ErrEncoding, node.Type, node.Path())
	}
}

func numberAny(node *ir.Node) (any, error) {
	switch {
	case node.Int64 != nil:
		return *node.Int64, nil
	case node.Float64 != nil:
		return *node.Float64, nil
	}
	if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
		return u, nil
	}
	if f, err := strconv.ParseFloat(node.Number, 64); err == nil && !math.IsInf(f, 0) {
		return f, nil
	}
	return nil, fmt.Errorf("%w: bad number %q at %s", ErrEncoding, node.Number, node.Path())
}
