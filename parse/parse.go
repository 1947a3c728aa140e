package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/rsp/debug"
	"github.com/signadot/rsp/ir"
)

// Parse parses d as a single YAML document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseDocuments(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return ir.Null(), nil
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w (found %d)", ErrMultipleDoc, len(docs))
	}
}

// ParseDocuments parses every document of a YAML stream, in order. Empty
// input gives no documents.
func ParseDocuments(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var res []*ir.Node
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &Error{File: pOpts.filename, Doc: i, Err: err}
		}
		node, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		if debug.Parse() {
			debug.Logf("parsed document %d:\n%s", i, node)
		}
		res = append(res, node)
	}
	return res, nil
}

// FromAny builds a node tree from values produced by the YAML decoder.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, xv := range x {
			val, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		return fromMapSlice(x)
	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			ms = append(ms, yaml.MapItem{Key: k, Value: x[k]})
		}
		return fromMapSlice(ms)
	default:
		return nil, fmt.Errorf("%w: unexpected decoded value %T", errInternal, v)
	}
}

func fromMapSlice(ms yaml.MapSlice) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, len(ms))
	seen := make(map[ir.Type]map[string]bool, 1)
	for i, item := range ms {
		key, err := FromAny(item.Key)
		if err != nil {
			return nil, err
		}
		if !key.Type.IsLeaf() {
			return nil, fmt.Errorf("%w: %s key", ErrKeyType, key.Type)
		}
		ks := ir.KeyString(key)
		if seen[key.Type] == nil {
			seen[key.Type] = map[string]bool{}
		}
		if seen[key.Type][ks] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, ks)
		}
		seen[key.Type][ks] = true
		val, err := FromAny(item.Value)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: key, Val: val}
	}
	return ir.FromKeyVals(kvs), nil
}
