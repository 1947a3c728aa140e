package ir

import (
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber holds a number whose text fits neither int64 nor float64.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		field := KeyString(kv.Key)
		kv.Key.ParentField = field
		kv.Val.ParentField = field
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// KeyString gives the textual form of a mapping key as used in ParentField.
func KeyString(key *Node) string {
	switch key.Type {
	case StringType:
		return key.String
	case NumberType:
		switch {
		case key.Int64 != nil:
			return strconv.FormatInt(*key.Int64, 10)
		case key.Float64 != nil:
			return strconv.FormatFloat(*key.Float64, 'g', -1, 64)
		default:
			return key.Number
		}
	case BoolType:
		return strconv.FormatBool(key.Bool)
	case NullType:
		return "null"
	default:
		return ""
	}
}

// Get returns the value under the string key field, or nil.
func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Index returns the position of the string key field in an object, or -1.
func (y *Node) Index(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i, f := range y.Fields {
		if f.Type == StringType && f.String == field {
			return i
		}
	}
	return -1
}
