// Package ir provides the in-memory representation of a parsed document.
//
// # Node Structure
//
// A Node is a recursive tagged union: the Type field selects which of the
// other fields hold the value.
//
//   - NullType: null value
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number as a textual fallback
//   - StringType: String
//   - ObjectType: Fields[i] is the key for Values[i]
//   - ArrayType: Values
//
// Objects keep keys in document order and keys are unique. Keys are usually
// string nodes, but YAML allows other scalars as keys and these keep their
// own type.
//
// Each child records its Parent, ParentIndex and, under an object,
// ParentField, so Path can report where a node lives:
//
//	node.Path() // e.g. $.data.'config.json'
//
// # Errors
//
// The package also defines the error kinds shared by parsing, peeling and
// encoding. Use errors.Is with ErrIO, ErrParse, ErrInvalidFormat,
// ErrNotFound or ErrProcessing to classify a failure.
//
// Node structures are not safe for concurrent use.
package ir
