// Package parse parses YAML text into ir.Node trees.
//
// Decoding is done by github.com/goccy/go-yaml with ordered maps, so object
// keys keep their document order. Duplicate keys are rejected. Comments,
// anchors, tags and styles are not kept: aliases are resolved and the tree
// holds values only.
//
//	node, err := parse.Parse(data, parse.ParseFilename("cm.yaml"))
//	docs, err := parse.ParseDocuments(data) // "---" separated stream
package parse
