// Package peel rewrites escaped payloads in ConfigMap documents into
// readable block text.
//
// A ConfigMap is a root mapping whose kind field is the string "ConfigMap".
// Within its data mapping, every string value under a key ending in .yaml,
// .yml, .json or .toml is unescaped: \n, \t, \r, \\ and \" become the
// characters they name. When the document is encoded again such values that
// now contain newlines are written as block literals:
//
//	data:
//	  config.json: |
//	    {"a":"b",
//	    "c":"d"}
//
// Content runs the whole pipeline on raw input: parse, Peel, encode.
package peel
