// Package format identifies the payload format of a configuration data key
// from its file-name suffix.
//
// # Usage
//
//	f, ok := format.FromKey("app.json") // JSONFormat, true
//	_, ok = format.FromKey("app.yaml.backup") // false
//
// Only the suffixes .yaml, .yml, .json and .toml are recognized. Matching is
// exact and case-sensitive.
package format
