// Package encode encodes IR nodes to YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("app.json"), Val: ir.FromString("{\n}")},
//	})
//	err := encode.Encode(node, os.Stdout)
//
// produces
//
//	name: alice
//	app.json: |
//	  {
//	  }
//
// # Formatting rules
//
// Object fields are written one per line, nested objects two spaces deeper.
// A string under a key ending in .yaml, .yml, .json or .toml which contains a
// newline is written as a block literal. Other strings are written inline,
// double quoted when they contain a newline or a double quote or have
// leading or trailing spaces. Numbers, booleans, null and arrays are
// rendered by github.com/goccy/go-yaml.
//
// Arrays are not given block literal treatment: strings inside them are
// rendered however the generic serializer chooses.
//
// # Related Packages
//
//   - github.com/signadot/rsp/ir - IR representation
//   - github.com/signadot/rsp/parse - Parse text to IR
package encode
