package peel

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/signadot/rsp/debug"
	"github.com/signadot/rsp/encode"
	"github.com/signadot/rsp/ir"
	"github.com/signadot/rsp/parse"
)

const docSeparator = "---\n"

type peelOpts struct {
	filename string
	encOpts  []encode.EncodeOption
}

type Option func(*peelOpts)

// Filename names the input in error messages.
func Filename(name string) Option {
	return func(o *peelOpts) { o.filename = name }
}

// EncodeOptions are passed to encode.Encode for every document.
func EncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *peelOpts) { o.encOpts = append(o.encOpts, opts...) }
}

type Result struct {
	// Output is the rendered text of all documents.
	Output []byte
	// Docs is the number of documents processed.
	Docs int
	// Peeled is the number of fields rewritten over all documents.
	Peeled int
}

// Content parses in, peels each document and renders the result. Documents
// of a multi-document stream are rendered separated by "---". Every
// document must have a mapping at its root.
func Content(in []byte, opts ...Option) (*Result, error) {
	pOpts := &peelOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	var parseOpts []parse.ParseOption
	if pOpts.filename != "" {
		parseOpts = append(parseOpts, parse.ParseFilename(pOpts.filename))
	}
	docs, err := parse.ParseDocuments(in, parseOpts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ir.NewError(ir.ErrInvalidFormat, "expected mapping at root").WithPath(pOpts.filename)
	}
	res := &Result{Docs: len(docs)}
	buf := bytes.NewBuffer(nil)
	for i, doc := range docs {
		n, err := Peel(doc)
		if err != nil {
			if len(docs) > 1 {
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			return nil, err
		}
		res.Peeled += n
		if i > 0 {
			buf.WriteString(docSeparator)
		}
		start := buf.Len()
		if err := encode.Encode(doc, buf, pOpts.encOpts...); err != nil {
			return nil, err
		}
		if debug.Encode() {
			debug.Logf("encoded document %d:\n%s", i, buf.Bytes()[start:])
		}
	}
	if debug.Peel() {
		debug.Logf("peeled %d field(s) in %d document(s)\n", res.Peeled, res.Docs)
	}
	res.Output = buf.Bytes()
	return res, nil
}

// ReadFile reads the named input file.
func ReadFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, ir.WrapError(ir.ErrNotFound, err).WithPath(path)
	}
	if !utf8.Valid(d) {
		return nil, ir.NewError(ir.ErrProcessing, "invalid UTF-8").WithPath(path)
	}
	return d, nil
}

// ReadInput reads all of r, typically standard input.
func ReadInput(r io.Reader) ([]byte, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, &ir.Error{Kind: ir.ErrProcessing, Detail: "failed to read from stdin", Err: err}
	}
	if !utf8.Valid(d) {
		return nil, ir.NewError(ir.ErrProcessing, "failed to read from stdin: invalid UTF-8")
	}
	return d, nil
}

// WriteFile writes out to path, creating or truncating it.
func WriteFile(path string, out []byte) error {
	if err := os.WriteFile(path, out, 0644); err != nil {
		return ir.WrapError(ir.ErrIO, err).WithPath(path)
	}
	return nil
}
