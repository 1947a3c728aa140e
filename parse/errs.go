package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/rsp/ir"
)

var (
	errInternal     = errors.New("internal parse error")
	ErrMultipleDoc  = fmt.Errorf("%w: more than one document", ir.ErrParse)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate mapping key", ir.ErrParse)
	ErrKeyType      = fmt.Errorf("%w: unsupported mapping key", ir.ErrParse)
)

// Error is a syntax error reported by the YAML decoder.
type Error struct {
	File string
	Doc  int
	Err  error
}

func (e *Error) Unwrap() []error {
	return []error{ir.ErrParse, e.Err}
}

func (e *Error) Error() string {
	where := fmt.Sprintf("document %d", e.Doc)
	if e.File != "" {
		where = e.File + ": " + where
	}
	return fmt.Sprintf("%s: %s: %s", ir.ErrParse, where, yaml.FormatError(e.Err, false, true))
}
