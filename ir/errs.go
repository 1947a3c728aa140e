package ir

import (
	"errors"
	"strings"
)

var (
	ErrIO            = errors.New("IO error")
	ErrParse         = errors.New("YAML parsing error")
	ErrInvalidFormat = errors.New("invalid file format")
	ErrNotFound      = errors.New("file not found")
	ErrProcessing    = errors.New("processing error")
)

// Error is a failure of one of the kinds above, optionally carrying the
// offending path, a diagnostic and the underlying cause.
type Error struct {
	Kind   error
	Path   string
	Detail string
	Err    error
}

func NewError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func WrapError(kind error, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) WithPath(p string) *Error {
	e.Path = p
	return e
}

func (e *Error) Error() string {
	parts := make([]string, 0, 4)
	if e.Kind != nil {
		parts = append(parts, e.Kind.Error())
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() []error {
	res := make([]error, 0, 2)
	if e.Kind != nil {
		res = append(res, e.Kind)
	}
	if e.Err != nil {
		res = append(res, e.Err)
	}
	return res
}
