package parse

type parseOpts struct {
	filename string
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
