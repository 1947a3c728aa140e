package format

import (
	"fmt"
	"strings"
)

// Format is the payload format named by an eligible key's suffix.
type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	TOMLFormat
)

var suffixes = []struct {
	suffix string
	format Format
}{
	{".yaml", YAMLFormat},
	{".yml", YAMLFormat},
	{".json", JSONFormat},
	{".toml", TOMLFormat},
}

// FromKey reports whether key ends with one of the recognized payload
// suffixes and, if so, which format it names. Matching is exact and
// case-sensitive.
func FromKey(key string) (Format, bool) {
	for _, s := range suffixes {
		if strings.HasSuffix(key, s.suffix) {
			return s.format, true
		}
	}
	return 0, false
}

// Suffixes returns the recognized key suffixes in matching order.
func Suffixes() []string {
	res := make([]string, len(suffixes))
	for i, s := range suffixes {
		res[i] = s.suffix
	}
	return res
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}
