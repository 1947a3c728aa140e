package parse

import "github.com/goccy/go-yaml"

func toMapSlice(kvs ...any) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res = append(res, yaml.MapItem{Key: kvs[i], Value: kvs[i+1]})
	}
	return res
}
