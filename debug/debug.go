package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Peel   bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RSP_DEBUG_PARSE")
	d.Peel = boolEnv("RSP_DEBUG_PEEL")
	d.Encode = boolEnv("RSP_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Peel() bool {
	return d.Peel
}
func Encode() bool {
	return d.Encode
}
