package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
	Eval   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("SCL_DEBUG_TOKENS")
	d.Parse = boolEnv("SCL_DEBUG_PARSE")
	d.Encode = boolEnv("SCL_DEBUG_ENCODE")
	d.Eval = boolEnv("SCL_DEBUG_EVAL")
	d.Patch = boolEnv("SCL_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
