package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Fire   bool
	Buffer bool
	Mirror bool
	Eval   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Fire = boolEnv("VT_DEBUG_FIRE")
	d.Buffer = boolEnv("VT_DEBUG_BUFFER")
	d.Mirror = boolEnv("VT_DEBUG_MIRROR")
	d.Eval = boolEnv("VT_DEBUG_EVAL")
	d.Patch = boolEnv("VT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Fire() bool {
	return d.Fire
}
func Buffer() bool {
	return d.Buffer
}
func Mirror() bool {
	return d.Mirror
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
