// Package debug holds env-var controlled debug toggles for the
// analysis pipeline. Set TTAB_DEBUG_COLLECT, TTAB_DEBUG_EVAL or
// TTAB_DEBUG_TABLE to a truthy value to enable the corresponding
// trace on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Collect bool
	Eval    bool
	Table   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Collect = boolEnv("TTAB_DEBUG_COLLECT")
	d.Eval = boolEnv("TTAB_DEBUG_EVAL")
	d.Table = boolEnv("TTAB_DEBUG_TABLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Collect() bool {
	return d.Collect
}
func Eval() bool {
	return d.Eval
}
func Table() bool {
	return d.Table
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
