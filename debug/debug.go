package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match     bool
	Matches   bool
	Parse     bool
	Fn        bool
	Serialize bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("SQUIGGLY_DEBUG_MATCH")
	d.Matches = boolEnv("SQUIGGLY_DEBUG_MATCHES")
	d.Parse = boolEnv("SQUIGGLY_DEBUG_PARSE")
	d.Fn = boolEnv("SQUIGGLY_DEBUG_FN")
	d.Serialize = boolEnv("SQUIGGLY_DEBUG_SERIALIZE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Matches() bool {
	return d.Matches
}
func Parse() bool {
	return d.Parse
}
func Fn() bool {
	return d.Fn
}
func Serialize() bool {
	return d.Serialize
}
