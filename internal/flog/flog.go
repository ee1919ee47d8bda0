// Package flog is a minimal env-var gated debug log, in the style of the
// teacher's ntru.dbg: silent unless FOLD_DEBUG=1, writing straight to
// stderr with no buffering or level hierarchy.
package flog

import (
	"fmt"
	"os"
)

var debugOn = os.Getenv("FOLD_DEBUG") == "1"

// Debugf writes a formatted line to stderr when FOLD_DEBUG=1, and is a
// no-op otherwise.
func Debugf(f string, a ...any) {
	if debugOn {
		fmt.Fprintf(os.Stderr, f+"\n", a...)
	}
}
