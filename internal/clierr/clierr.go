// Package clierr provides the shared exit-on-error convention used by
// every cmd/ binary: structured errors from library packages surface as
// a single stderr line and exit code 1 at the CLI boundary.
package clierr

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Fatal prints a red-highlighted error message to stderr and exits 1.
func Fatal(a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString(fmt.Sprint(a...)))
	os.Exit(1)
}

// FatalIf calls Fatal with msg and err if err is non-nil.
func FatalIf(err error, msg string) {
	if err != nil {
		Fatal(msg, ": ", err)
	}
}
