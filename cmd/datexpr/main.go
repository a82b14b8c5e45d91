// Command datexpr completes partial date expressions to the first or the
// last instant of the period they denote.
//
//	$ datexpr range 2012-02
//	2012-02-01 00:00:00.000	2012-02-29 23:59:59.999
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newCLI(os.Stdout, os.Stderr).Execute(); err != nil {
		// rejected arguments have already been reported one by one
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
