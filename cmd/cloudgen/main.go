// Command cloudgen renders procedurally generated cloud scenes.
//
// Usage:
//
//	cloudgen [generate] [--theme blue-sky] [--seed 0] [--format svg|png] [-o file]
//	cloudgen themes
//	cloudgen all --dir out
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cloudgen:", err)
		os.Exit(1)
	}
}
