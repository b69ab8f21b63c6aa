// Command needleman-wunsch performs globally-optimal pairwise sequence
// alignment, enumerating every co-optimal alignment of the two input
// sequences.
package main

import (
	"os"

	"nwsw/internal/cliapp"
	"nwsw/internal/engine"
)

func main() {
	os.Exit(cliapp.Main("needleman-wunsch", engine.Global, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
