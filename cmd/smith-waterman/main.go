// Command smith-waterman performs locally-optimal pairwise sequence
// alignment, enumerating every co-optimal alignment rooted at any cell
// sharing the table's maximum score.
package main

import (
	"os"

	"nwsw/internal/cliapp"
	"nwsw/internal/engine"
)

func main() {
	os.Exit(cliapp.Main("smith-waterman", engine.Local, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
