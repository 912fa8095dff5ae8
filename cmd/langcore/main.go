// Command langcore is the CLI front door for the scanner, symbol table,
// and VM, wired up the way dwscript wires its own core.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/langcore/cmd/langcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
