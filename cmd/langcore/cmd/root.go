package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "langcore",
	Short: "Scanner, AST, symbol table, and VM playground",
	Long: `langcore exposes the core of a small imperative language:

  - a Unicode-aware lexical scanner
  - a tagged-union abstract syntax tree with explicit ownership
  - a lexically-scoped chained-hash-map symbol table
  - a register/stack virtual machine

The grammar driver and code generator are external collaborators; this
binary wires the core pieces together for inspection and experimentation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
