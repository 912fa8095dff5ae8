package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/langcore/internal/symtab"
)

var symtabLocal bool

var symtabCmd = &cobra.Command{
	Use:   "symtab <script>",
	Short: "Run a scripted scope/insert/lookup demonstration",
	Long: `Read a small scripted-command file and drive a symbol table with it,
one command per line:

  enter              enter a new scope
  leave              leave the current scope
  insert <key> <val> insert key=val into the current scope
  lookup <key>       look up key (outward-walking unless --local)
  delete <key>       delete key from the current scope

Blank lines and lines starting with ';' are ignored. Each lookup prints
its result to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runSymtab,
}

func init() {
	rootCmd.AddCommand(symtabCmd)
	symtabCmd.Flags().BoolVar(&symtabLocal, "local", false, "use current-scope-only lookup instead of the outward-walking default")
}

func runSymtab(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	tab := symtab.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if err := runSymtabLine(tab, line); err != nil {
			exitWithError("line %d: %s", lineNo, err)
		}
	}
	return scanner.Err()
}

func runSymtabLine(tab *symtab.Table, line string) error {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "enter":
		tab.EnterScope()
	case "leave":
		tab.LeaveScope()
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("insert requires <key> <value>")
		}
		tab.Insert(fields[1], symtab.KindVar, fields[2])
	case "lookup":
		if len(fields) != 2 {
			return fmt.Errorf("lookup requires <key>")
		}
		var v any
		var ok bool
		if symtabLocal {
			v, _, ok = tab.LookupLocal(fields[1])
		} else {
			v, _, ok = tab.Lookup(fields[1])
		}
		if ok {
			fmt.Printf("%s = %v\n", fields[1], v)
		} else {
			fmt.Printf("%s = <undefined>\n", fields[1])
		}
	case "delete":
		if len(fields) != 2 {
			return fmt.Errorf("delete requires <key>")
		}
		tab.Delete(fields[1])
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
