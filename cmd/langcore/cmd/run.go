package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/langcore/internal/vm"
)

var runDisasm bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Assemble and execute a textual VM program",
	Long: `Load a program in the minimal textual format (one instruction per
line, "OPCODE dest[,src|imm]"), execute it, and print the final register
and stack-pointer state.

Example:
  langcore run program.vm
  langcore run --disasm program.vm`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runDisasm, "disasm", false, "print the disassembly instead of executing")
}

func runRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	p, err := vm.Assemble(string(content))
	if err != nil {
		return fmt.Errorf("assembling %s: %w", args[0], err)
	}

	if runDisasm {
		fmt.Print(vm.Disassemble(p))
		return nil
	}

	m := vm.New()
	if err := m.Run(p); err != nil {
		return err
	}

	fmt.Printf("R0=%d R1=%d R2=%d sp=%d\n", m.Reg(vm.R0), m.Reg(vm.R1), m.Reg(vm.R2), m.SP())
	return nil
}
