package vm

import (
	"fmt"
	"strings"
)

// Disassemble renders a program as one instruction per line, in the
// shape the `langcore run --disasm` CLI flag and snapshot tests
// consume. It accepts the reserved opcodes even though Run rejects them,
// so a program built for a future code generator still prints.
func Disassemble(p *Program) string {
	var sb strings.Builder
	for ip := 0; ip < p.Len(); ip++ {
		instr := p.At(ip)
		fmt.Fprintf(&sb, "%04d  %s\n", ip, formatInstruction(instr))
	}
	return sb.String()
}

func formatInstruction(instr Instruction) string {
	switch instr.Op {
	case NOOP:
		return instr.Op.String()
	case MOVE:
		return fmt.Sprintf("%s %s,%d", instr.Op, instr.Dest, instr.Imm)
	case XCHG, ADD, SUB, MUL, DIV, AND, OR:
		return fmt.Sprintf("%s %s,%s", instr.Op, instr.Dest, instr.Src)
	case PUSH, POP, NEG, NOT:
		return fmt.Sprintf("%s %s", instr.Op, instr.Dest)
	default:
		return fmt.Sprintf("%s %s,%s", instr.Op, instr.Dest, instr.Src)
	}
}
