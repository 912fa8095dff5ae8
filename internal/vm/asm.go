package vm

import (
	"fmt"
	"strconv"
	"strings"
)

var mnemonics = map[string]Opcode{
	"NOOP": NOOP, "MOVE": MOVE, "XCHG": XCHG, "PUSH": PUSH, "POP": POP,
	"ADD": ADD, "SUB": SUB, "MUL": MUL, "DIV": DIV, "NEG": NEG,
	"AND": AND, "OR": OR, "NOT": NOT,
	"VAR": VAR, "LOAD": LOAD, "STOR": STOR, "CCAT": CCAT, "CMP": CMP, "JMP": JMP,
}

var registers = map[string]Reg{"R0": R0, "R1": R1, "R2": R2}

// Assemble parses the minimal textual program format `OPCODE
// dest[,src|imm]` (one instruction per line, blank lines and lines
// starting with ';' ignored) into a Program. It is the "code generator
// (external)" input boundary spec.md §2 draws, made concrete enough to
// drive the VM from the command line without a parser/compiler.
func Assemble(source string) (*Program, error) {
	p := NewProgram()
	for lineNo, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		instr, err := assembleLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		p.Append(instr)
	}
	return p, nil
}

func assembleLine(line string) (Instruction, error) {
	fields := strings.SplitN(line, " ", 2)
	mnemonic := strings.ToUpper(fields[0])
	op, ok := mnemonics[mnemonic]
	if !ok {
		return Instruction{}, fmt.Errorf("unknown mnemonic %q", fields[0])
	}
	if len(fields) == 1 {
		return Instruction{Op: op}, nil
	}

	operands := strings.Split(strings.TrimSpace(fields[1]), ",")
	dest, err := parseReg(operands[0])
	if err != nil {
		return Instruction{}, err
	}
	instr := Instruction{Op: op, Dest: dest}
	if len(operands) < 2 {
		return instr, nil
	}

	second := strings.TrimSpace(operands[1])
	if op == MOVE {
		imm, err := strconv.Atoi(second)
		if err != nil {
			return Instruction{}, fmt.Errorf("immediate %q: %w", second, err)
		}
		instr.Imm = imm
		return instr, nil
	}
	src, err := parseReg(second)
	if err != nil {
		return Instruction{}, err
	}
	instr.Src = src
	return instr, nil
}

func parseReg(s string) (Reg, error) {
	r, ok := registers[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown register %q", s)
	}
	return r, nil
}
