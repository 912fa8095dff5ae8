package ast

import (
	"strings"

	"github.com/cwbudde/langcore/internal/token"
)

// Print is a read-only visitor: it never mutates the tree, maps operator
// tokens back to their source spellings, and traverses list nodes
// tail-first so the rendered order matches source order.
func Print(p *Program) string {
	var sb strings.Builder
	printStmtList(&sb, p.Stmts)
	return sb.String()
}

func printStmtList(sb *strings.Builder, l *StmtList) {
	if l == nil {
		return
	}
	printStmtList(sb, l.Tail)
	printStmt(sb, l.Head)
}

func printStmt(sb *strings.Builder, s *Stmt) {
	if s == nil {
		return
	}
	switch s.Kind {
	case StmtComplex:
		printComplexStmt(sb, s.Complex)
	case StmtSimple:
		printSimpleStmt(sb, s.Simple)
		sb.WriteString(".\n")
	}
}

func printComplexStmt(sb *strings.Builder, c *ComplexStmt) {
	if c == nil {
		return
	}
	switch c.Kind {
	case ComplexStmtCompound:
		printCompoundStmt(sb, c.Compound)
	case ComplexStmtFuncDef:
		printFuncDef(sb, c.FuncDef)
	}
}

func printCompoundStmt(sb *strings.Builder, c *CompoundStmt) {
	if c == nil {
		return
	}
	switch c.Kind {
	case CompoundStmtIf:
		printIfStmt(sb, c.If)
	case CompoundStmtWhile:
		printWhileStmt(sb, c.While)
	}
}

func printIfStmt(sb *strings.Builder, i *IfStmt) {
	if i == nil {
		return
	}
	sb.WriteString("if ")
	printExpr(sb, i.Cond)
	sb.WriteString(" ")
	printCompoundBody(sb, i.Body)
	if i.Else != nil {
		sb.WriteString(" else ")
		printElseStmt(sb, i.Else)
	}
	sb.WriteString("\n")
}

func printElseStmt(sb *strings.Builder, e *ElseStmt) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ElseBody:
		printCompoundBody(sb, e.Body)
	case ElseIf:
		printIfStmt(sb, e.If)
	}
}

func printWhileStmt(sb *strings.Builder, w *WhileStmt) {
	if w == nil {
		return
	}
	sb.WriteString("while ")
	printExpr(sb, w.Cond)
	sb.WriteString(" ")
	printCompoundBody(sb, w.Body)
	sb.WriteString("\n")
}

func printCompoundBody(sb *strings.Builder, b *CompoundBody) {
	sb.WriteString("{\n")
	if b != nil {
		printCompoundBodyList(sb, b.List)
	}
	sb.WriteString("}")
}

func printCompoundBodyList(sb *strings.Builder, l *CompoundBodyList) {
	if l == nil {
		return
	}
	printCompoundBodyList(sb, l.Tail)
	printStmt(sb, l.Head)
}

func printFuncDef(sb *strings.Builder, f *FuncDef) {
	if f == nil {
		return
	}
	sb.WriteString("func ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	printFuncParamList(sb, f.Params)
	sb.WriteString(") ")
	printCompoundBody(sb, f.Body)
	sb.WriteString("\n")
}

func printFuncParamList(sb *strings.Builder, l *FuncParamList) {
	if l == nil {
		return
	}
	if l.Tail != nil {
		printFuncParamList(sb, l.Tail)
		sb.WriteString(", ")
	}
	sb.WriteString(l.Head)
}

func printSimpleStmt(sb *strings.Builder, s *SimpleStmt) {
	if s == nil {
		return
	}
	switch s.Kind {
	case SimpleStmtAssign:
		printAssignStmt(sb, s.Assign)
	case SimpleStmtReturn:
		sb.WriteString("return ")
		printExpr(sb, s.Return.Value)
	case SimpleStmtVar:
		sb.WriteString("var ")
		printVarStmtList(sb, s.Var.List)
	case SimpleStmtExpr:
		printExpr(sb, s.Expr)
	}
}

func printAssignStmt(sb *strings.Builder, a *AssignStmt) {
	if a == nil {
		return
	}
	sb.WriteString(a.Name)
	sb.WriteString(" ")
	sb.WriteString(assignOpSpelling(a.Op))
	sb.WriteString(" ")
	printExpr(sb, a.Rhs)
}

func assignOpSpelling(op token.Kind) string {
	switch op {
	case token.ASSIGN:
		return ":="
	case token.ADD_ASSIGN:
		return "+:"
	case token.SUBTRACT_ASSIGN:
		return "-:"
	case token.MULTIPLY_ASSIGN:
		return "*:"
	case token.DIVIDE_ASSIGN:
		return "/="
	case token.MODULO_ASSIGN:
		return "%:"
	default:
		return "?"
	}
}

func printVarStmtList(sb *strings.Builder, l *VarStmtList) {
	if l == nil {
		return
	}
	if l.Tail != nil {
		printVarStmtList(sb, l.Tail)
		sb.WriteString(", ")
	}
	switch l.Kind {
	case VarItemIdentifier:
		sb.WriteString(l.Ident)
	case VarItemAssignment:
		printAssignStmt(sb, l.Assign)
	}
}

func printExpr(sb *strings.Builder, e *Expr) {
	if e == nil {
		return
	}
	if e.Tail != nil {
		printExpr(sb, e.Tail)
		sb.WriteString(opSpelling(e.Op))
	}
	printNotExpr(sb, e.Head)
}

func printNotExpr(sb *strings.Builder, n *NotExpr) {
	if n == nil {
		return
	}
	if n.Negated {
		sb.WriteString("~")
	}
	printCompareExpr(sb, n.Inner)
}

func printCompareExpr(sb *strings.Builder, c *CompareExpr) {
	if c == nil {
		return
	}
	if c.Tail != nil {
		printCompareExpr(sb, c.Tail)
		sb.WriteString(opSpelling(c.Op))
	}
	printMinorExpr(sb, c.Head)
}

func printMinorExpr(sb *strings.Builder, m *MinorExpr) {
	if m == nil {
		return
	}
	if m.Tail != nil {
		printMinorExpr(sb, m.Tail)
		sb.WriteString(opSpelling(m.Op))
	}
	printTerm(sb, m.Head)
}

func printTerm(sb *strings.Builder, t *Term) {
	if t == nil {
		return
	}
	if t.Tail != nil {
		printTerm(sb, t.Tail)
		sb.WriteString(opSpelling(t.Op))
	}
	printFactor(sb, t.Head)
}

func printFactor(sb *strings.Builder, f *Factor) {
	if f == nil {
		return
	}
	switch f.Kind {
	case FactorAtomKind:
		printAtom(sb, f.Atom)
	case FactorFuncCallKind:
		printFuncCall(sb, f.Call)
	case FactorParenKind:
		sb.WriteString("(")
		printExpr(sb, f.Paren.Inner)
		sb.WriteString(")")
	case FactorSignedKind:
		sb.WriteString(opSpelling(f.Signed.Op))
		printFactor(sb, f.Signed.Inner)
	}
}

func printAtom(sb *strings.Builder, a *Atom) {
	if a == nil {
		return
	}
	switch a.Kind {
	case AtomIdentifier:
		sb.WriteString(a.Ident)
	case AtomNumber:
		sb.WriteString(a.Number)
	case AtomString:
		sb.WriteString("\"")
		sb.WriteString(a.Str)
		sb.WriteString("\"")
	case AtomBoolean:
		if a.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	}
}

func printFuncCall(sb *strings.Builder, c *FuncCall) {
	if c == nil {
		return
	}
	sb.WriteString(c.Name)
	sb.WriteString("(")
	printExprList(sb, c.Args)
	sb.WriteString(")")
}

func printExprList(sb *strings.Builder, l *ExprList) {
	if l == nil {
		return
	}
	if l.Tail != nil {
		printExprList(sb, l.Tail)
		sb.WriteString(", ")
	}
	printExpr(sb, l.Head)
}

func opSpelling(op token.Kind) string {
	switch op {
	case token.AND:
		return " && "
	case token.OR:
		return " || "
	case token.EQUAL:
		return " = "
	case token.NOT_EQUAL:
		return " ~= "
	case token.LESS:
		return " < "
	case token.LESS_EQUAL:
		return " <= "
	case token.GREATER:
		return " > "
	case token.GREATER_EQUAL:
		return " >= "
	case token.IS:
		return " is "
	case token.ADD:
		return " + "
	case token.SUBTRACT:
		return " - "
	case token.MULTIPLY:
		return " * "
	case token.DIVIDE:
		return " / "
	case token.MODULO:
		return " % "
	default:
		return " ? "
	}
}
