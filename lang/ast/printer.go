package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints a statement list as an indented tree, one node per
// line, for the CLI's --parse debug flag and for golden-file tests that
// exercise parse determinism.
type Printer struct {
	Output io.Writer
}

// Print writes one line per AST node, indented by nesting depth.
func (p *Printer) Print(stmts []Stmt) error {
	pp := &printer{w: p.Output}
	for _, s := range stmts {
		Walk(pp, s)
		if pp.err != nil {
			return pp.err
		}
	}
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.depth--
		return nil
	}
	if p.err != nil {
		return nil
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(". ", p.depth), describe(n))
	p.depth++
	return p
}

func describe(n Node) string {
	switch n := n.(type) {
	case *LiteralExpr:
		return "literal " + n.Value.String()
	case *GroupingExpr:
		return "group"
	case *UnaryExpr:
		return "unary " + n.Operator.Lexeme
	case *BinaryExpr:
		return "binary " + n.Operator.Lexeme
	case *LogicalExpr:
		return "logical " + n.Operator.Lexeme
	case *VariableExpr:
		return "variable " + n.Name.Lexeme
	case *AssignExpr:
		return "assign " + n.Name.Lexeme
	case *CallExpr:
		return fmt.Sprintf("call (%d args)", len(n.Args))
	case *ExpressionStmt:
		return "expr-stmt"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "var " + n.Name.Lexeme
	case *BlockStmt:
		return "block"
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *FunctionStmt:
		return "fun " + n.Name.Lexeme
	case *ReturnStmt:
		return "return"
	default:
		return fmt.Sprintf("%T", n)
	}
}
