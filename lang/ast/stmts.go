package ast

import "github.com/loxlang/rlox/lang/token"

type (
	// ExpressionStmt evaluates Expression and discards the result.
	ExpressionStmt struct {
		Expression Expr
	}

	// PrintStmt evaluates Expression and writes its string form, followed by
	// a newline, to standard output.
	PrintStmt struct {
		Expression Expr
	}

	// VarStmt declares Name in the current scope. Initializer is nil when the
	// source omits it, leaving the binding declared-but-uninitialized.
	VarStmt struct {
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt executes Statements in a fresh scope enclosing the current
	// one.
	BlockStmt struct {
		Statements []Stmt
	}

	// IfStmt executes Then if Condition is truthy, else Else if present (Else
	// is nil otherwise).
	IfStmt struct {
		Condition Expr
		Then      Stmt
		Else      Stmt
	}

	// WhileStmt repeatedly executes Body while Condition is truthy.
	WhileStmt struct {
		Condition Expr
		Body      Stmt
	}

	// FunctionStmt declares a named function. Body is always a *BlockStmt;
	// the parser enforces this structurally.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   *BlockStmt
	}

	// ReturnStmt unwinds the enclosing call frame with Value. Value is a
	// LiteralExpr wrapping Nil when the source omits it.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr
	}
)

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}

func (n *ExpressionStmt) Walk(v Visitor) { Walk(v, n.Expression) }

func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expression) }

func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}

func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Statements {
		Walk(v, s)
	}
}

func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Body)
}

func (n *FunctionStmt) Walk(v Visitor) { Walk(v, n.Body) }

func (n *ReturnStmt) Walk(v Visitor) { Walk(v, n.Value) }
