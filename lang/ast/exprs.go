package ast

import "github.com/loxlang/rlox/lang/token"

type (
	// LiteralExpr is a literal value appearing directly in source: a number,
	// string, boolean or nil.
	LiteralExpr struct {
		Value token.Literal
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		Expression Expr
	}

	// UnaryExpr is a prefix unary operator applied to an expression: '-' or
	// '!'.
	UnaryExpr struct {
		Operator token.Token
		Right    Expr
	}

	// BinaryExpr is an infix binary operator applied to two expressions.
	// Arithmetic, comparison and equality operators only; see LogicalExpr for
	// 'and'/'or', which short-circuit.
	BinaryExpr struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// LogicalExpr is 'and' or 'or', kept distinct from BinaryExpr because it
	// short-circuits rather than always evaluating both operands.
	LogicalExpr struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// VariableExpr reads the value bound to an identifier.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr assigns Value to the variable Name, which must already be
	// declared in some enclosing scope.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// CallExpr invokes Callee with Args. Paren is the closing ')' token,
	// retained solely so call errors can report an accurate line.
	CallExpr struct {
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}
)

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}

func (n *LiteralExpr) Walk(Visitor) {}

func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Expression) }

func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }

func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *VariableExpr) Walk(Visitor) {}

func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }

func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
