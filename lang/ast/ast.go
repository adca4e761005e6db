// Package ast defines the abstract syntax tree produced by the parser:
// expression and statement nodes, a Visitor/Walk pair for generic traversal,
// and a Printer for debugging.
package ast

// Node is any node in the tree. Every Node can be walked to visit its
// children, in source order.
type Node interface {
	Walk(v Visitor)
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}
