package ast_test

import (
	"strings"
	"testing"

	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, 1)
}

func TestWalkVisitsChildrenInOrder(t *testing.T) {
	var seen []string
	expr := &ast.BinaryExpr{
		Left:     &ast.LiteralExpr{Value: token.NumberLiteral(1)},
		Operator: token.New(token.Plus, "+", 1),
		Right:    &ast.LiteralExpr{Value: token.NumberLiteral(2)},
	}
	ast.Walk(ast.VisitorFunc(func(n ast.Node) {
		switch n.(type) {
		case *ast.BinaryExpr:
			seen = append(seen, "binary")
		case *ast.LiteralExpr:
			seen = append(seen, "literal")
		}
	}), expr)

	assert.Equal(t, []string{"binary", "literal", "literal"}, seen)
}

func TestWalkNilNodeIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		ast.Walk(ast.VisitorFunc(func(ast.Node) { t.Fatal("should not be called") }), nil)
	})
}

func TestWalkSkipsChildrenWhenVisitorReturnsNil(t *testing.T) {
	var count int
	v := visitFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitExit {
			return nil
		}
		count++
		return nil // skip children
	})
	stmt := &ast.BlockStmt{Statements: []ast.Stmt{
		&ast.ExpressionStmt{Expression: &ast.LiteralExpr{Value: token.NilLiteral}},
	}}
	ast.Walk(v, stmt)
	assert.Equal(t, 1, count)
}

type visitFunc func(n ast.Node, dir ast.VisitDirection) ast.Visitor

func (f visitFunc) Visit(n ast.Node, dir ast.VisitDirection) ast.Visitor { return f(n, dir) }

func TestPrinterIndentsNestedNodes(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.VarStmt{
			Name: name("x"),
			Initializer: &ast.BinaryExpr{
				Left:     &ast.LiteralExpr{Value: token.NumberLiteral(1)},
				Operator: token.New(token.Plus, "+", 1),
				Right:    &ast.LiteralExpr{Value: token.NumberLiteral(2)},
			},
		},
	}
	var sb strings.Builder
	p := &ast.Printer{Output: &sb}
	require.NoError(t, p.Print(stmts))

	out := sb.String()
	assert.Contains(t, out, "var x")
	assert.Contains(t, out, ". binary +")
	assert.Contains(t, out, ". . literal 1")
}

func TestPrinterBlockStmtNesting(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.BlockStmt{Statements: []ast.Stmt{
			&ast.PrintStmt{Expression: &ast.LiteralExpr{Value: token.StringLiteral("hi")}},
		}},
	}
	var sb strings.Builder
	p := &ast.Printer{Output: &sb}
	require.NoError(t, p.Print(stmts))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "block", lines[0])
	assert.Equal(t, ". print", lines[1])
	assert.Equal(t, ". . literal hi", lines[2])
}
