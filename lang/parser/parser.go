// Package parser implements the recursive-descent parser that transforms a
// token stream into an abstract syntax tree. Syntax errors trigger
// panic-mode recovery (a sentinel unwind to the nearest statement boundary),
// so one pass over a broken file reports many errors instead of one.
package parser

import (
	"errors"

	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/token"
)

// maxArgs is the hard limit on call arguments and function parameters,
// matching the Lox language definition.
const maxArgs = 255

// errPanicMode is the sentinel panicked with to unwind to the nearest
// statement boundary after a syntax error; recovered in declaration.
var errPanicMode = errors.New("parser: panic mode")

// Parser consumes a fixed token slice (produced in full by the scanner) and
// builds statement nodes one declaration at a time.
type Parser struct {
	tokens  []token.Token
	current int
	rep     *report.Reporter
}

// New creates a Parser over tokens, reporting syntax errors to rep.
func New(tokens []token.Token, rep *report.Reporter) *Parser {
	return &Parser{tokens: tokens, rep: rep}
}

// Parse parses a complete program: zero or more declarations followed by
// EOF. Statements that fail to parse are omitted from the result; the
// reporter records the corresponding errors so callers can check
// HadError() and decline to run a broken program.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "expected variable name")

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "expected "+kind+" name")
	p.consume(token.LeftParen, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after parameters")
	p.consume(token.LeftBrace, "expected '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: &ast.BlockStmt{Statements: body}}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "expected ';' after value")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RightParen, "expected ')' after if condition")

	then := p.statement()
	var elseStmt ast.Stmt
	if p.match(token.Else) {
		elseStmt = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: then, Else: elseStmt}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.RightParen, "expected ')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

// forStatement desugars the C-style for loop into a while loop wrapped in a
// block: there is no ForStmt node anywhere downstream.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after loop condition")

	var post ast.Expr
	if !p.check(token.RightParen) {
		post = p.expression()
	}
	p.consume(token.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: post}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: token.BooleanLiteral(true)}
	}
	body = &ast.WhileStmt{Condition: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after return value")
	if value == nil {
		value = &ast.LiteralExpr{Value: token.NilLiteral}
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so a single syntax error does not cascade into spurious ones.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(errPanicMode)
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.rep.Token(tok, message)
}
