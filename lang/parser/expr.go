package parser

import (
	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses a right-associative assignment. The left-hand side is
// parsed as a full expression and only afterwards checked for being a valid
// assignment target: this lets 'a = b = c' parse the same way a normal
// binary expression would before the '=' is found, rather than needing a
// separate lvalue grammar.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: v.Name, Value: value}
		}
		// Reported, not panicked: an invalid target doesn't desynchronize the
		// parser, since the rest of the expression already parsed cleanly.
		p.errorAt(equals, "invalid assignment target")
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				// Reported, not panicked: parsing continues so the rest of the
				// call still produces a usable AST.
				p.errorAt(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "expected ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: token.BooleanLiteral(false)}
	case p.match(token.True):
		return &ast.LiteralExpr{Value: token.BooleanLiteral(true)}
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: token.NilLiteral}
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return &ast.GroupingExpr{Expression: expr}
	}

	p.errorAt(p.peek(), "expected expression")
	panic(errPanicMode)
}
