// Package scanner tokenizes Lox source text: a rune cursor with
// start/current/line bookkeeping, one token scanned per loop iteration.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/token"
)

// Scanner tokenizes a single source string. It runs to completion even in
// the presence of lexical errors, reporting each one through its Reporter.
type Scanner struct {
	source   []rune
	reporter *report.Reporter

	start   int
	current int
	line    int
}

// New creates a Scanner over src, reporting lexical errors through r.
func New(src string, r *report.Reporter) *Scanner {
	return &Scanner{
		source:   []rune(src),
		reporter: r,
		line:     1,
	}
}

// ScanTokens tokenizes the whole source and returns the resulting tokens,
// always ending with an Eof token at the final line. Lexical errors are
// reported but do not stop scanning; the offending character is skipped.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for !s.isAtEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", s.line))
	return tokens
}

func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()

	switch c {
	case '(':
		return s.makeToken(token.LeftParen), true
	case ')':
		return s.makeToken(token.RightParen), true
	case '{':
		return s.makeToken(token.LeftBrace), true
	case '}':
		return s.makeToken(token.RightBrace), true
	case ',':
		return s.makeToken(token.Comma), true
	case '.':
		return s.makeToken(token.Dot), true
	case '-':
		return s.makeToken(token.Minus), true
	case '+':
		return s.makeToken(token.Plus), true
	case ';':
		return s.makeToken(token.Semicolon), true
	case '*':
		return s.makeToken(token.Star), true

	case '!':
		if s.match('=') {
			return s.makeToken(token.BangEqual), true
		}
		return s.makeToken(token.Bang), true
	case '=':
		if s.match('=') {
			return s.makeToken(token.EqualEqual), true
		}
		return s.makeToken(token.Equal), true
	case '<':
		if s.match('=') {
			return s.makeToken(token.LessEqual), true
		}
		return s.makeToken(token.Less), true
	case '>':
		if s.match('=') {
			return s.makeToken(token.GreaterEqual), true
		}
		return s.makeToken(token.Greater), true

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			return token.Token{}, false
		}
		return s.makeToken(token.Slash), true

	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false

	case '"', '\'':
		return s.scanString(c)

	default:
		switch {
		case isDigit(c):
			return s.scanNumber(), true
		case isAlpha(c):
			return s.scanIdentifier(), true
		default:
			s.reporter.Line(s.line, fmt.Sprintf("Unexpected character: '%c'", c))
			return token.Token{}, false
		}
	}
}

func (s *Scanner) scanString(delim rune) (token.Token, bool) {
	for s.peek() != delim && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Line(s.line, "Unterminated string.")
		return token.Token{}, false
	}

	s.advance() // the closing quote

	value := string(s.source[s.start+1 : s.current-1])
	lexeme := string(s.source[s.start:s.current])
	return token.NewLiteral(token.String, lexeme, token.StringLiteral(value), s.line), true
}

func (s *Scanner) scanNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := string(s.source[s.start:s.current])
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// unreachable: the character classes above only admit valid float
		// syntax, but fall back to 0 rather than panicking on a bug here.
		v = 0
	}
	return token.NewLiteral(token.Number, lexeme, token.NumberLiteral(v), s.line)
}

func (s *Scanner) scanIdentifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := string(s.source[s.start:s.current])
	return token.New(token.LookupKeyword(lexeme), lexeme, s.line)
}

func (s *Scanner) makeToken(kind token.Kind) token.Token {
	return token.New(kind, string(s.source[s.start:s.current]), s.line)
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.source) }

func (s *Scanner) advance() rune {
	r := s.source[s.current]
	s.current++
	return r
}

// match advances and returns true only if the current char is expected.
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isAlpha(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c rune) bool { return isAlpha(c) || isDigit(c) }
