package scanner_test

import (
	"bytes"
	"testing"

	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/scanner"
	"github.com/loxlang/rlox/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]token.Token, *report.Reporter) {
	t.Helper()
	r := &report.Reporter{Stderr: &bytes.Buffer{}}
	toks := scanner.New(src, r).ScanTokens()
	return toks, r
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestScanTokensAlwaysEndsInEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "// just a comment", "1 + 2"} {
		toks, _ := scanAll(t, src)
		require.NotEmpty(t, toks)
		require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	}
}

func TestScanPunctuation(t *testing.T) {
	toks, r := scanAll(t, "(){},.-+;*/")
	require.False(t, r.HadError())
	require.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Slash, token.EOF,
	}, kinds(toks))
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, _ := scanAll(t, "! != = == < <= > >=")
	require.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.EOF,
	}, kinds(toks))
}

func TestLineComment(t *testing.T) {
	toks, r := scanAll(t, "1 // a comment\n2")
	require.False(t, r.HadError())
	require.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
}

func TestStringLiteral(t *testing.T) {
	toks, r := scanAll(t, `"hello"`)
	require.False(t, r.HadError())
	require.Len(t, toks, 2)
	str, ok := toks[0].Literal.AsString()
	require.True(t, ok)
	require.Equal(t, "hello", str)
	require.Equal(t, `"hello"`, toks[0].Lexeme)
}

func TestStringLiteralSingleQuote(t *testing.T) {
	toks, r := scanAll(t, `'hello'`)
	require.False(t, r.HadError())
	str, ok := toks[0].Literal.AsString()
	require.True(t, ok)
	require.Equal(t, "hello", str)
}

func TestStringSpanningLines(t *testing.T) {
	toks, r := scanAll(t, "\"a\nb\"")
	require.False(t, r.HadError())
	str, _ := toks[0].Literal.AsString()
	require.Equal(t, "a\nb", str)
}

func TestUnterminatedString(t *testing.T) {
	toks, r := scanAll(t, `"hello`)
	require.True(t, r.HadError())
	require.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}

func TestNumberLiteral(t *testing.T) {
	toks, r := scanAll(t, "123 45.67")
	require.False(t, r.HadError())
	n, ok := toks[0].Literal.AsNumber()
	require.True(t, ok)
	require.Equal(t, 123.0, n)
	n, ok = toks[1].Literal.AsNumber()
	require.True(t, ok)
	require.Equal(t, 45.67, n)
}

func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	toks, _ := scanAll(t, "1.")
	require.Equal(t, []token.Kind{token.Number, token.Dot, token.EOF}, kinds(toks))
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, r := scanAll(t, "and foo_Bar123 while")
	require.False(t, r.HadError())
	require.Equal(t, []token.Kind{token.And, token.Identifier, token.While, token.EOF}, kinds(toks))
	require.Equal(t, "foo_Bar123", toks[1].Lexeme)
}

func TestWhitespaceIsSkipped(t *testing.T) {
	toks, _ := scanAll(t, " \t\r\n1")
	require.Equal(t, []token.Kind{token.Number, token.EOF}, kinds(toks))
	require.Equal(t, 2, toks[0].Line)
}

func TestUnexpectedCharacterReportsAndContinues(t *testing.T) {
	toks, r := scanAll(t, "1 @ 2")
	require.True(t, r.HadError())
	require.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestEveryTokenCarriesItsLexeme(t *testing.T) {
	toks, _ := scanAll(t, "+")
	require.Equal(t, "+", toks[0].Lexeme)
}
