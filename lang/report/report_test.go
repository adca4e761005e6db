package report

import (
	"bytes"
	"testing"

	"github.com/loxlang/rlox/lang/token"
	"github.com/stretchr/testify/require"
)

func TestLineSetsHadError(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Stderr: &buf}

	r.Line(3, "Unexpected character: '@'.")
	require.True(t, r.HadError())
	require.False(t, r.HadRuntimeError())
	require.Equal(t, "[line 3] Error: Unexpected character: '@'.\n", buf.String())
}

func TestTokenAtEnd(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Stderr: &buf}

	r.Token(token.New(token.EOF, "", 5), "Expect expression.")
	require.Equal(t, "[line 5] Error at end: Expect expression.\n", buf.String())
}

func TestTokenAtLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Stderr: &buf}

	r.Token(token.New(token.Plus, "+", 2), "Expect ';' after value.")
	require.Equal(t, "[line 2] Error at '+': Expect ';' after value.\n", buf.String())
}

func TestRuntimeSetsHadRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Stderr: &buf}

	r.Runtime(token.New(token.Identifier, "x", 1), "Undefined variable 'x'.")
	require.True(t, r.HadRuntimeError())
	require.False(t, r.HadError())
}

func TestResetClearsOnlyHadError(t *testing.T) {
	r := &Reporter{Stderr: &bytes.Buffer{}}
	r.Line(1, "boom")
	r.Runtime(token.New(token.EOF, "", 1), "boom")
	require.True(t, r.HadError())
	require.True(t, r.HadRuntimeError())

	r.Reset()
	require.False(t, r.HadError())
	require.True(t, r.HadRuntimeError())
}
