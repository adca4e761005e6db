// Package report implements the process-wide diagnostic sink shared by the
// scanner, parser and interpreter. It is threaded through each component by
// pointer rather than held in package-level state, so tests and the REPL
// can run independent pipelines side by side.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/loxlang/rlox/lang/token"
)

// Reporter is a sink for syntactic and runtime diagnostics. It carries two
// sticky flags: HadError (set by scan or parse diagnostics) and
// HadRuntimeError (set by runtime diagnostics). Reset clears only the
// former, so a REPL can recover from a bad line without forgetting that the
// program as a whole ran into a runtime fault.
type Reporter struct {
	// Stderr is where diagnostics are written. Defaults to os.Stderr if nil.
	Stderr io.Writer

	hadError        bool
	hadRuntimeError bool
}

func (r *Reporter) HadError() bool        { return r.hadError }
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears the scan/parse error flag only, for reuse between REPL lines.
func (r *Reporter) Reset() { r.hadError = false }

func (r *Reporter) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// Line reports a diagnostic tied only to a source line, with no token
// context (used by the scanner, which has not yet produced a token for the
// offending character).
func (r *Reporter) Line(line int, message string) {
	r.report(line, "", message)
	r.hadError = true
}

// Token reports a syntactic diagnostic tied to a specific token, used by the
// parser. The "where" clause is " at end" for an Eof token, or " at
// '<lexeme>'" otherwise.
func (r *Reporter) Token(tok token.Token, message string) {
	r.report(tok.Line, where(tok), message)
	r.hadError = true
}

// Runtime reports a runtime diagnostic tied to a specific token, used by the
// interpreter. It sets HadRuntimeError rather than HadError.
func (r *Reporter) Runtime(tok token.Token, message string) {
	r.report(tok.Line, where(tok), message)
	r.hadRuntimeError = true
}

func where(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.stderr(), "[line %d] Error%s: %s\n", line, where, message)
}
