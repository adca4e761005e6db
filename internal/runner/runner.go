// Package runner wires the scanner, parser and interpreter together for a
// single source string, and drives the two external entry points built on
// top of that: one-shot file execution and the interactive REPL. The
// pipeline is strictly phased (scan -> parse -> interpret, consulting the
// reporter between phases), and all I/O goes through injected writers and
// readers rather than os.Stdout/os.Stderr directly.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/interp"
	"github.com/loxlang/rlox/lang/parser"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/scanner"
)

// Exit codes, following the BSD sysexits convention.
const (
	ExitSuccess   = 0
	ExitUsage     = 64
	ExitDataError = 65 // scan/parse error
	ExitSoftware  = 70 // runtime error
)

// Runner drives source text through scan -> parse -> evaluate. A single
// Runner's Interpreter and Reporter persist across calls to Run, so that a
// REPL session's global bindings and sticky error flags survive from one
// line to the next.
type Runner struct {
	Reporter *report.Reporter
	Interp   *interp.Interpreter
}

// New creates a Runner writing diagnostics to stderr and 'print' output to
// stdout, with the interpreter's default call-depth limit.
func New(stdout, stderr io.Writer) *Runner {
	return NewWithMaxCallDepth(stdout, stderr, interp.DefaultMaxCallDepth)
}

// NewWithMaxCallDepth is New with an explicit call-depth limit, for callers
// that load one from ambient configuration (internal/maincmd's .rloxrc).
func NewWithMaxCallDepth(stdout, stderr io.Writer, maxCallDepth int) *Runner {
	rep := &report.Reporter{Stderr: stderr}
	it := interp.New(rep, stdout)
	it.MaxCallDepth = maxCallDepth
	return &Runner{Reporter: rep, Interp: it}
}

// Run scans, parses and interprets source as a single program. It returns
// false if any scan, parse or runtime error occurred; the Reporter's sticky
// flags record which.
func (r *Runner) Run(source string) bool {
	toks := scanner.New(source, r.Reporter).ScanTokens()
	stmts := parser.New(toks, r.Reporter).Parse()
	if r.Reporter.HadError() {
		return false
	}
	return r.Interp.Interpret(stmts)
}

// Parse scans and parses source, returning the resulting statement list
// without interpreting it.
func (r *Runner) Parse(source string) []ast.Stmt {
	toks := scanner.New(source, r.Reporter).ScanTokens()
	return parser.New(toks, r.Reporter).Parse()
}

// RunFile reads path as UTF-8 source text and runs it once: exit 65 on any
// scan/parse error, 70 on a runtime error, 0 otherwise.
func RunFile(path string, stdout, stderr io.Writer) int {
	return RunFileWithMaxCallDepth(path, stdout, stderr, interp.DefaultMaxCallDepth)
}

// RunFileWithMaxCallDepth is RunFile with an explicit call-depth limit.
func RunFileWithMaxCallDepth(path string, stdout, stderr io.Writer, maxCallDepth int) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitDataError
	}

	r := NewWithMaxCallDepth(stdout, stderr, maxCallDepth)
	r.Run(string(src))

	switch {
	case r.Reporter.HadError():
		return ExitDataError
	case r.Reporter.HadRuntimeError():
		return ExitSoftware
	default:
		return ExitSuccess
	}
}

// RunPrompt is the interactive REPL: a "> " prompt, one source fragment per
// line, evaluated against a persistent global scope shared across the whole
// session. An empty line exits, always with code 0: errors on earlier lines
// never affect the REPL's exit code, only file mode maps errors to 65/70.
// The scan/parse error flag is reset between lines so one bad line doesn't
// doom the session.
func RunPrompt(stdin io.Reader, stdout, stderr io.Writer) int {
	return RunPromptWithConfig(stdin, stdout, stderr, "> ", interp.DefaultMaxCallDepth)
}

// RunPromptWithConfig is RunPrompt with an overridable prompt string and
// call-depth limit, for internal/maincmd's .rloxrc support.
func RunPromptWithConfig(stdin io.Reader, stdout, stderr io.Writer, prompt string, maxCallDepth int) int {
	r := NewWithMaxCallDepth(stdout, stderr, maxCallDepth)
	scan := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, prompt)
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if line == "" {
			break
		}
		r.Run(line)
		r.Reporter.Reset()
	}

	return ExitSuccess
}
