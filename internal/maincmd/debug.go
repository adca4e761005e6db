package maincmd

import (
	"fmt"
	"os"

	"github.com/loxlang/rlox/internal/runner"
	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/parser"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/scanner"
	"github.com/mna/mainer"
)

// debugMode is one of debugTokenize or debugParse: a --tokenize/--parse
// invocation never runs the script, it only prints an intermediate
// representation, so these helpers share everything except the final step.
type debugMode func(stdio mainer.Stdio, rep *report.Reporter, source string) error

func runDebug(stdio mainer.Stdio, path string, mode debugMode) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return runner.ExitDataError
	}

	rep := &report.Reporter{Stderr: stdio.Stderr}
	if err := mode(stdio, rep, string(src)); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
	}
	if rep.HadError() {
		return runner.ExitDataError
	}
	return runner.ExitSuccess
}

func debugTokenize(stdio mainer.Stdio, rep *report.Reporter, source string) error {
	toks := scanner.New(source, rep).ScanTokens()
	for _, tok := range toks {
		fmt.Fprintf(stdio.Stdout, "%d %s %q\n", tok.Line, tok.Kind, tok.Lexeme)
	}
	return nil
}

func debugParse(stdio mainer.Stdio, rep *report.Reporter, source string) error {
	toks := scanner.New(source, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	p := ast.Printer{Output: stdio.Stdout}
	return p.Print(stmts)
}
