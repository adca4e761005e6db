package interp_test

import (
	"bytes"
	"testing"

	"github.com/loxlang/rlox/lang/interp"
	"github.com/loxlang/rlox/lang/parser"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scans, parses and interprets src with a fresh Interpreter, returning
// stdout, whether the run succeeded (no scan/parse/runtime error), and the
// reporter for callers that want to inspect diagnostics.
func run(t *testing.T, src string) (stdout string, ok bool, rep *report.Reporter) {
	t.Helper()
	var stderr bytes.Buffer
	rep = &report.Reporter{Stderr: &stderr}

	toks := scanner.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if rep.HadError() {
		return "", false, rep
	}

	var out bytes.Buffer
	it := interp.New(rep, &out)
	succeeded := it.Interpret(stmts)
	return out.String(), succeeded, rep
}

func TestArithmeticPrecedence(t *testing.T) {
	out, ok, _ := run(t, "print 1 + 2 * 3;")
	require.True(t, ok)
	assert.Equal(t, "7\n", out)

	out, ok, _ = run(t, "print (1 + 2) * 3;")
	require.True(t, ok)
	assert.Equal(t, "9\n", out)
}

func TestBlockIsolatesShadowedVariable(t *testing.T) {
	out, ok, _ := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	require.True(t, ok)
	assert.Equal(t, "2\n1\n", out)
}

func TestAssignmentInBlockMutatesOuterBinding(t *testing.T) {
	out, ok, _ := run(t, `var a = 1; { a = 2; } print a;`)
	require.True(t, ok)
	assert.Equal(t, "2\n", out)
}

func TestClosureCapturesDefiningScope(t *testing.T) {
	src := `
fun make() {
  var i = 0;
  fun inc() {
    i = i + 1;
    return i;
  }
  return inc;
}
var c = make();
print c();
print c();
print c();
`
	out, ok, _ := run(t, src)
	require.True(t, ok)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, ok, _ := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.True(t, ok)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestPlusCoercesNonNumericOperandsToString(t *testing.T) {
	out, ok, _ := run(t, `print "hi" + 1;`)
	require.True(t, ok)
	assert.Equal(t, "hi1\n", out)
}

func TestUninitializedVariableIsRuntimeError(t *testing.T) {
	out, ok, rep := run(t, `var x; print x;`)
	assert.False(t, ok)
	assert.Empty(t, out)
	assert.True(t, rep.HadRuntimeError())
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, ok, rep := run(t, `print y;`)
	assert.False(t, ok)
	assert.True(t, rep.HadRuntimeError())
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	src := `fun f(a, b) { return a - b; } print f(5, 2);`
	out, ok, _ := run(t, src)
	require.True(t, ok)
	assert.Equal(t, "3\n", out)

	_, ok, rep := run(t, `fun f(a, b) { return a - b; } f(1);`)
	assert.False(t, ok)
	assert.True(t, rep.HadRuntimeError())
}

func TestLogicalOrShortCircuits(t *testing.T) {
	out, ok, _ := run(t, `fun sideEffect() { print "evaluated"; return true; } print true or sideEffect();`)
	require.True(t, ok)
	assert.Equal(t, "true\n", out)
}

func TestLogicalAndShortCircuits(t *testing.T) {
	out, ok, _ := run(t, `fun sideEffect() { print "evaluated"; return true; } print false and sideEffect();`)
	require.True(t, ok)
	assert.Equal(t, "false\n", out)
}

func TestEqualityAcrossKindsIsFalse(t *testing.T) {
	out, ok, _ := run(t, `print 1 == "1"; print nil == nil; print nil == false;`)
	require.True(t, ok)
	assert.Equal(t, "false\ntrue\nfalse\n", out)
}

func TestRuntimeErrorAbortsRemainingStatements(t *testing.T) {
	out, ok, rep := run(t, `print 1; print nil - 1; print 2;`)
	assert.False(t, ok)
	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n", out)
}

func TestMutualRecursionAtTopLevel(t *testing.T) {
	src := `
fun isEven(n) { if (n == 0) return true; return isOdd(n - 1); }
fun isOdd(n) { if (n == 0) return false; return isEven(n - 1); }
print isEven(10);
`
	out, ok, _ := run(t, src)
	require.True(t, ok)
	assert.Equal(t, "true\n", out)
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, ok, rep := run(t, `var a = 1; a();`)
	assert.False(t, ok)
	assert.True(t, rep.HadRuntimeError())
}

func TestNativeClockReturnsNumber(t *testing.T) {
	out, ok, _ := run(t, `print clock() >= 0;`)
	require.True(t, ok)
	assert.Equal(t, "true\n", out)
}

func TestFunctionEqualityNeverErrors(t *testing.T) {
	src := `
fun f() {}
fun g() {}
print f == f;
print f == g;
print clock == clock;
print f == clock;
`
	out, ok, _ := run(t, src)
	require.True(t, ok)
	assert.Equal(t, "true\nfalse\ntrue\nfalse\n", out)
}
