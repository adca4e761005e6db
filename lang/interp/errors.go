package interp

import "github.com/loxlang/rlox/lang/token"

// RuntimeError is a type mismatch, undefined/uninitialized variable,
// non-callable target, or arity mismatch detected while evaluating the AST.
// It carries the offending token so the caller can report a line number, and
// implements error so it can propagate up through ordinary Go error returns.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e RuntimeError) Error() string { return e.Message }

// returnSignal is the non-local-exit carrier for a 'return' statement. It
// implements error so it travels the same statement-execution return channel
// as a RuntimeError, but UserFunction.call type-asserts for it specifically
// and converts it to the call's result value rather than ever surfacing it
// to a user as an error.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "return outside of a function" }
