package interp

import "github.com/loxlang/rlox/lang/ast"

// NativeFunction wraps a Go function as a Lox Callable, e.g. the built-in
// clock(). It is a value type: native functions carry no state of their own
// beyond the closure captured in Fn.
type NativeFunction struct {
	NativeName  string
	NativeArity int
	Fn          func(args []Value) (Value, error)
}

var _ Callable = NativeFunction{}

func (f NativeFunction) String() string { return Stringify(f) }
func (NativeFunction) Type() string     { return "native function" }
func (f NativeFunction) Name() string   { return f.NativeName }
func (f NativeFunction) Arity() int     { return f.NativeArity }

func (f NativeFunction) call(_ *Interpreter, args []Value) (Value, error) {
	return f.Fn(args)
}

// UserFunction is a function declared in Lox source. Closure is the scope in
// effect when the FunctionStmt was executed, shared (not copied) with that
// scope - this is what makes closures observe later mutations of their free
// variables.
type UserFunction struct {
	Decl    *ast.FunctionStmt
	Closure *Environment
}

var _ Callable = (*UserFunction)(nil)

func (f *UserFunction) String() string { return Stringify(f) }
func (*UserFunction) Type() string     { return "function" }
func (f *UserFunction) Name() string   { return f.Decl.Name.Lexeme }
func (f *UserFunction) Arity() int     { return len(f.Decl.Params) }

// call builds a fresh scope enclosing the function's closure (not the
// caller's scope - that is precisely what makes it a closure rather than
// dynamic scoping), binds parameters to args, and executes the body. A
// normal fall-through returns Nil; a returnSignal unwinds exactly one frame
// and supplies the call's result.
func (f *UserFunction) call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := it.executeBlock(f.Decl.Body.Statements, env)
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return Nil, nil
}
