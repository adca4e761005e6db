package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loxlang/rlox/lang/ast"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/token"
)

// DefaultMaxCallDepth bounds nested Lox function calls so that runaway or
// accidental infinite recursion in user code fails with a Lox runtime error
// instead of crashing the host process: the tree-walker's own call stack
// grows by several Go frames per Lox call.
const DefaultMaxCallDepth = 255

// Interpreter walks a statement list against a lexically scoped runtime
// environment. It holds a single "current scope" handle; block and call
// execution save and restore it around recursive descent into nested
// statements.
type Interpreter struct {
	Globals *Environment
	Stdout  io.Writer

	// MaxCallDepth bounds nested Lox function calls; see DefaultMaxCallDepth.
	MaxCallDepth int

	reporter  *report.Reporter
	env       *Environment
	callDepth int
}

// New creates an Interpreter reporting runtime errors to rep and writing
// 'print' output to stdout (os.Stdout if nil). The global scope is seeded
// with the built-in natives (clock).
func New(rep *report.Reporter, stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	globals := NewEnvironment(nil)
	it := &Interpreter{
		Globals:      globals,
		Stdout:       stdout,
		MaxCallDepth: DefaultMaxCallDepth,
		reporter:     rep,
		env:          globals,
	}
	it.defineNatives()
	return it
}

func (it *Interpreter) defineNatives() {
	it.Globals.Define("clock", NativeFunction{
		NativeName:  "clock",
		NativeArity: 0,
		Fn: func([]Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// Interpret executes stmts in order against the interpreter's persistent
// global scope. It aborts the whole run on the first runtime error,
// reporting it through the Reporter; remaining top-level statements do not
// execute. Interpret returns false if a runtime error aborted execution.
func (it *Interpreter) Interpret(stmts []ast.Stmt) bool {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			if rerr, ok := err.(RuntimeError); ok {
				it.reporter.Runtime(rerr.Token, rerr.Message)
			} else {
				// A returnSignal reaching here means 'return' appeared outside any
				// function: the parser accepts a return statement at top level, so
				// it is reported here as a runtime error rather than dropped.
				it.reporter.Runtime(token.Token{}, err.Error())
			}
			return false
		}
	}
	return true
}

func (it *Interpreter) execute(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evaluate(stmt.Expression)
		return err

	case *ast.PrintStmt:
		v, err := it.evaluate(stmt.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Stdout, Stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if stmt.Initializer != nil {
			v, err := it.evaluate(stmt.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		it.env.Define(stmt.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return it.executeBlock(stmt.Statements, NewEnvironment(it.env))

	case *ast.IfStmt:
		cond, err := it.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		switch {
		case Truthy(cond):
			return it.execute(stmt.Then)
		case stmt.Else != nil:
			return it.execute(stmt.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evaluate(stmt.Condition)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := it.execute(stmt.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &UserFunction{Decl: stmt, Closure: it.env}
		it.env.Define(stmt.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		v, err := it.evaluate(stmt.Value)
		if err != nil {
			return err
		}
		return returnSignal{value: v}

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// executeBlock runs stmts under env, restoring the interpreter's previous
// current-scope handle on every exit path: normal, RuntimeError, or
// returnSignal.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(expr.Value), nil

	case *ast.GroupingExpr:
		return it.evaluate(expr.Expression)

	case *ast.UnaryExpr:
		return it.evalUnary(expr)

	case *ast.BinaryExpr:
		return it.evalBinary(expr)

	case *ast.LogicalExpr:
		return it.evalLogical(expr)

	case *ast.VariableExpr:
		return it.lookupVariable(expr.Name)

	case *ast.AssignExpr:
		value, err := it.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if !it.env.Assign(expr.Name.Lexeme, value) {
			return nil, RuntimeError{Token: expr.Name, Message: fmt.Sprintf("Undefined variable '%s'.", expr.Name.Lexeme)}
		}
		return value, nil

	case *ast.CallExpr:
		return it.evalCall(expr)

	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

func (it *Interpreter) lookupVariable(name token.Token) (Value, error) {
	v, declared, initialized := it.env.Get(name.Lexeme)
	switch {
	case !declared:
		return nil, RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
	case !initialized:
		return nil, RuntimeError{Token: name, Message: fmt.Sprintf("Uninitialized variable '%s'.", name.Lexeme)}
	default:
		return v, nil
	}
}

func literalValue(lit token.Literal) Value {
	if n, ok := lit.AsNumber(); ok {
		return Number(n)
	}
	if s, ok := lit.AsString(); ok {
		return String(s)
	}
	if b, ok := lit.AsBoolean(); ok {
		return Boolean(b)
	}
	return Nil
}

func (it *Interpreter) evalUnary(expr *ast.UnaryExpr) (Value, error) {
	right, err := it.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Minus:
		n, ok := right.(Number)
		if !ok {
			return nil, RuntimeError{Token: expr.Operator, Message: "operands must be numeric"}
		}
		return -n, nil
	case token.Bang:
		return Boolean(!Truthy(right)), nil
	default:
		return nil, RuntimeError{Token: expr.Operator, Message: "Unknown unary operator."}
	}
}

func (it *Interpreter) evalLogical(expr *ast.LogicalExpr) (Value, error) {
	left, err := it.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Kind == token.Or {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return it.evaluate(expr.Right)
}

func (it *Interpreter) evalBinary(expr *ast.BinaryExpr) (Value, error) {
	left, err := it.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.Plus:
		return evalAdd(left, right), nil
	case token.Minus, token.Slash, token.Star:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, RuntimeError{Token: expr.Operator, Message: "Operands must be numbers."}
		}
		switch expr.Operator.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Slash:
			return ln / rn, nil
		default: // token.Star
			return ln * rn, nil
		}
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, RuntimeError{Token: expr.Operator, Message: "Operands must be numbers."}
		}
		switch expr.Operator.Kind {
		case token.Greater:
			return Boolean(ln > rn), nil
		case token.GreaterEqual:
			return Boolean(ln >= rn), nil
		case token.Less:
			return Boolean(ln < rn), nil
		default: // token.LessEqual
			return Boolean(ln <= rn), nil
		}
	case token.EqualEqual:
		return Boolean(Equal(left, right)), nil
	case token.BangEqual:
		return Boolean(!Equal(left, right)), nil
	default:
		return nil, RuntimeError{Token: expr.Operator, Message: "Unknown binary operator."}
	}
}

// evalAdd implements '+': numeric addition if both operands are Number,
// otherwise both operands are coerced to their string form and concatenated.
// This is an intentional divergence from book Lox, which only concatenates
// when both operands are already strings and errors on mixed operands.
func evalAdd(left, right Value) Value {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if lok && rok {
		return ln + rn
	}
	return String(Stringify(left) + Stringify(right))
}

func (it *Interpreter) evalCall(expr *ast.CallExpr) (Value, error) {
	callee, err := it.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, a := range expr.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, RuntimeError{Token: expr.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, RuntimeError{Token: expr.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args))}
	}

	if it.callDepth >= it.MaxCallDepth {
		return nil, RuntimeError{Token: expr.Paren, Message: "Stack overflow."}
	}
	it.callDepth++
	defer func() { it.callDepth-- }()

	return fn.call(it, args)
}
