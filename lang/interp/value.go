// Package interp implements the runtime value model, the lexically nested
// Environment, and the tree-walking Interpreter that evaluates an ast.Stmt
// list directly, without any intervening resolution or compilation pass.
package interp

import (
	"fmt"
	"strconv"
)

// Value is any Lox runtime value: Number, String, Boolean, Callable or Nil.
type Value interface {
	String() string
	Type() string
}

// Number is Lox's only numeric type, a 64-bit IEEE-754 float.
type Number float64

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (Number) Type() string     { return "number" }

// String is a Lox string value.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Boolean is a Lox boolean value.
type Boolean bool

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (Boolean) Type() string     { return "boolean" }

// nilValue is the type of Lox's nil value; Nil is its single instance.
type nilValue struct{}

func (nilValue) String() string { return "nil" }
func (nilValue) Type() string   { return "nil" }

// Nil is the single instance of Lox's nil value.
var Nil Value = nilValue{}

// Callable is implemented by values that may appear as the callee of a
// Call expression: NativeFunction and *UserFunction.
type Callable interface {
	Value
	Name() string
	Arity() int
	call(interp *Interpreter, args []Value) (Value, error)
}

// Truthy reports whether v counts as true in a condition: only Nil and
// Boolean(false) are false, every other value (including Number(0) and the
// empty string) is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nilValue:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal implements Lox's '==': cross-kind comparisons are always false,
// two Nils are equal, NaN follows IEEE-754 (NaN != NaN). User functions
// compare by identity; native functions compare by name. Neither may go
// through Go's own ==, which panics on values embedding a func.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nilValue:
		_, ok := b.(nilValue)
		return ok
	case Number:
		bn, ok := b.(Number)
		return ok && float64(a) == float64(bn)
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case *UserFunction:
		bf, ok := b.(*UserFunction)
		return ok && a == bf
	case NativeFunction:
		bf, ok := b.(NativeFunction)
		return ok && a.NativeName == bf.NativeName
	default:
		return false
	}
}

// Stringify renders v the way a 'print' statement or '+' string-coercion
// would: callables render as "<fn NAME>" / "<native fn NAME>" rather than
// their Go representation.
func Stringify(v Value) string {
	switch v := v.(type) {
	case *UserFunction:
		return fmt.Sprintf("<fn %s>", v.Name())
	case NativeFunction:
		return fmt.Sprintf("<native fn %s>", v.Name())
	default:
		return v.String()
	}
}
