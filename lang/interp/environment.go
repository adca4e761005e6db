package interp

import "github.com/dolthub/swiss"

// binding is an entry in an Environment's map. A binding with ok == false is
// declared but uninitialized ("var x;" with no initializer): present in the
// map, but Get must fail distinctly from "not present at all".
type binding struct {
	value Value
	ok    bool
}

// Environment is a lexically nested scope: a mapping from identifier lexeme
// to binding, plus a link to the lexically enclosing scope.
type Environment struct {
	enclosing *Environment
	bindings  *swiss.Map[string, binding]
}

// NewEnvironment creates a scope enclosed by enclosing, or a root scope if
// enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		bindings:  swiss.NewMap[string, binding](8),
	}
}

// Define unconditionally inserts (or replaces) name in this scope. A Value of
// nil leaves the binding declared but uninitialized.
func (e *Environment) Define(name string, value Value) {
	if value == nil {
		e.bindings.Put(name, binding{})
		return
	}
	e.bindings.Put(name, binding{value: value, ok: true})
}

// Get resolves name against this scope, then each enclosing scope in turn.
// It returns (value, true, true) if name is declared and initialized, (nil,
// true, false) if name is declared but uninitialized, or (nil, false,
// false) if name is not declared in any enclosing scope.
func (e *Environment) Get(name string) (v Value, declared, initialized bool) {
	for env := e; env != nil; env = env.enclosing {
		if b, found := env.bindings.Get(name); found {
			return b.value, true, b.ok
		}
	}
	return nil, false, false
}

// Assign replaces the existing binding for name in the nearest scope (this
// one or an enclosing one) that already declares it. It never implicitly
// declares: if no scope contains name, ok is false.
func (e *Environment) Assign(name string, value Value) (ok bool) {
	for env := e; env != nil; env = env.enclosing {
		if _, found := env.bindings.Get(name); found {
			env.bindings.Put(name, binding{value: value, ok: true})
			return true
		}
	}
	return false
}
