package runtime

import schemeerrors "github.com/cwbudde/go-syasi/errors"

// Environment is one lexical frame: a name-to-value binding table plus
// an optional link to the enclosing frame. Grounded on the teacher's
// internal/interp/runtime Environment (NewEnvironment /
// NewEnclosedEnvironment / Get / Set / Define), generalized here to
// Scheme's case-sensitive symbols instead of DWScript's case-folded
// identifiers — §3's "symbols are case sensitive" overrides the
// teacher's pkg/ident folding.
type Environment struct {
	bindings map[*Symbol]Value
	outer    *Environment
}

// Environment implements Value only so the store's generic Attach,
// Expose, and join bookkeeping works on it the same as any other
// reference-counted object; it is never exposed to Scheme code as a
// first-class value (there is no environment? predicate, and eval
// always runs in the current environment rather than taking a reified
// one as an argument — see DESIGN.md's Open Question notes).
func (e *Environment) Kind() Kind   { return KindEnvironment }
func (e *Environment) IsTrue() bool { return true }

// NewEnvironment creates a top-level frame with no enclosing scope.
func NewEnvironment(st *Store) *Environment {
	e := &Environment{bindings: make(map[*Symbol]Value)}
	st.join(e)
	return e
}

// NewEnclosedEnvironment creates a frame nested inside outer, the shape
// every closure call and let-family form builds (§4.3).
func NewEnclosedEnvironment(st *Store, outer *Environment) *Environment {
	e := &Environment{bindings: make(map[*Symbol]Value), outer: st.Attach(outer).(*Environment)}
	st.join(e)
	return e
}

// Define introduces or overwrites a binding in this frame specifically
// (never searching outer frames), matching Scheme's `define`.
func (e *Environment) Define(st *Store, sym *Symbol, val Value) {
	if old, ok := e.bindings[sym]; ok {
		st.Expose(old)
	}
	e.bindings[sym] = st.Attach(val)
}

// Get searches this frame and its ancestors for sym, returning
// UnboundVariable if none binds it.
func (e *Environment) Get(sym *Symbol) (Value, error) {
	for frame := e; frame != nil; frame = frame.outer {
		if val, ok := frame.bindings[sym]; ok {
			return val, nil
		}
	}
	return nil, schemeerrors.NewUnboundVariable(sym.Name())
}

// Set mutates the nearest existing binding of sym, matching Scheme's
// `set!`. It is an UnboundVariable error to set! a name that was never
// defined anywhere in the chain.
func (e *Environment) Set(st *Store, sym *Symbol, val Value) error {
	for frame := e; frame != nil; frame = frame.outer {
		if old, ok := frame.bindings[sym]; ok {
			frame.bindings[sym] = st.Attach(val)
			st.Expose(old)
			return nil
		}
	}
	return schemeerrors.NewUnboundVariable(sym.Name())
}

// Outer returns the enclosing frame, or nil at the top level.
func (e *Environment) Outer() *Environment { return e.outer }

// Each walks every binding in this frame only (not outer frames), for
// tests and tooling. Environment intentionally does NOT implement
// Container (it is not subject to the custom cycle collector — see
// DESIGN.md), so this is a plain method, not part of any interface.
func (e *Environment) Each(fn func(sym *Symbol, val Value)) {
	for sym, val := range e.bindings {
		fn(sym, val)
	}
}

func (e *Environment) release(st *Store) {
	for _, val := range e.bindings {
		st.Expose(val)
	}
	if e.outer != nil {
		st.Expose(e.outer)
	}
}
