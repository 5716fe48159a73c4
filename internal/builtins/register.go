// Package builtins supplies the native procedure library every
// top-level environment is pre-seeded with (§4.6): arithmetic,
// comparisons, type predicates, pair/list operations, equality,
// vectors, characters, strings, and the control procedures (apply,
// map, for-each, force) that must call back into the evaluator rather
// than running to completion in one Go call. Grounded directly on
// original_source/eval.cpp's add_builtin_routines() table, extended
// with the modern-Scheme procedures that table never needed because it
// predates vectors, characters, and promises as exercised value kinds.
package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// Register installs every builtin this package provides into envt,
// wrapping each native Go function as an evaluator.Builtin. apply, map,
// for-each, and force additionally need to invoke a Callable's Call and
// drive it to completion rather than running inline, so they take ev
// directly instead of going through the ordinary BuiltinFunc shape.
func Register(st *runtime.Store, envt *runtime.Environment, ev *evaluator.Evaluator) {
	registerArithmetic(st, envt)
	registerMath(st, envt)
	registerPredicates(st, envt)
	registerLists(st, envt)
	registerEquality(st, envt)
	registerVectors(st, envt)
	registerChars(st, envt)
	registerStrings(st, envt)
	registerIO(st, envt)
	registerControl(st, envt, ev)
}

func def(st *runtime.Store, envt *runtime.Environment, name string, minArgs, maxArgs int, fn evaluator.BuiltinFunc) {
	envt.Define(st, st.Intern(name), evaluator.NewBuiltin(name, minArgs, maxArgs, fn))
}
