package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// registerEquality installs eq?/eqv?/equal?, grounded on
// original_source/eval.cpp's is_eq/is_eqv/is_equal.
func registerEquality(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "eq?", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewBoolean(ec.Store, runtime.Eq(args[0], args[1])), nil
	})
	def(st, envt, "eqv?", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewBoolean(ec.Store, runtime.Eqv(args[0], args[1])), nil
	})
	def(st, envt, "equal?", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewBoolean(ec.Store, runtime.Equal(args[0], args[1])), nil
	})
}
