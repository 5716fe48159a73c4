package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// typePredicate wraps a one-argument Go predicate as a one-argument
// boolean-returning builtin, the shape every is_xxx entry in
// original_source/eval.cpp's add_builtin_routines() table shares.
func typePredicate(st *runtime.Store, envt *runtime.Environment, name string, pred func(runtime.Value) bool) {
	def(st, envt, name, 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewBoolean(ec.Store, pred(args[0])), nil
	})
}

func registerPredicates(st *runtime.Store, envt *runtime.Environment) {
	typePredicate(st, envt, "number?", runtime.IsNumber)
	typePredicate(st, envt, "pair?", runtime.IsPair)
	typePredicate(st, envt, "null?", runtime.IsEmptyList)
	typePredicate(st, envt, "list?", runtime.IsProperList)
	typePredicate(st, envt, "symbol?", runtime.IsSymbol)
	typePredicate(st, envt, "string?", func(v runtime.Value) bool { _, ok := v.(*runtime.String); return ok })
	typePredicate(st, envt, "boolean?", func(v runtime.Value) bool { _, ok := v.(*runtime.Boolean); return ok })
	typePredicate(st, envt, "char?", func(v runtime.Value) bool { _, ok := v.(*runtime.Character); return ok })
	typePredicate(st, envt, "vector?", func(v runtime.Value) bool { _, ok := v.(*runtime.Vector); return ok })
	typePredicate(st, envt, "procedure?", runtime.IsOperator)
	typePredicate(st, envt, "promise?", func(v runtime.Value) bool { _, ok := v.(*runtime.Promise); return ok })

	typePredicate(st, envt, "exact?", func(v runtime.Value) bool {
		n, ok := v.(runtime.Number)
		return ok && runtime.Exact(n)
	})
	typePredicate(st, envt, "inexact?", func(v runtime.Value) bool {
		n, ok := v.(runtime.Number)
		return ok && !runtime.Exact(n)
	})
	typePredicate(st, envt, "integer?", func(v runtime.Value) bool {
		_, ok := v.(*runtime.Integer)
		return ok
	})
	typePredicate(st, envt, "rational?", func(v runtime.Value) bool {
		n, ok := v.(runtime.Number)
		return ok && n.Level() <= runtime.LevelReal
	})
	typePredicate(st, envt, "real?", func(v runtime.Value) bool {
		n, ok := v.(runtime.Number)
		return ok && n.Level() <= runtime.LevelReal
	})
	typePredicate(st, envt, "complex?", runtime.IsNumber)

	def(st, envt, "not", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewBoolean(ec.Store, !args[0].IsTrue()), nil
	})
}
