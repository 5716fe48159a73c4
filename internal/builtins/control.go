package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asCallable(op string, v runtime.Value) (evaluator.Callable, error) {
	c, ok := v.(evaluator.Callable)
	if !ok {
		return nil, schemeerrors.NewNotApplicable(runtime.Repr(v))
	}
	return c, nil
}

func asPromise(op string, v runtime.Value) (*runtime.Promise, error) {
	p, ok := v.(*runtime.Promise)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "promise", runtime.Repr(v))
	}
	return p, nil
}

// registerControl installs apply/map/for-each/force: the modern
// procedures that invoke another operator rather than merely compute
// from already-evaluated arguments (§4.6). None appear in
// original_source/eval.cpp's add_builtin_routines(); each needs the
// Evaluator itself (to drive a suspended Closure call to completion
// via Evaluator.Apply), unlike every other builtin in this package,
// which only needs the EvalContext a BuiltinFunc is handed.
func registerControl(st *runtime.Store, envt *runtime.Environment, ev *evaluator.Evaluator) {
	def(st, envt, "apply", 2, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		callable, err := asCallable("apply", args[0])
		if err != nil {
			return nil, err
		}
		last := args[len(args)-1]
		tail, ok := runtime.ListToSlice(last)
		if !ok {
			return nil, schemeerrors.NewWrongArgType("apply", "proper list", runtime.Repr(last))
		}
		callArgs := append(append([]runtime.Value{}, args[1:len(args)-1]...), tail...)
		return ev.Apply(envt, callable, callArgs)
	})

	def(st, envt, "map", 2, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		callable, err := asCallable("map", args[0])
		if err != nil {
			return nil, err
		}
		lists := make([][]runtime.Value, len(args)-1)
		shortest := -1
		for i, lst := range args[1:] {
			items, ok := runtime.ListToSlice(lst)
			if !ok {
				return nil, schemeerrors.NewWrongArgType("map", "proper list", runtime.Repr(lst))
			}
			lists[i] = items
			if shortest < 0 || len(items) < shortest {
				shortest = len(items)
			}
		}
		results := make([]runtime.Value, shortest)
		for i := 0; i < shortest; i++ {
			row := make([]runtime.Value, len(lists))
			for j, lst := range lists {
				row[j] = lst[i]
			}
			v, err := ev.Apply(envt, callable, row)
			if err != nil {
				return nil, err
			}
			results[i] = v
		}
		return runtime.SliceToList(ec.Store, results), nil
	})

	def(st, envt, "for-each", 2, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		callable, err := asCallable("for-each", args[0])
		if err != nil {
			return nil, err
		}
		lists := make([][]runtime.Value, len(args)-1)
		shortest := -1
		for i, lst := range args[1:] {
			items, ok := runtime.ListToSlice(lst)
			if !ok {
				return nil, schemeerrors.NewWrongArgType("for-each", "proper list", runtime.Repr(lst))
			}
			lists[i] = items
			if shortest < 0 || len(items) < shortest {
				shortest = len(items)
			}
		}
		for i := 0; i < shortest; i++ {
			row := make([]runtime.Value, len(lists))
			for j, lst := range lists {
				row[j] = lst[i]
			}
			if _, err := ev.Apply(envt, callable, row); err != nil {
				return nil, err
			}
		}
		return runtime.Unspecified{}, nil
	})

	def(st, envt, "force", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		p, err := asPromise("force", args[0])
		if err != nil {
			return nil, err
		}
		if p.Forced() {
			return p.Value(), nil
		}
		thunk, err := asCallable("force", p.Thunk())
		if err != nil {
			return nil, err
		}
		v, err := ev.Apply(envt, thunk, nil)
		if err != nil {
			return nil, err
		}
		return p.Resolve(ec.Store, v), nil
	})
}
