package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asPair(op string, v runtime.Value) (*runtime.Pair, error) {
	p, ok := v.(*runtime.Pair)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "pair", runtime.Repr(v))
	}
	return p, nil
}

// registerLists installs cons/car/cdr/set-car!/set-cdr!/list/length/
// append/reverse/list-tail, grounded directly on
// original_source/eval.cpp's table entries of the same names.
func registerLists(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "cons", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewPair(ec.Store, args[0], args[1]), nil
	})

	def(st, envt, "car", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		p, err := asPair("car", args[0])
		if err != nil {
			return nil, err
		}
		return p.Car(), nil
	})

	def(st, envt, "cdr", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		p, err := asPair("cdr", args[0])
		if err != nil {
			return nil, err
		}
		return p.Cdr(), nil
	})

	def(st, envt, "set-car!", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		p, err := asPair("set-car!", args[0])
		if err != nil {
			return nil, err
		}
		p.SetCar(ec.Store, args[1])
		return runtime.Unspecified{}, nil
	})

	def(st, envt, "set-cdr!", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		p, err := asPair("set-cdr!", args[0])
		if err != nil {
			return nil, err
		}
		p.SetCdr(ec.Store, args[1])
		return runtime.Unspecified{}, nil
	})

	def(st, envt, "list", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.SliceToList(ec.Store, args), nil
	})

	def(st, envt, "length", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		n := runtime.ListLength(args[0])
		if n < 0 {
			return nil, schemeerrors.NewWrongArgType("length", "proper list", runtime.Repr(args[0]))
		}
		return runtime.NewIntegerFromInt64(ec.Store, int64(n)), nil
	})

	def(st, envt, "append", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.EmptyList, nil
		}
		var all []runtime.Value
		for _, lst := range args[:len(args)-1] {
			items, ok := runtime.ListToSlice(lst)
			if !ok {
				return nil, schemeerrors.NewWrongArgType("append", "proper list", runtime.Repr(lst))
			}
			all = append(all, items...)
		}
		result := args[len(args)-1]
		for i := len(all) - 1; i >= 0; i-- {
			result = runtime.NewPair(ec.Store, all[i], result)
		}
		return result, nil
	})

	def(st, envt, "reverse", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		items, ok := runtime.ListToSlice(args[0])
		if !ok {
			return nil, schemeerrors.NewWrongArgType("reverse", "proper list", runtime.Repr(args[0]))
		}
		result := runtime.Value(runtime.EmptyList)
		for _, item := range items {
			result = runtime.NewPair(ec.Store, item, result)
		}
		return result, nil
	})

	def(st, envt, "list-tail", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		k, err := asInteger("list-tail", args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := int64(0); i < k.Int().Int64(); i++ {
			p, err := asPair("list-tail", cur)
			if err != nil {
				return nil, err
			}
			cur = p.Cdr()
		}
		return cur, nil
	})
}
