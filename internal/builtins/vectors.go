package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asVector(op string, v runtime.Value) (*runtime.Vector, error) {
	vec, ok := v.(*runtime.Vector)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "vector", runtime.Repr(v))
	}
	return vec, nil
}

func asIndex(op string, v runtime.Value) (int, error) {
	n, err := asInteger(op, v)
	if err != nil {
		return 0, err
	}
	return int(n.Int().Int64()), nil
}

// registerVectors installs vector/make-vector/vector-ref/vector-set!/
// vector-length/vector?, exercising the Vector value kind the original
// 1970s-vintage builtin table never touched (§4.6).
func registerVectors(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "vector", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewVector(ec.Store, args), nil
	})

	def(st, envt, "make-vector", 1, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		n, err := asIndex("make-vector", args[0])
		if err != nil {
			return nil, err
		}
		fill := runtime.Value(runtime.Unspecified{})
		if len(args) == 2 {
			fill = args[1]
		}
		return runtime.NewVectorFilled(ec.Store, n, fill), nil
	})

	def(st, envt, "vector-length", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		vec, err := asVector("vector-length", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewIntegerFromInt64(ec.Store, int64(vec.Len())), nil
	})

	def(st, envt, "vector-ref", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		vec, err := asVector("vector-ref", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("vector-ref", args[1])
		if err != nil {
			return nil, err
		}
		v, ok := vec.Ref(i)
		if !ok {
			return nil, schemeerrors.NewWrongArgType("vector-ref", "index in range", runtime.Repr(args[1]))
		}
		return v, nil
	})

	def(st, envt, "vector-set!", 3, 3, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		vec, err := asVector("vector-set!", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("vector-set!", args[1])
		if err != nil {
			return nil, err
		}
		if !vec.Set(ec.Store, i, args[2]) {
			return nil, schemeerrors.NewWrongArgType("vector-set!", "index in range", runtime.Repr(args[1]))
		}
		return runtime.Unspecified{}, nil
	})
}
