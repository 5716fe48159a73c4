package builtins

import (
	"math"
	"math/big"

	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// registerMath installs expt/sqrt/floor/ceiling/round/truncate: the
// transcendental and rounding procedures the distilled spec's original
// table never needed (§4.6), grounded on the same tower-promotion style
// as arithmetic.go rather than original_source, which predates them.
func registerMath(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "expt", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		base, err := asNumber("expt", args[0])
		if err != nil {
			return nil, err
		}
		exp, err := asNumber("expt", args[1])
		if err != nil {
			return nil, err
		}
		if bi, ok := base.(*runtime.Integer); ok {
			if ei, ok := exp.(*runtime.Integer); ok && ei.Int().Sign() >= 0 && ei.Int().IsInt64() {
				acc := runtime.Number(runtime.NewIntegerFromInt64(ec.Store, 1))
				for i := int64(0); i < ei.Int().Int64(); i++ {
					acc, err = runtime.Mul(ec.Store, acc, bi)
					if err != nil {
						return nil, err
					}
				}
				return acc, nil
			}
		}
		return runtime.NewReal(ec.Store, math.Pow(toFloat(base), toFloat(exp))), nil
	})

	def(st, envt, "sqrt", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		n, err := asNumber("sqrt", args[0])
		if err != nil {
			return nil, err
		}
		f := toFloat(n)
		if f < 0 {
			return nil, schemeerrors.NewNumericError("sqrt of a negative real is not supported")
		}
		if bi, ok := n.(*runtime.Integer); ok {
			root := new(big.Int).Sqrt(bi.Int())
			check := new(big.Int).Mul(root, root)
			if check.Cmp(bi.Int()) == 0 {
				return runtime.NewInteger(ec.Store, root), nil
			}
		}
		return runtime.NewReal(ec.Store, math.Sqrt(f)), nil
	})

	roundOp := func(name string, op func(float64) float64) evaluator.BuiltinFunc {
		return func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
			n, err := asNumber(name, args[0])
			if err != nil {
				return nil, err
			}
			if bi, ok := n.(*runtime.Integer); ok {
				return bi, nil
			}
			return runtime.NewReal(ec.Store, op(toFloat(n))), nil
		}
	}
	def(st, envt, "floor", 1, 1, roundOp("floor", math.Floor))
	def(st, envt, "ceiling", 1, 1, roundOp("ceiling", math.Ceil))
	def(st, envt, "round", 1, 1, roundOp("round", math.RoundToEven))
	def(st, envt, "truncate", 1, 1, roundOp("truncate", math.Trunc))
}
