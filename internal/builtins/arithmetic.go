package builtins

import (
	"math/big"

	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asNumber(op string, v runtime.Value) (runtime.Number, error) {
	n, ok := v.(runtime.Number)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "number", runtime.Repr(v))
	}
	return n, nil
}

func asInteger(op string, v runtime.Value) (*runtime.Integer, error) {
	n, ok := v.(*runtime.Integer)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "integer", runtime.Repr(v))
	}
	return n, nil
}

// registerArithmetic installs the four exact/inexact-promoting
// operators plus abs/modulo/remainder/quotient/gcd/lcm/min/max, all
// grounded on runtime.Add/Sub/Mul/Div's tower-promotion rules (§4.2).
func registerArithmetic(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "+", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		acc := runtime.Number(runtime.NewIntegerFromInt64(ec.Store, 0))
		for _, a := range args {
			n, err := asNumber("+", a)
			if err != nil {
				return nil, err
			}
			acc, err = runtime.Add(ec.Store, acc, n)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	def(st, envt, "*", 0, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		acc := runtime.Number(runtime.NewIntegerFromInt64(ec.Store, 1))
		for _, a := range args {
			n, err := asNumber("*", a)
			if err != nil {
				return nil, err
			}
			acc, err = runtime.Mul(ec.Store, acc, n)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	def(st, envt, "-", 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		first, err := asNumber("-", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return runtime.Sub(ec.Store, runtime.NewIntegerFromInt64(ec.Store, 0), first)
		}
		acc := first
		for _, a := range args[1:] {
			n, err := asNumber("-", a)
			if err != nil {
				return nil, err
			}
			acc, err = runtime.Sub(ec.Store, acc, n)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	def(st, envt, "/", 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		first, err := asNumber("/", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return runtime.Div(ec.Store, runtime.NewIntegerFromInt64(ec.Store, 1), first)
		}
		acc := first
		for _, a := range args[1:] {
			n, err := asNumber("/", a)
			if err != nil {
				return nil, err
			}
			acc, err = runtime.Div(ec.Store, acc, n)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	def(st, envt, "abs", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		n, err := asNumber("abs", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Abs(ec.Store, n), nil
	})

	def(st, envt, "quotient", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return intBinOp(ec, "quotient", args, runtime.Quotient)
	})
	def(st, envt, "remainder", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return intBinOp(ec, "remainder", args, runtime.Remainder)
	})
	def(st, envt, "modulo", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return intBinOp(ec, "modulo", args, runtime.Modulo)
	})
	def(st, envt, "gcd", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return intBinOp(ec, "gcd", args, func(st *runtime.Store, a, b *runtime.Integer) (*runtime.Integer, error) {
			return runtime.GCD(st, a, b), nil
		})
	})
	def(st, envt, "lcm", 2, 2, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return intBinOp(ec, "lcm", args, func(st *runtime.Store, a, b *runtime.Integer) (*runtime.Integer, error) {
			return runtime.LCM(st, a, b), nil
		})
	})

	def(st, envt, "min", 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return extremum(ec, "min", args, -1)
	})
	def(st, envt, "max", 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		return extremum(ec, "max", args, 1)
	})

	for _, cmp := range []struct {
		name string
		ok   func(c int) bool
	}{
		{"<", func(c int) bool { return c < 0 }},
		{"<=", func(c int) bool { return c <= 0 }},
		{">", func(c int) bool { return c > 0 }},
		{">=", func(c int) bool { return c >= 0 }},
	} {
		cmp := cmp
		def(st, envt, cmp.name, 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
			for i := 0; i+1 < len(args); i++ {
				a, err := asNumber(cmp.name, args[i])
				if err != nil {
					return nil, err
				}
				b, err := asNumber(cmp.name, args[i+1])
				if err != nil {
					return nil, err
				}
				c, err := runtime.Compare(ec.Store, a, b)
				if err != nil {
					return nil, err
				}
				if !cmp.ok(c) {
					return runtime.NewBoolean(ec.Store, false), nil
				}
			}
			return runtime.NewBoolean(ec.Store, true), nil
		})
	}

	def(st, envt, "=", 1, -1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		for i := 0; i+1 < len(args); i++ {
			a, err := asNumber("=", args[i])
			if err != nil {
				return nil, err
			}
			b, err := asNumber("=", args[i+1])
			if err != nil {
				return nil, err
			}
			if !runtime.NumEq(ec.Store, a, b) {
				return runtime.NewBoolean(ec.Store, false), nil
			}
		}
		return runtime.NewBoolean(ec.Store, true), nil
	})
}

func intBinOp(ec *evaluator.EvalContext, op string, args []runtime.Value, fn func(st *runtime.Store, a, b *runtime.Integer) (*runtime.Integer, error)) (runtime.Value, error) {
	a, err := asInteger(op, args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger(op, args[1])
	if err != nil {
		return nil, err
	}
	return fn(ec.Store, a, b)
}

func extremum(ec *evaluator.EvalContext, op string, args []runtime.Value, want int) (runtime.Value, error) {
	best, err := asNumber(op, args[0])
	if err != nil {
		return nil, err
	}
	inexact := !runtime.Exact(best)
	for _, a := range args[1:] {
		n, err := asNumber(op, a)
		if err != nil {
			return nil, err
		}
		if !runtime.Exact(n) {
			inexact = true
		}
		c, err := runtime.Compare(ec.Store, n, best)
		if err != nil {
			return nil, err
		}
		if (want < 0 && c < 0) || (want > 0 && c > 0) {
			best = n
		}
	}
	if inexact && runtime.Exact(best) {
		return runtime.NewReal(ec.Store, toFloat(best)), nil
	}
	return best, nil
}

func toFloat(n runtime.Number) float64 {
	switch v := n.(type) {
	case *runtime.Integer:
		f, _ := new(big.Float).SetInt(v.Int()).Float64()
		return f
	case *runtime.Rational:
		f, _ := v.Rat().Float64()
		return f
	case *runtime.Real:
		return v.Float64()
	default:
		return 0
	}
}
