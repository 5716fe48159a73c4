package builtins

import (
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

func asChar(op string, v runtime.Value) (*runtime.Character, error) {
	c, ok := v.(*runtime.Character)
	if !ok {
		return nil, schemeerrors.NewWrongArgType(op, "character", runtime.Repr(v))
	}
	return c, nil
}

// registerChars installs char->integer/integer->char, exercising the
// Character value kind alongside the modern string procedures (§4.6).
func registerChars(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "char->integer", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		c, err := asChar("char->integer", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewIntegerFromInt64(ec.Store, int64(c.Rune())), nil
	})

	def(st, envt, "integer->char", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		n, err := asInteger("integer->char", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewCharacter(ec.Store, rune(n.Int().Int64())), nil
	})
}
