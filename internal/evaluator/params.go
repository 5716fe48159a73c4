package evaluator

import (
	"strconv"

	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// ParamSpec describes a closure's formal parameter list, unifying the
// three shapes `lambda` accepts into one type (resolving the
// distilled spec's parameter-descriptor Open Question): a fixed list
// `(a b c)`, a single variadic symbol `args`, or a dotted rest list
// `(a b . rest)`. Grounded on ProcObj.params in
// original_source/model.h, which stores the raw, unparsed parameter
// EvalObj and re-walks it on every call; here it is parsed once, at
// closure-creation time, into a flat shape so a malformed dotted list
// is a SyntaxError at `lambda` time rather than at each call.
type ParamSpec struct {
	fixed []*runtime.Symbol
	rest  *runtime.Symbol // non-nil for variadic and dotted-rest shapes
}

// ParseParamSpec parses a lambda formal-parameter expression.
func ParseParamSpec(params runtime.Value) (ParamSpec, error) {
	if sym, ok := params.(*runtime.Symbol); ok {
		// (lambda args body...) — args binds the whole argument list
		return ParamSpec{rest: sym}, nil
	}
	var fixed []*runtime.Symbol
	cur := params
	for {
		if runtime.IsEmptyList(cur) {
			return ParamSpec{fixed: fixed}, nil
		}
		pair, ok := cur.(*runtime.Pair)
		if !ok {
			// dotted tail: (a b . rest)
			sym, ok := cur.(*runtime.Symbol)
			if !ok {
				return ParamSpec{}, schemeerrors.NewSyntaxError("lambda", "malformed parameter list")
			}
			return ParamSpec{fixed: fixed, rest: sym}, nil
		}
		sym, ok := pair.Car().(*runtime.Symbol)
		if !ok {
			return ParamSpec{}, schemeerrors.NewSyntaxError("lambda", "malformed parameter list")
		}
		fixed = append(fixed, sym)
		cur = pair.Cdr()
	}
}

// Bind introduces bindings for args (already-evaluated operand values,
// in order) into env, returning a WrongArgCount error if the arity
// does not match this spec.
func (p ParamSpec) Bind(st *runtime.Store, env *runtime.Environment, name string, args []runtime.Value) error {
	if p.rest == nil {
		if len(args) != len(p.fixed) {
			return schemeerrors.NewWrongArgCount(name, strconv.Itoa(len(p.fixed)), len(args))
		}
	} else if len(args) < len(p.fixed) {
		return schemeerrors.NewWrongArgCount(name, "at least "+strconv.Itoa(len(p.fixed)), len(args))
	}
	for i, sym := range p.fixed {
		env.Define(st, sym, args[i])
	}
	if p.rest != nil {
		env.Define(st, p.rest, runtime.SliceToList(st, args[len(p.fixed):]))
	}
	return nil
}
