package evaluator

import (
	"strconv"

	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// BuiltinFunc is the signature every builtin procedure implements: the
// operands, already evaluated left to right, plus the procedure's own
// name for error messages. Grounded on BuiltinProcObj::call in
// original_source/model.cpp, which calls a bare C function pointer
// over an already-evaluated argument vector.
type BuiltinFunc func(ec *EvalContext, args []runtime.Value) (runtime.Value, error)

// Builtin wraps a native Go procedure as a Callable. It always walks
// every operand (Prepare returns -1) and never needs a Continuation:
// it runs to completion synchronously and hands its result straight
// back to the caller, exactly like BuiltinProcObj in the original,
// which never pushes a RetAddr of its own.
type Builtin struct {
	name string
	fn   BuiltinFunc
	// minArgs/maxArgs bound arity before fn runs; maxArgs < 0 means
	// unbounded (variadic).
	minArgs, maxArgs int
}

// NewBuiltin registers a native procedure. maxArgs < 0 means variadic.
func NewBuiltin(name string, minArgs, maxArgs int, fn BuiltinFunc) *Builtin {
	return &Builtin{name: name, fn: fn, minArgs: minArgs, maxArgs: maxArgs}
}

func (b *Builtin) Kind() runtime.Kind { return runtime.KindOperator }
func (b *Builtin) IsTrue() bool       { return true }

func (b *Builtin) Name() string { return b.name }

// Prepare implements Callable: a builtin always evaluates every operand.
func (b *Builtin) Prepare(comb *runtime.Pair) int { return -1 }

// Call implements Callable: a builtin runs to completion synchronously
// and hands its result back as a self-evaluating literal, so the main
// loop delivers it to outer on the very next iteration with no further
// suspension.
func (b *Builtin) Call(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
	operands, _ := runtime.ListToSlice(args.Cdr())
	if len(operands) < b.minArgs || (b.maxArgs >= 0 && len(operands) > b.maxArgs) {
		return nil, nil, nil, schemeerrors.NewWrongArgCount(b.name, arityWant(b.minArgs, b.maxArgs), len(operands))
	}
	result, err := b.fn(ec, operands)
	if err != nil {
		return nil, nil, nil, err
	}
	return finalCursor(result), envt, outer, nil
}

func arityWant(min, max int) string {
	switch {
	case max < 0:
		return "at least " + strconv.Itoa(min)
	case min == max:
		return strconv.Itoa(min)
	default:
		return strconv.Itoa(min) + " to " + strconv.Itoa(max)
	}
}
