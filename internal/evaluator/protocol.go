package evaluator

import "github.com/cwbudde/go-syasi/internal/runtime"

// Callable is the operator protocol (§4.5): the uniform interface
// special forms, closures, and builtin procedures all implement so the
// evaluator's main loop can dispatch through one mechanism regardless
// of which kind of operator it is applying. Grounded on OptObj in
// original_source/model.h, whose own two virtual methods (prepare,
// call) translate directly.
type Callable interface {
	runtime.Value

	// Prepare is invoked once, with the whole combination pair (its
	// Car is the operator position currently being entered), before
	// any operand has been evaluated. It returns how many leading
	// positions of the combination — counting the operator itself as
	// position 1 — should be walked onto the stack before Call runs.
	// Returning -1 means "walk every position" (the default for
	// ordinary closures and builtins); special forms that must avoid
	// evaluating some of their operands (if, and, or, cond, ...)
	// return a smaller count.
	Prepare(comb *runtime.Pair) int

	// Call receives the original, unevaluated combination (comb,
	// needed by special forms that must inspect operand expressions
	// they never asked Prepare to walk — if's branches, lambda's
	// parameter list, quote's argument) and the evaluated argument
	// list (args.Car() is this operator's own value, args.Cdr() the
	// operand values Prepare admitted), plus the environment they were
	// evaluated in and the continuation to resume once this call's
	// result is ready. It returns the cursor the evaluator should
	// evaluate next, and the (possibly updated) environment and
	// continuation that cursor runs under. A builtin returns a cursor
	// over its already-computed result (self-evaluating, so the main
	// loop delivers it straight back to outer) and outer unchanged; a
	// closure or special form that must run further expressions
	// returns whatever enterBody handed back.
	Call(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error)
}
