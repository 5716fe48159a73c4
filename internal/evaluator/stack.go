// Package evaluator implements the operator protocol (§4.5) and the
// iterative tree-walking evaluator (§4.4): an explicit, bounded
// evaluation stack plus an explicit linked continuation chain stand in
// for the host call stack, so a deeply nested or self-recursive
// program runs in a flat Go loop rather than unbounded Go recursion.
// These two components share one package for the same reason
// runtime merges Value/Store/Environment: Callable's Call signature
// needs the Stack and Continuation types directly, and a three-way
// package split (operator / stack / continuation) would just recreate
// the cycle via import edges instead of removing it.
package evaluator

import (
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// stackSize bounds the evaluation stack, mirroring eval_stack's fixed
// EVAL_STACK_SIZE array in the original source's eval.cpp. Overflowing
// it is a fatal InternalError, never silently truncated.
const stackSize = 1 << 16

// Stack is the evaluator's explicit operand-value stack: one entry per
// argument evaluated so far for whichever combination the main loop is
// currently walking. A frameCombination Continuation remembers the
// stack depth (base) at which its own operand list started, so
// collectSince can slice off exactly the values it contributed without
// needing an interleaved mark entry — FrameObj's two concrete
// subclasses (EvalObj and RetAddr) in original_source/model.h collapse
// here into a plain slice plus externally-held base indices.
type Stack struct {
	values []runtime.Value
}

func newStack() *Stack {
	return &Stack{values: make([]runtime.Value, 0, 64)}
}

// depth reports the current stack height, for a frame to remember as
// its base before it starts pushing its own operand values.
func (s *Stack) depth() int { return len(s.values) }

func (s *Stack) pushValue(v runtime.Value) error {
	if len(s.values) >= stackSize {
		return schemeerrors.NewInternalError("evaluation stack overflow")
	}
	s.values = append(s.values, v)
	return nil
}

// collectSince pops and returns every value pushed since base (in
// original left-to-right order), base itself becoming the new depth.
// It is an internal error if base is beyond the current depth.
func (s *Stack) collectSince(base int) ([]runtime.Value, error) {
	if base > len(s.values) {
		return nil, schemeerrors.NewInternalError("evaluation stack underflow")
	}
	args := append([]runtime.Value(nil), s.values[base:]...)
	s.values = s.values[:base]
	return args, nil
}
