package evaluator

import "github.com/cwbudde/go-syasi/internal/runtime"

// frameKind discriminates the two reasons a Continuation link exists.
type frameKind int

const (
	// frameCombination records a combination whose operator and/or
	// operands are still being walked left to right; each value
	// produced is pushed onto the value stack until the walk is
	// bounded off (see Callable.Prepare), at which point the
	// collected argument list is handed to the operator's Call.
	frameCombination frameKind = iota
	// frameBody records a sequence of one or more expressions — a
	// closure body, an if branch, a cond clause, a let body, an
	// and/or remainder — evaluated one at a time for effect, keeping
	// only (conditionally, via onValue) the last value produced.
	frameBody
)

// Continuation is one link in the explicit control chain the
// evaluator walks instead of relying on Go call-stack recursion
// (§9). Grounded on Continuation in original_source/model.h,
// generalized to also cover combination-argument walking (which the
// original spreads across Continuation plus a separate RetAddr chain)
// in a single tagged shape.
type Continuation struct {
	prev *Continuation
	kind frameKind
	envt *runtime.Environment

	// frameCombination fields.
	comb     *runtime.Pair // the combination being walked; comb.Car() is the operator position
	pc       *cursor       // next element of comb still to evaluate
	callable Callable      // set once the operator position has resolved to a value
	base     int           // stack depth at which this combination's operand values start

	// frameBody fields.
	body    *runtime.Pair
	onValue shortCircuit
}

// shortCircuit is consulted after each body expression evaluates. If
// it reports stop == true, the frame resolves immediately with
// result, without evaluating any remaining body expressions — the
// mechanism and/or use to stop at the first disqualifying value
// rather than always running every clause. A nil shortCircuit means
// "never stop early" (ordinary sequential bodies: begin, closure
// bodies, let-family bodies, cond clause bodies).
type shortCircuit func(v runtime.Value) (stop bool, result runtime.Value)

// enterCombination starts walking a freshly encountered combination:
// it creates a frameCombination link and returns the cursor positioned
// at the operator, which the main loop evaluates first so Prepare can
// see its value before any operand is walked.
func enterCombination(stack *Stack, prev *Continuation, envt *runtime.Environment, comb *runtime.Pair) (*Continuation, *cursor) {
	cont := &Continuation{prev: prev, kind: frameCombination, envt: envt, comb: comb, base: stack.depth()}
	return cont, &cursor{node: comb, limit: -1}
}

// enterBody creates a frameBody link to evaluate body (a proper list
// of at least one expression) in envt under prev, returning the cursor
// positioned at body's first expression.
func enterBody(st *runtime.Store, prev *Continuation, envt *runtime.Environment, body *runtime.Pair, onValue shortCircuit) (*Continuation, *cursor) {
	cont := &Continuation{prev: prev, kind: frameBody, envt: envt, body: body, onValue: onValue}
	return cont, singletonCursor(st, body.Car())
}

// redirectBody makes cont resume evaluating next (a proper, non-empty
// expression list) the moment its current onValue call returns,
// rather than advancing to whatever cont.body's own Cdr already
// happened to hold. The main loop always computes the upcoming
// expression from cont.body.Cdr() after onValue runs, one step behind
// any plain assignment onValue might make — so an onValue that wants
// to redirect rather than merely continue or stop must go through
// this helper, which prepends a throwaway element so that Cdr lands
// exactly on next.
func redirectBody(st *runtime.Store, cont *Continuation, next *runtime.Pair) {
	wrapper := runtime.NewPair(st, runtime.Unspecified{}, next)
	cont.body = wrapper
	st.Expose(wrapper)
}
