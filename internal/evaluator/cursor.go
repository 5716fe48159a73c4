package evaluator

import (
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// cursor is the evaluator's walk position over a combination's
// elements (operator, then operands) or a body's remaining
// expressions. It plays the role of the pc register plus the Pair.next
// field in original_source/eval.cpp and model.h, but — rather than
// mutating shared syntax-tree cons cells to splice out an untaken
// branch, which would corrupt a closure body evaluated more than
// once — a special form's Prepare hook instead bounds the walk with an
// explicit element budget (limit) kept entirely on this evaluator-local
// cursor. limit == -1 means unbounded (walk until the list runs out);
// limit == 0 means nothing more may be walked at this position,
// regardless of what the underlying list actually contains.
//
// A cursor over a single value already in hand, rather than the next
// cell of some list, is represented by isLeaf — avoiding consing a
// throwaway one-element list through the store for every call. final
// further distinguishes the two reasons a leaf exists: enterBody (which
// also carries cond's synthetic re-combination) hands back a leaf
// holding a raw, not-yet-evaluated expression (final == false, the main
// loop must still classify it); a builtin's computed result, quote's
// datum, and an empty (and)/(or)'s boolean are leaves
// holding an already-final value that must be delivered exactly as
// is, with no risk of a returned list or symbol being misread as a
// fresh combination or variable reference (final == true).
type cursor struct {
	node   *runtime.Pair
	isLeaf bool
	final  bool
	leaf   runtime.Value
	limit  int
}

// done reports whether this cursor has nothing left to walk: either
// its budget is exhausted or the underlying list has run out.
func (c *cursor) done() bool {
	if c == nil || c.limit == 0 {
		return true
	}
	if c.isLeaf {
		return false
	}
	return runtime.IsEmptyList(c.node)
}

// car returns the element at the cursor's current position.
func (c *cursor) car() runtime.Value {
	if c.isLeaf {
		return c.leaf
	}
	return c.node.Car()
}

// advance returns the cursor for the next position: the next cons
// cell in the chain (or an exhausted cursor at the end of a proper
// list or past a leaf), with the budget decremented unless unbounded.
func (c *cursor) advance() (*cursor, error) {
	if c.isLeaf {
		return &cursor{limit: 0}, nil
	}
	nextLimit := c.limit
	if nextLimit > 0 {
		nextLimit--
	}
	if nextLimit == 0 {
		return &cursor{limit: 0}, nil
	}
	cdr := c.node.Cdr()
	if runtime.IsEmptyList(cdr) {
		return &cursor{limit: 0}, nil
	}
	next, ok := cdr.(*runtime.Pair)
	if !ok {
		return nil, malformedCombinationError()
	}
	return &cursor{node: next, limit: nextLimit}, nil
}

// operandCursor returns the cursor over comb's operand list (comb.Cdr()),
// bounded by limit — the value a Callable's Prepare returned, which
// counts the operator itself as the first position. A limit of 1 means
// no operands are walked at all (Call sees an empty operand list).
func operandCursor(comb *runtime.Pair, limit int) (*cursor, error) {
	remaining := limit
	if remaining > 0 {
		remaining--
	}
	if remaining == 0 {
		return &cursor{limit: 0}, nil
	}
	cdr := comb.Cdr()
	if runtime.IsEmptyList(cdr) {
		return &cursor{limit: 0}, nil
	}
	next, ok := cdr.(*runtime.Pair)
	if !ok {
		return nil, malformedCombinationError()
	}
	return &cursor{node: next, limit: remaining}, nil
}

// singletonCursor produces a cursor over exactly v, still needing
// evaluation — the shape enterBody's first step, an if's chosen
// branch, and cond's synthetic re-combination resume from. st is
// accepted for symmetry with finalCursor and any future caller that
// needs to allocate; this leaf form does not.
func singletonCursor(st *runtime.Store, v runtime.Value) *cursor {
	return &cursor{isLeaf: true, leaf: v, limit: -1}
}

// finalCursor produces a cursor over an already-computed value that
// must be delivered exactly as is, never reclassified as a
// combination or a variable reference: a builtin's result, quote's
// datum, a lambda's closure, delay's promise, define's returned name
// when there is no value expression to evaluate (procedure shorthand or
// a bare name), or an empty (and)/(or)'s boolean.
func finalCursor(v runtime.Value) *cursor {
	return &cursor{isLeaf: true, final: true, leaf: v, limit: -1}
}

func malformedCombinationError() error {
	return schemeerrors.NewSyntaxError("", "combination is not a proper list")
}
