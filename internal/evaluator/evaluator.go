package evaluator

import (
	"io"
	"os"

	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// EvalContext bundles the pieces every Callable needs while it runs:
// the value store, to allocate and to attach/expose references, the
// shared operand-value stack the main loop drives, and the output
// sink display/write/newline write to.
type EvalContext struct {
	Store  *runtime.Store
	Stack  *Stack
	Writer io.Writer
}

// Evaluator is one self-contained evaluation session: a value store
// and the (reusable) operand stack the iterative loop drives across
// however many top-level forms are run through it. Grounded on
// Evaluator in original_source/eval.h, with one deliberate departure:
// that source advances a multi-expression closure body by mutating a
// shared RetAddr/proc_body chain in a way that only resolves correctly
// for a single-expression body; this evaluator instead
// sequences body expressions one at a time through enterBody, which is
// unambiguous for any number of expressions.
type Evaluator struct {
	store  *runtime.Store
	stack  *Stack
	writer io.Writer
}

// New creates an Evaluator backed by store, writing display/write/
// newline output to os.Stdout until SetOutput overrides it.
func New(store *runtime.Store) *Evaluator {
	return &Evaluator{store: store, stack: newStack(), writer: os.Stdout}
}

// Store returns the evaluator's value store, so callers (the REPL
// facade, builtins registration) can allocate values against the same
// store the evaluator itself uses.
func (ev *Evaluator) Store() *runtime.Store { return ev.store }

// SetOutput redirects display/write/newline output to w.
func (ev *Evaluator) SetOutput(w io.Writer) { ev.writer = w }

// Eval runs expr to a value in envt, then runs a store Collect. The
// whole evaluation — however deeply the Scheme program itself nests
// combinations or bodies — runs inside this one Go stack frame: nested
// evaluation state lives on the explicit Continuation chain (cont) and
// the explicit operand Stack (ec.Stack), never on the Go call stack
// (§9). The exception is a builtin that calls back into Apply
// (apply/map/for-each/force), which starts a nested run for each such
// call.
func (ev *Evaluator) Eval(envt *runtime.Environment, expr runtime.Value) (runtime.Value, error) {
	ec := &EvalContext{Store: ev.store, Stack: ev.stack, Writer: ev.writer}
	pc := singletonCursor(ec.Store, expr)
	val, err := ev.run(ec, envt, pc, nil)
	if err != nil {
		return nil, err
	}
	if err := ec.Store.Collect(); err != nil {
		return nil, err
	}
	return val, nil
}

// Apply invokes callable on args (already evaluated, left to right),
// driving it to completion through the same trampoline Eval uses. This
// is what the modern apply/map/for-each builtins (§4.6) need and plain
// BuiltinFunc values don't: those procedures don't just compute a
// result from already-evaluated arguments, they invoke another
// procedure — which, if it is itself a Closure, suspends into body
// evaluation rather than returning synchronously the way Builtin.Call
// does. Grounded on the same Call protocol every combination in Eval
// goes through; there is no analogous entry point in
// original_source/eval.cpp because that table never defines apply.
func (ev *Evaluator) Apply(envt *runtime.Environment, callable Callable, args []runtime.Value) (runtime.Value, error) {
	ec := &EvalContext{Store: ev.store, Stack: ev.stack, Writer: ev.writer}
	argValues := append([]runtime.Value{callable}, args...)
	argsPair, ok := runtime.SliceToList(ec.Store, argValues).(*runtime.Pair)
	if !ok {
		return nil, schemeerrors.NewInternalError("apply produced an empty argument list")
	}
	pc, env, cont, err := callable.Call(ec, argsPair, argsPair, envt, nil)
	ec.Store.Expose(argsPair)
	if err != nil {
		return nil, err
	}
	return ev.run(ec, env, pc, cont)
}

// run drives the explicit Continuation chain (cont) and operand Stack
// (ec.Stack) to a final value, starting from pc in env. It is the
// shared trampoline body for both Eval (which starts with an empty
// chain) and Apply (which starts mid-chain, already inside a Call).
func (ev *Evaluator) run(ec *EvalContext, env *runtime.Environment, pc *cursor, cont *Continuation) (runtime.Value, error) {
outer:
	for {
		// Turn the current cursor position into a value: a final
		// leaf (a builtin's result, quote's datum, ...) is delivered
		// exactly as is; anything else is a raw expression that must
		// be classified — descending into a fresh combination
		// (pushing a frameCombination and restarting this loop with
		// the operator position as pc), or resolved immediately as a
		// self-evaluating literal or a variable reference.
		var val runtime.Value
		if pc.isLeaf && pc.final {
			val = pc.leaf
		} else {
			cur := pc.car()
			switch {
			case runtime.IsPair(cur):
				comb := cur.(*runtime.Pair)
				var next *cursor
				cont, next = enterCombination(ec.Stack, cont, env, comb)
				pc = next
				continue outer

			case runtime.IsEmptyList(cur):
				return nil, schemeerrors.NewSyntaxError("", "empty combination")

			default:
				if sym, ok := cur.(*runtime.Symbol); ok {
					v, err := env.Get(sym)
					if err != nil {
						return nil, err
					}
					val = v
				} else {
					val = cur
				}
			}
		}

		// val is ready; resolve it against the innermost pending
		// frame, repeating until either nothing is pending (done) or
		// a new cur needs to run (continue outer).
		for {
			if cont == nil {
				return val, nil
			}

			switch cont.kind {
			case frameCombination:
				if cont.callable == nil {
					callable, ok := val.(Callable)
					if !ok {
						return nil, schemeerrors.NewNotApplicable(runtime.Repr(val))
					}
					cont.callable = callable
					opc, err := operandCursor(cont.comb, callable.Prepare(cont.comb))
					if err != nil {
						return nil, err
					}
					cont.pc = opc
				} else {
					if err := ec.Stack.pushValue(val); err != nil {
						return nil, err
					}
					next, err := cont.pc.advance()
					if err != nil {
						return nil, err
					}
					cont.pc = next
				}

				if !cont.pc.done() {
					env = cont.envt
					pc = cont.pc
					continue outer
				}

				operands, err := ec.Stack.collectSince(cont.base)
				if err != nil {
					return nil, err
				}
				argValues := append([]runtime.Value{cont.callable}, operands...)
				argsPair, ok := runtime.SliceToList(ec.Store, argValues).(*runtime.Pair)
				if !ok {
					return nil, schemeerrors.NewInternalError("combination produced an empty argument list")
				}
				nextPC, newEnv, newCont, err := cont.callable.Call(ec, cont.comb, argsPair, cont.envt, cont.prev)
				ec.Store.Expose(argsPair)
				if err != nil {
					return nil, err
				}
				env, cont = newEnv, newCont
				pc = nextPC
				continue outer

			case frameBody:
				stop, result := false, val
				if cont.onValue != nil {
					stop, result = cont.onValue(val)
				}
				rest := cont.body.Cdr()
				if stop || runtime.IsEmptyList(rest) {
					val = result
					cont = cont.prev
					continue
				}
				nextBody, ok := rest.(*runtime.Pair)
				if !ok {
					return nil, schemeerrors.NewSyntaxError("", "improper body")
				}
				cont.body = nextBody
				env = cont.envt
				pc = singletonCursor(ec.Store, nextBody.Car())
				continue outer
			}
		}
	}
}
