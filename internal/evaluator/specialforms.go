package evaluator

import (
	"github.com/cwbudde/go-syasi/internal/runtime"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// specialForm is a Callable built from two plain functions rather than
// its own named type, mirroring the shape every one of the original
// source's SpecialOptXxx subclasses shares (a prepare override plus a
// call override) without needing one Go type per form.
type specialForm struct {
	name    string
	prepare func(comb *runtime.Pair) int
	call    func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error)
}

func (f *specialForm) Kind() runtime.Kind                 { return runtime.KindOperator }
func (f *specialForm) IsTrue() bool                       { return true }
func (f *specialForm) Prepare(comb *runtime.Pair) int      { return f.prepare(comb) }
func (f *specialForm) Call(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
	return f.call(ec, comb, args, envt, outer)
}

// rawOperands returns comb's operand expressions, unevaluated, as a Go
// slice — the shape every special form below uses to reach past what
// its Prepare admitted onto the stack.
func rawOperands(comb *runtime.Pair) []runtime.Value {
	ops, _ := runtime.ListToSlice(comb.Cdr())
	return ops
}

func syntaxErr(form, reason string) error {
	return schemeerrors.NewSyntaxError(form, reason)
}

// Register installs every special form this evaluator provides into
// envt, matching add_builtin_routines in original_source/eval.cpp
// (the ADD_ENTRY("if", ...) block), generalized with cond/when/unless/
// let family/begin/delay, which that early snapshot had not yet grown.
func Register(st *runtime.Store, envt *runtime.Environment) {
	forms := []*specialForm{
		quoteForm(),
		ifForm(),
		defineForm(),
		setForm(),
		lambdaForm(),
		beginForm(),
		andForm(),
		orForm(),
		condForm(),
		whenForm(),
		unlessForm(),
		letForm(),
		letStarForm(),
		letrecForm(),
		delayForm(),
		evalForm(),
	}
	for _, f := range forms {
		envt.Define(st, st.Intern(f.name), f)
	}
}

// --- quote ------------------------------------------------------------

func quoteForm() *specialForm {
	return &specialForm{
		name:    "quote",
		prepare: func(comb *runtime.Pair) int { return 1 }, // evaluate nothing; the datum is literal
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) != 1 {
				return nil, nil, nil, syntaxErr("quote", "expected exactly one datum")
			}
			return finalCursor(ops[0]), envt, outer, nil
		},
	}
}

// --- if -----------------------------------------------------------------

func ifForm() *specialForm {
	return &specialForm{
		name:    "if",
		prepare: func(comb *runtime.Pair) int { return 2 }, // operator + the test, nothing else
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) != 2 && len(ops) != 3 {
				return nil, nil, nil, syntaxErr("if", "expected (if test consequent [alternate])")
			}
			testVal, _ := runtime.ListToSlice(args.Cdr())
			var branch runtime.Value
			if testVal[0].IsTrue() {
				branch = ops[1]
			} else if len(ops) == 3 {
				branch = ops[2]
			} else {
				return finalCursor(runtime.Unspecified{}), envt, outer, nil
			}
			body := runtime.NewPair(ec.Store, branch, runtime.EmptyList)
			cont, pc := enterBody(ec.Store, outer, envt, body, nil)
			ec.Store.Expose(body)
			return pc, envt, cont, nil
		},
	}
}

// --- define / set! --------------------------------------------------------

func defineForm() *specialForm {
	return &specialForm{
		name:    "define",
		prepare: func(comb *runtime.Pair) int { return 1 }, // target and value are handled by hand below
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 1 {
				return nil, nil, nil, syntaxErr("define", "missing name")
			}
			switch target := ops[0].(type) {
			case *runtime.Symbol:
				if len(ops) > 2 {
					return nil, nil, nil, syntaxErr("define", "too many expressions for a variable definition")
				}
				if len(ops) == 1 {
					envt.Define(ec.Store, target, runtime.Unspecified{})
					return finalCursor(target), envt, outer, nil
				}
				return evalThenDefine(ec, envt, outer, target, ops[1])
			case *runtime.Pair:
				// (define (name . params) body...) — procedure shorthand.
				nameSym, ok := target.Car().(*runtime.Symbol)
				if !ok {
					return nil, nil, nil, syntaxErr("define", "malformed procedure header")
				}
				if len(ops) < 2 {
					return nil, nil, nil, syntaxErr("define", "procedure definition needs a body")
				}
				spec, err := ParseParamSpec(target.Cdr())
				if err != nil {
					return nil, nil, nil, err
				}
				body := runtime.SliceToList(ec.Store, ops[1:]).(*runtime.Pair)
				closure := NewClosure(ec.Store, body, spec, envt)
				closure.name = nameSym.Name()
				envt.Define(ec.Store, nameSym, closure)
				return finalCursor(nameSym), envt, outer, nil
			default:
				return nil, nil, nil, syntaxErr("define", "name must be a symbol or procedure header")
			}
		},
	}
}

// evalThenDefine evaluates valueExpr in envt, then binds target to it
// once the value is ready — done via a frameBody with a one-shot
// onValue hook that performs the Define as its side effect.
func evalThenDefine(ec *EvalContext, envt *runtime.Environment, outer *Continuation, target *runtime.Symbol, valueExpr runtime.Value) (*cursor, *runtime.Environment, *Continuation, error) {
	body := runtime.NewPair(ec.Store, valueExpr, runtime.EmptyList)
	onValue := func(v runtime.Value) (bool, runtime.Value) {
		if cl, ok := v.(*Closure); ok && cl.name == "" {
			cl.name = target.Name()
		}
		envt.Define(ec.Store, target, v)
		return true, target
	}
	cont, pc := enterBody(ec.Store, outer, envt, body, onValue)
	ec.Store.Expose(body)
	return pc, envt, cont, nil
}

func setForm() *specialForm {
	return &specialForm{
		name:    "set!",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) != 2 {
				return nil, nil, nil, syntaxErr("set!", "expected (set! name value)")
			}
			target, ok := ops[0].(*runtime.Symbol)
			if !ok {
				return nil, nil, nil, syntaxErr("set!", "target must be a symbol")
			}
			if _, err := envt.Get(target); err != nil {
				return nil, nil, nil, err
			}
			onValue := func(v runtime.Value) (bool, runtime.Value) {
				envt.Set(ec.Store, target, v)
				return true, v
			}
			body := runtime.NewPair(ec.Store, ops[1], runtime.EmptyList)
			cont, pc := enterBody(ec.Store, outer, envt, body, onValue)
			ec.Store.Expose(body)
			return pc, envt, cont, nil
		},
	}
}

// --- lambda --------------------------------------------------------------

func lambdaForm() *specialForm {
	return &specialForm{
		name:    "lambda",
		prepare: func(comb *runtime.Pair) int { return 1 }, // never evaluate params or body
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 2 {
				return nil, nil, nil, syntaxErr("lambda", "expected (lambda params body...)")
			}
			spec, err := ParseParamSpec(ops[0])
			if err != nil {
				return nil, nil, nil, err
			}
			body := runtime.SliceToList(ec.Store, ops[1:]).(*runtime.Pair)
			closure := NewClosure(ec.Store, body, spec, envt)
			return finalCursor(closure), envt, outer, nil
		},
	}
}

// --- begin -----------------------------------------------------------------

func beginForm() *specialForm {
	return &specialForm{
		name:    "begin",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) == 0 {
				return finalCursor(runtime.Unspecified{}), envt, outer, nil
			}
			body := runtime.SliceToList(ec.Store, ops).(*runtime.Pair)
			cont, pc := enterBody(ec.Store, outer, envt, body, nil)
			ec.Store.Expose(body)
			return pc, envt, cont, nil
		},
	}
}

// --- and / or ---------------------------------------------------------------

func andForm() *specialForm {
	return &specialForm{
		name:    "and",
		prepare: func(comb *runtime.Pair) int { return 1 }, // operator only; Call walks the clauses itself
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			return evalShortCircuit(ec, comb, envt, outer, "and", true)
		},
	}
}

func orForm() *specialForm {
	return &specialForm{
		name:    "or",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			return evalShortCircuit(ec, comb, envt, outer, "or", false)
		},
	}
}

// evalShortCircuit implements both and (stopOnFalse == true, stop the
// first time a clause is false) and or (stop the first time a clause
// is true): clauses run one at a time through a single reused
// frameBody, advancing an index captured by its onValue closure, so
// neither host recursion nor a rebuilt synthetic combination is needed
// to move on to the next clause.
func evalShortCircuit(ec *EvalContext, comb *runtime.Pair, envt *runtime.Environment, outer *Continuation, name string, stopOnFalse bool) (*cursor, *runtime.Environment, *Continuation, error) {
	ops := rawOperands(comb)
	if len(ops) == 0 {
		return finalCursor(runtime.NewBoolean(ec.Store, stopOnFalse)), envt, outer, nil
	}
	i := 0
	body := runtime.NewPair(ec.Store, ops[0], runtime.EmptyList)
	cont, pc := enterBody(ec.Store, outer, envt, body, nil)
	ec.Store.Expose(body)
	cont.onValue = func(v runtime.Value) (bool, runtime.Value) {
		decisive := v.IsTrue() != stopOnFalse
		i++
		if decisive || i >= len(ops) {
			return true, v
		}
		redirectBody(ec.Store, cont, runtime.NewPair(ec.Store, ops[i], runtime.EmptyList))
		return false, v
	}
	return pc, envt, cont, nil
}

// --- cond --------------------------------------------------------------

func condForm() *specialForm {
	return &specialForm{
		name:    "cond",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			clauses := rawOperands(comb)
			if len(clauses) == 0 {
				return finalCursor(runtime.Unspecified{}), envt, outer, nil
			}
			clause, ok := clauses[0].(*runtime.Pair)
			if !ok {
				return nil, nil, nil, syntaxErr("cond", "malformed clause")
			}
			parts, _ := runtime.ListToSlice(clause)
			if len(parts) == 0 {
				return nil, nil, nil, syntaxErr("cond", "empty clause")
			}
			if sym, ok := parts[0].(*runtime.Symbol); ok && sym.Name() == "else" {
				return runClauseBody(ec, parts[1:], envt, outer)
			}
			rest := parts[1:]
			remaining := clauses[1:]
			operator := comb.Car()
			testBody := runtime.NewPair(ec.Store, parts[0], runtime.EmptyList)
			cont, pc := enterBody(ec.Store, outer, envt, testBody, nil)
			ec.Store.Expose(testBody)
			// Test false and clauses remain: resume by evaluating a
			// freshly synthesized (cond remaining...) combination,
			// walking the ordinary combination path straight back into
			// this same Call for the next clause — no recursive Go call
			// or clause-index bookkeeping needed.
			cont.onValue = func(v runtime.Value) (bool, runtime.Value) {
				if v.IsTrue() {
					if len(rest) == 0 {
						return true, v
					}
					redirectBody(ec.Store, cont, runtime.SliceToList(ec.Store, rest).(*runtime.Pair))
					cont.onValue = nil
					return false, v
				}
				if len(remaining) == 0 {
					return true, runtime.Unspecified{}
				}
				next := runtime.SliceToList(ec.Store, append([]runtime.Value{operator}, remaining...))
				redirectBody(ec.Store, cont, runtime.NewPair(ec.Store, next, runtime.EmptyList))
				cont.onValue = nil
				return false, v
			}
			return pc, envt, cont, nil
		},
	}
}

func runClauseBody(ec *EvalContext, body []runtime.Value, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
	if len(body) == 0 {
		return finalCursor(runtime.Unspecified{}), envt, outer, nil
	}
	list := runtime.SliceToList(ec.Store, body).(*runtime.Pair)
	cont, pc := enterBody(ec.Store, outer, envt, list, nil)
	ec.Store.Expose(list)
	return pc, envt, cont, nil
}

// --- when / unless -------------------------------------------------------

func whenForm() *specialForm   { return guardedBody("when", true) }
func unlessForm() *specialForm { return guardedBody("unless", false) }

func guardedBody(name string, runWhenTrue bool) *specialForm {
	return &specialForm{
		name:    name,
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 1 {
				return nil, nil, nil, syntaxErr(name, "missing test")
			}
			rest := ops[1:]
			testBody := runtime.NewPair(ec.Store, ops[0], runtime.EmptyList)
			cont, pc := enterBody(ec.Store, outer, envt, testBody, nil)
			ec.Store.Expose(testBody)
			cont.onValue = func(v runtime.Value) (bool, runtime.Value) {
				if v.IsTrue() != runWhenTrue || len(rest) == 0 {
					return true, runtime.Unspecified{}
				}
				redirectBody(ec.Store, cont, runtime.SliceToList(ec.Store, rest).(*runtime.Pair))
				cont.onValue = nil
				return false, v
			}
			return pc, envt, cont, nil
		},
	}
}

// --- let / let* / letrec -------------------------------------------------

func letForm() *specialForm {
	return &specialForm{
		name:    "let",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 1 {
				return nil, nil, nil, syntaxErr("let", "missing bindings")
			}
			names, inits, err := parseBindings(ops[0])
			if err != nil {
				return nil, nil, nil, err
			}
			newEnv := runtime.NewEnclosedEnvironment(ec.Store, envt)
			// Plain let evaluates every init in the original, outer
			// environment: none of the new bindings are visible to any
			// of the inits, only to the body.
			return bindSequentially(ec, names, inits, envt, newEnv, ops[1:], outer)
		},
	}
}

// bindSequentially binds names[i] to inits[i]'s value, in order, all
// into newEnv, then runs body in newEnv. initEnv is the (fixed, never
// reassigned) environment each init expression is evaluated in: the
// original outer environment for let, or newEnv itself for let*/letrec
// (which never swap environments mid-binding, only grow the one they
// already have). A single reused frameBody Continuation walks every
// init and then the body, its onValue closure advancing a captured
// index — no Go recursion, and no synthetic re-combination needed,
// since every step here shares one environment object throughout.
func bindSequentially(ec *EvalContext, names []*runtime.Symbol, inits []runtime.Value, initEnv, newEnv *runtime.Environment, body []runtime.Value, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
	if len(names) == 0 {
		return runClauseBody(ec, body, newEnv, outer)
	}
	i := 0
	initBody := runtime.NewPair(ec.Store, inits[0], runtime.EmptyList)
	cont, pc := enterBody(ec.Store, outer, initEnv, initBody, nil)
	ec.Store.Expose(initBody)
	cont.onValue = func(v runtime.Value) (bool, runtime.Value) {
		newEnv.Define(ec.Store, names[i], v)
		i++
		if i < len(names) {
			redirectBody(ec.Store, cont, runtime.NewPair(ec.Store, inits[i], runtime.EmptyList))
			return false, v
		}
		if len(body) == 0 {
			return true, runtime.Unspecified{}
		}
		redirectBody(ec.Store, cont, runtime.SliceToList(ec.Store, body).(*runtime.Pair))
		cont.envt = newEnv
		cont.onValue = nil
		return false, v
	}
	return pc, initEnv, cont, nil
}

func parseBindings(spec runtime.Value) ([]*runtime.Symbol, []runtime.Value, error) {
	items, ok := runtime.ListToSlice(spec)
	if !ok {
		return nil, nil, syntaxErr("let", "bindings must be a proper list")
	}
	names := make([]*runtime.Symbol, 0, len(items))
	inits := make([]runtime.Value, 0, len(items))
	for _, item := range items {
		pair, ok := item.(*runtime.Pair)
		if !ok {
			return nil, nil, syntaxErr("let", "each binding must be (name init)")
		}
		parts, _ := runtime.ListToSlice(pair)
		if len(parts) != 2 {
			return nil, nil, syntaxErr("let", "each binding must be (name init)")
		}
		sym, ok := parts[0].(*runtime.Symbol)
		if !ok {
			return nil, nil, syntaxErr("let", "binding name must be a symbol")
		}
		names = append(names, sym)
		inits = append(inits, parts[1])
	}
	return names, inits, nil
}

func letStarForm() *specialForm {
	return &specialForm{
		name:    "let*",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 1 {
				return nil, nil, nil, syntaxErr("let*", "missing bindings")
			}
			names, inits, err := parseBindings(ops[0])
			if err != nil {
				return nil, nil, nil, err
			}
			newEnv := runtime.NewEnclosedEnvironment(ec.Store, envt)
			// let*: each init is evaluated in newEnv itself, which
			// already holds every binding defined before it.
			return bindSequentially(ec, names, inits, newEnv, newEnv, ops[1:], outer)
		},
	}
}

func letrecForm() *specialForm {
	return &specialForm{
		name:    "letrec",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) < 1 {
				return nil, nil, nil, syntaxErr("letrec", "missing bindings")
			}
			names, inits, err := parseBindings(ops[0])
			if err != nil {
				return nil, nil, nil, err
			}
			newEnv := runtime.NewEnclosedEnvironment(ec.Store, envt)
			for _, name := range names {
				newEnv.Define(ec.Store, name, runtime.Unspecified{})
			}
			// letrec: every name is already bound (to Unspecified) in
			// newEnv before any init runs, so mutually recursive
			// references among the inits resolve without error, though
			// referencing one before its own init has run yields
			// Unspecified rather than the eventual value.
			return bindSequentially(ec, names, inits, newEnv, newEnv, ops[1:], outer)
		},
	}
}

// --- delay ---------------------------------------------------------------

func delayForm() *specialForm {
	return &specialForm{
		name:    "delay",
		prepare: func(comb *runtime.Pair) int { return 1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			ops := rawOperands(comb)
			if len(ops) != 1 {
				return nil, nil, nil, syntaxErr("delay", "expected exactly one expression")
			}
			thunk := NewClosure(ec.Store, runtime.NewPair(ec.Store, ops[0], runtime.EmptyList), ParamSpec{}, envt)
			promise := runtime.NewPromise(ec.Store, thunk)
			return finalCursor(promise), envt, outer, nil
		},
	}
}

// --- eval ------------------------------------------------------------------

func evalForm() *specialForm {
	return &specialForm{
		name:    "eval",
		prepare: func(comb *runtime.Pair) int { return -1 },
		call: func(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
			operands, _ := runtime.ListToSlice(args.Cdr())
			if len(operands) != 1 {
				return nil, nil, nil, syntaxErr("eval", "expected exactly one expression")
			}
			body := runtime.NewPair(ec.Store, operands[0], runtime.EmptyList)
			cont, pc := enterBody(ec.Store, outer, envt, body, nil)
			ec.Store.Expose(body)
			return pc, envt, cont, nil
		},
	}
}
