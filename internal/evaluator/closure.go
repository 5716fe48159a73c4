package evaluator

import "github.com/cwbudde/go-syasi/internal/runtime"

// Closure is a user-defined procedure created by `lambda`: a body, the
// parameter shape, and the environment captured at creation time.
// Grounded on ProcObj in original_source/model.h and model.cpp.
type Closure struct {
	body   *runtime.Pair
	params ParamSpec
	env    *runtime.Environment
	name   string // set by `define` for nicer error messages/repr; "" otherwise
}

func (c *Closure) Kind() runtime.Kind { return runtime.KindOperator }
func (c *Closure) IsTrue() bool       { return true }

// Release implements runtime.Releasable. Closure deliberately does not
// implement Container/Trace: like Environment, a closure that
// captures an environment which (directly or transitively) holds the
// closure itself is a cycle left to Go's own tracing garbage
// collector rather than the custom mark pass, which is scoped to
// Pair and Vector only (see DESIGN.md).
func (c *Closure) Release(st *runtime.Store) {
	st.Expose(c.body)
	st.Expose(c.env)
}

// NewClosure allocates a Closure.
func NewClosure(st *runtime.Store, body *runtime.Pair, params ParamSpec, env *runtime.Environment) *Closure {
	c := &Closure{body: st.Attach(body).(*runtime.Pair), params: params, env: st.Attach(env).(*runtime.Environment)}
	return c
}

// Prepare implements Callable: ordinary procedure application always
// evaluates every operand.
func (c *Closure) Prepare(comb *runtime.Pair) int { return -1 }

// Call implements Callable: bind the evaluated operands to a fresh
// environment nested in the closure's captured one, and enter the body.
func (c *Closure) Call(ec *EvalContext, comb *runtime.Pair, args *runtime.Pair, envt *runtime.Environment, outer *Continuation) (*cursor, *runtime.Environment, *Continuation, error) {
	operands, _ := runtime.ListToSlice(args.Cdr())
	callEnv := runtime.NewEnclosedEnvironment(ec.Store, c.env)
	name := c.name
	if name == "" {
		name = "#<procedure>"
	}
	if err := c.params.Bind(ec.Store, callEnv, name, operands); err != nil {
		return nil, nil, nil, err
	}
	newCont, nextPC := enterBody(ec.Store, outer, callEnv, c.body, nil)
	return nextPC, callEnv, newCont, nil
}
