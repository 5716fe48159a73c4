// Package syasi is the embeddable facade over the interpreter: a
// caller constructs an Interpreter, feeds it source text, and reads
// back values and their printed form, without needing to know about
// the store, environment, evaluator, or reader underneath. Grounded on
// pkg/dwscript's New/Eval facade shape in the teacher repo, adapted to
// a single run_expr(tree) -> value interface (§6) instead of a
// multi-stage lex/parse/typecheck/interpret pipeline.
package syasi

import (
	"io"

	"github.com/cwbudde/go-syasi/internal/builtins"
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/reader"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// Value is the interpreter's external value type: whatever a
// top-level form evaluates to.
type Value = runtime.Value

// Interpreter is one self-contained session: its own value store, its
// own global environment pre-seeded with the builtin procedure
// library, and the evaluator driving both.
type Interpreter struct {
	store *runtime.Store
	envt  *runtime.Environment
	ev    *evaluator.Evaluator
}

// New creates an Interpreter. Builtin output (display/write/newline)
// goes to os.Stdout until SetOutput is called.
func New() *Interpreter {
	st := runtime.NewStore()
	envt := runtime.NewEnvironment(st)
	evaluator.Register(st, envt)
	ev := evaluator.New(st)
	builtins.Register(st, envt, ev)
	return &Interpreter{store: st, envt: envt, ev: ev}
}

// SetOutput redirects builtin output (display/write/newline) to w.
func (in *Interpreter) SetOutput(w io.Writer) { in.ev.SetOutput(w) }

// RunString reads every top-level form out of source and evaluates
// each in turn, returning the value of the last one (Unspecified if
// source contains no forms). This is the §6 run_expr(tree) -> value
// interface, extended to a full program by reading and evaluating
// one form at a time rather than requiring the caller to parse first.
func (in *Interpreter) RunString(source string) (Value, error) {
	forms, err := reader.ReadAll(in.store, source)
	if err != nil {
		return nil, err
	}
	var result Value = runtime.Unspecified{}
	for _, form := range forms {
		result, err = in.ev.Eval(in.envt, form)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Eval evaluates a single already-read form directly, without going
// through the reader — the entry point for callers that build or
// transform syntax trees programmatically rather than reading them
// from source text.
func (in *Interpreter) Eval(form Value) (Value, error) {
	return in.ev.Eval(in.envt, form)
}

// Repr renders v the way `write` would: the external representation
// read back by the reader, not the unquoted form `display` produces.
func Repr(v Value) string { return runtime.Repr(v) }

// Store exposes the interpreter's value store, for callers that need
// to allocate values (e.g. to pass as arguments to Eval) against the
// same store the interpreter itself uses.
func (in *Interpreter) Store() *runtime.Store { return in.store }

// Environment exposes the interpreter's top-level environment, for
// callers that want to define additional bindings (host-provided
// procedures, pre-seeded variables) before running a program.
func (in *Interpreter) Environment() *runtime.Environment { return in.envt }
