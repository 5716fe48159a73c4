package builtins

import (
	"fmt"

	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// registerIO installs display/write/newline, the output side of §4.6,
// grounded on eval_print/write_object in original_source/eval.cpp. All
// three write through ec.Writer (the Evaluator's current output sink,
// os.Stdout by default) rather than directly to os.Stdout, so a
// RunString caller can capture output the way the teacher's REPL
// captures interpreter output through an explicit io.Writer.
func registerIO(st *runtime.Store, envt *runtime.Environment) {
	def(st, envt, "display", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprint(ec.Writer, displayString(args[0]))
		return runtime.Unspecified{}, nil
	})

	def(st, envt, "write", 1, 1, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprint(ec.Writer, runtime.Repr(args[0]))
		return runtime.Unspecified{}, nil
	})

	def(st, envt, "newline", 0, 0, func(ec *evaluator.EvalContext, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(ec.Writer)
		return runtime.Unspecified{}, nil
	})
}

// displayString renders v the way `display` wants it: like Repr, except
// a string's own contents print unquoted and unescaped.
func displayString(v runtime.Value) string {
	if s, ok := v.(*runtime.String); ok {
		return s.Text()
	}
	return runtime.Repr(v)
}
