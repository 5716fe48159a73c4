package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-syasi/internal/builtins"
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/reader"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// newEvaluator builds a fully-wired evaluator: a store, a global
// environment with special forms and the builtin library installed,
// and the evaluator itself, mirroring how pkg/syasi.New assembles the
// same three pieces for a real program.
func newEvaluator(t *testing.T) (*evaluator.Evaluator, *runtime.Environment) {
	t.Helper()
	st := runtime.NewStore()
	envt := runtime.NewEnvironment(st)
	evaluator.Register(st, envt)
	ev := evaluator.New(st)
	builtins.Register(st, envt, ev)
	return ev, envt
}

func run(t *testing.T, source string) runtime.Value {
	t.Helper()
	ev, envt := newEvaluator(t)
	forms, err := reader.ReadAll(ev.Store(), source)
	require.NoError(t, err)
	var result runtime.Value = runtime.Unspecified{}
	for _, form := range forms {
		result, err = ev.Eval(envt, form)
		require.NoError(t, err)
	}
	return result
}

func TestArithmeticAndSpecialForms(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"arithmetic", "(+ 1 2 3)", "6"},
		{"if true", "(if (> 3 2) 'yes 'no)", "yes"},
		{"if false", "(if (< 3 2) 'yes 'no)", "no"},
		{"define and lookup", "(define x 10) (+ x 5)", "15"},
		{"lambda application", "((lambda (x y) (+ x y)) 3 4)", "7"},
		{"begin sequences for effect", "(begin 1 2 3)", "3"},
		{"and short-circuits", "(and 1 #f 3)", "#f"},
		{"or returns first true", "(or #f 2 3)", "2"},
		{"cond first match", "(cond (#f 'a) (#t 'b) (else 'c))", "b"},
		{"let binds locally", "(let ((x 1) (y 2)) (+ x y))", "3"},
		{"let* sees earlier bindings", "(let* ((x 1) (y (+ x 1))) y)", "2"},
		{"named recursion via define", "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5)", "120"},
		{"set! mutates binding", "(define x 1) (set! x 2) x", "2"},
		{"quote returns datum unevaluated", "(quote (a b c))", "(a b c)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestLetrecSupportsMutualRecursion(t *testing.T) {
	source := `
		(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
		  (even? 10))`
	assert.Equal(t, "#t", runtime.Repr(run(t, source)))
}

func TestDeepRecursionDoesNotOverflowGoStack(t *testing.T) {
	// A hundred thousand nested calls would blow a naive recursive-Go-function
	// evaluator; the explicit Continuation chain must carry this instead.
	source := `
		(define (count-down n)
		  (if (= n 0) 'done (count-down (- n 1))))
		(count-down 100000)`
	assert.Equal(t, "done", runtime.Repr(run(t, source)))
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	source := `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)`
	assert.Equal(t, "15", runtime.Repr(run(t, source)))
}

func TestUnboundVariableErrors(t *testing.T) {
	ev, envt := newEvaluator(t)
	form, err := reader.Read(ev.Store(), "undefined-name")
	require.NoError(t, err)
	_, err = ev.Eval(envt, form)
	assert.Error(t, err)
}

func TestApplyingNonOperatorErrors(t *testing.T) {
	ev, envt := newEvaluator(t)
	form, err := reader.Read(ev.Store(), "(1 2 3)")
	require.NoError(t, err)
	_, err = ev.Eval(envt, form)
	assert.Error(t, err)
}

func TestForceMemoizesDelayedComputation(t *testing.T) {
	source := `
		(define calls 0)
		(define p (delay (begin (set! calls (+ calls 1)) 42)))
		(force p)
		(force p)
		calls`
	assert.Equal(t, "1", runtime.Repr(run(t, source)), "force only evaluates the thunk once")
}

func TestApplyMapForEach(t *testing.T) {
	assert.Equal(t, "6", runtime.Repr(run(t, "(apply + '(1 2 3))")))
	assert.Equal(t, "(2 4 6)", runtime.Repr(run(t, "(map (lambda (x) (* x 2)) '(1 2 3))")))
	assert.Equal(t, "6", runtime.Repr(run(t, `
		(define total 0)
		(for-each (lambda (x) (set! total (+ total x))) '(1 2 3))
		total`)))
}
