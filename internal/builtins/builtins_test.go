package builtins_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-syasi/internal/builtins"
	"github.com/cwbudde/go-syasi/internal/evaluator"
	"github.com/cwbudde/go-syasi/internal/reader"
	"github.com/cwbudde/go-syasi/internal/runtime"
)

// newEvaluator wires a store, a global environment with special forms
// and the full builtin library installed, and the evaluator driving
// them, mirroring pkg/syasi.New's assembly of the same three pieces.
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

func TestArithmeticBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(- 5 2 1)", "2"},
		{"(- 5)", "-5"},
		{"(/ 8 2 2)", "2"},
		{"(/ 4)", "1/4"},
		{"(abs -7)", "7"},
		{"(quotient 7 2)", "3"},
		{"(remainder 7 2)", "1"},
		{"(modulo -7 2)", "1"},
		{"(gcd 12 18)", "6"},
		{"(lcm 4 6)", "12"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(= 1 1 1)", "#t"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestMathBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{"(expt 2 10)", "1024"},
		{"(sqrt 16)", "4"},
		{"(floor 3.7)", "3."},
		{"(ceiling 3.2)", "4."},
		{"(truncate -3.7)", "-3."},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestPredicateBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{"(number? 1)", "#t"},
		{"(number? 'a)", "#f"},
		{"(pair? (cons 1 2))", "#t"},
		{"(null? '())", "#t"},
		{"(list? '(1 2))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(symbol? 'x)", "#t"},
		{"(string? \"x\")", "#t"},
		{"(boolean? #t)", "#t"},
		{"(char? #\\a)", "#t"},
		{"(vector? (vector 1 2))", "#t"},
		{"(procedure? car)", "#t"},
		{"(exact? 1)", "#t"},
		{"(inexact? 1.0)", "#t"},
		{"(not #f)", "#t"},
		{"(not 3)", "#f"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestListBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(length '(1 2 3))", "3"},
		{"(append '(1 2) '(3 4))", "(1 2 3 4)"},
		{"(reverse '(1 2 3))", "(3 2 1)"},
		{"(list-tail '(1 2 3) 1)", "(2 3)"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestSetCarSetCdrMutateInPlace(t *testing.T) {
	source := `
		(define p (cons 1 2))
		(set-car! p 10)
		(set-cdr! p 20)
		p`
	assert.Equal(t, "(10 . 20)", runtime.Repr(run(t, source)))
}

func TestEqualityBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{"(eq? 'a 'a)", "#t"},
		{"(eqv? 1 1)", "#t"},
		{"(equal? '(1 2) '(1 2))", "#t"},
		{"(eq? '(1 2) '(1 2))", "#f"},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestVectorBuiltins(t *testing.T) {
	source := `
		(define v (make-vector 3 0))
		(vector-set! v 1 99)
		(vector-ref v 1)`
	assert.Equal(t, "99", runtime.Repr(run(t, source)))
	assert.Equal(t, "3", runtime.Repr(run(t, "(vector-length (vector 1 2 3))")))
}

func TestCharBuiltins(t *testing.T) {
	assert.Equal(t, "97", runtime.Repr(run(t, `(char->integer #\a)`)))
	assert.Equal(t, `#\a`, runtime.Repr(run(t, "(integer->char 97)")))
}

func TestStringBuiltins(t *testing.T) {
	cases := []struct{ source, want string }{
		{`(string-length "hello")`, "5"},
		{`(string-ref "hello" 1)`, `#\e`},
		{`(string-append "foo" "bar")`, `"foobar"`},
		{`(substring "hello" 1 3)`, `"el"`},
		{`(substring "hello" 2)`, `"llo"`},
		{`(list->string (string->list "ab"))`, `"ab"`},
	}
	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			assert.Equal(t, c.want, runtime.Repr(run(t, c.source)))
		})
	}
}

func TestIOBuiltinsWriteThroughConfiguredOutput(t *testing.T) {
	ev, envt := newEvaluator(t)
	var buf strings.Builder
	ev.SetOutput(&buf)
	forms, err := reader.ReadAll(ev.Store(), `(display "hi") (newline) (write "hi")`)
	require.NoError(t, err)
	for _, form := range forms {
		_, err := ev.Eval(envt, form)
		require.NoError(t, err)
	}
	assert.Equal(t, "hi\n\"hi\"", buf.String())
}

func TestControlBuiltinsApplyMapForEachForce(t *testing.T) {
	assert.Equal(t, "6", runtime.Repr(run(t, "(apply + 1 2 '(3))")))
	assert.Equal(t, "(2 4 6)", runtime.Repr(run(t, "(map (lambda (x) (* x 2)) '(1 2 3))")))
	assert.Equal(t, "(5 7 9)", runtime.Repr(run(t, "(map + '(1 2 3) '(4 5 6))")))

	source := `
		(define calls 0)
		(define p (delay (begin (set! calls (+ calls 1)) 'done)))
		(force p)
		(force p)
		calls`
	assert.Equal(t, "1", runtime.Repr(run(t, source)))
}

func TestWrongArgTypeErrors(t *testing.T) {
	ev, envt := newEvaluator(t)
	form, err := reader.Read(ev.Store(), "(car 1)")
	require.NoError(t, err)
	_, err = ev.Eval(envt, form)
	assert.Error(t, err)
}
