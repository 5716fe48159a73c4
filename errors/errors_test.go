package errors

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"syntax no context", NewSyntaxError("", "empty combination"), "syntax error: empty combination"},
		{"syntax with context", NewSyntaxError("if", "missing test"), "syntax error in if: missing test"},
		{"unbound", NewUnboundVariable("foo"), "unbound variable: foo"},
		{"not applicable", NewNotApplicable("3"), "cannot apply 3: not an operator"},
		{"wrong arg count", NewWrongArgCount("cons", "2", 3), "cons: expected 2 argument(s), got 3"},
		{"wrong arg type", NewWrongArgType("car", "pair", "integer"), "car: expected pair, got integer"},
		{"numeric", NewNumericError("division by exact zero"), "numeric error: division by exact zero"},
		{"internal", NewInternalError("evaluation stack overflow"), "internal error: evaluation stack overflow"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsSyntaxError(NewSyntaxError("", "x")) {
		t.Error("IsSyntaxError should recognize a SyntaxError")
	}
	if IsSyntaxError(NewNumericError("x")) {
		t.Error("IsSyntaxError should reject a NumericError")
	}
	if !IsUnboundVariable(NewUnboundVariable("x")) {
		t.Error("IsUnboundVariable should recognize an UnboundVariable")
	}
	if !IsNotApplicable(NewNotApplicable("x")) {
		t.Error("IsNotApplicable should recognize a NotApplicable")
	}
	if !IsWrongArgCount(NewWrongArgCount("f", "1", 0)) {
		t.Error("IsWrongArgCount should recognize a WrongArgCount")
	}
	if !IsWrongArgType(NewWrongArgType("f", "a", "b")) {
		t.Error("IsWrongArgType should recognize a WrongArgType")
	}
	if !IsNumericError(NewNumericError("x")) {
		t.Error("IsNumericError should recognize a NumericError")
	}
	if !IsInternalError(NewInternalError("x")) {
		t.Error("IsInternalError should recognize an InternalError")
	}
}
