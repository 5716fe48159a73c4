// Package errors defines the named error kinds the interpreter surfaces to
// its callers. Every error raised anywhere in the value model, the
// environment, the evaluator, or the operator protocol is one of these
// seven kinds; the host application (a REPL, a test, the CLI in
// cmd/syasi) formats them however it likes.
package errors

import "fmt"

// SyntaxError reports an empty combination, a malformed special form, or
// an improper list where a proper list was required.
type SyntaxError struct {
	Context string
	Reason  string
}

func (e *SyntaxError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("syntax error in %s: %s", e.Context, e.Reason)
}

// NewSyntaxError creates a SyntaxError.
func NewSyntaxError(context, reason string) error {
	return &SyntaxError{Context: context, Reason: reason}
}

// ============================================================================

// UnboundVariable reports a lookup that found no binding for a symbol.
type UnboundVariable struct {
	Symbol string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Symbol)
}

// NewUnboundVariable creates an UnboundVariable error.
func NewUnboundVariable(symbol string) error {
	return &UnboundVariable{Symbol: symbol}
}

// ============================================================================

// NotApplicable reports an attempt to call a non-operator value.
type NotApplicable struct {
	Repr string
}

func (e *NotApplicable) Error() string {
	return fmt.Sprintf("cannot apply %s: not an operator", e.Repr)
}

// NewNotApplicable creates a NotApplicable error.
func NewNotApplicable(repr string) error {
	return &NotApplicable{Repr: repr}
}

// ============================================================================

// WrongArgCount reports an arity mismatch at a call site.
type WrongArgCount struct {
	Operator string
	Want     string // e.g. "2", "at least 1"
	Got      int
}

func (e *WrongArgCount) Error() string {
	return fmt.Sprintf("%s: expected %s argument(s), got %d", e.Operator, e.Want, e.Got)
}

// NewWrongArgCount creates a WrongArgCount error.
func NewWrongArgCount(operator, want string, got int) error {
	return &WrongArgCount{Operator: operator, Want: want, Got: got}
}

// ============================================================================

// WrongArgType reports a type predicate failure on a builtin argument.
type WrongArgType struct {
	Operator string
	Want     string
	Got      string
}

func (e *WrongArgType) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Operator, e.Want, e.Got)
}

// NewWrongArgType creates a WrongArgType error.
func NewWrongArgType(operator, want, got string) error {
	return &WrongArgType{Operator: operator, Want: want, Got: got}
}

// ============================================================================

// NumericError reports division by exact zero, modulus by zero, or a
// non-integer where an integer was required.
type NumericError struct {
	Reason string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("numeric error: %s", e.Reason)
}

// NewNumericError creates a NumericError.
func NewNumericError(reason string) error {
	return &NumericError{Reason: reason}
}

// ============================================================================

// InternalError reports an evaluation-stack overflow, a repr-stack
// overflow, or a cycle-collection queue overflow. These are invariants
// of the implementation, not user errors.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}

// NewInternalError creates an InternalError.
func NewInternalError(reason string) error {
	return &InternalError{Reason: reason}
}

// ============================================================================
// Error checking utilities, mirroring the teacher's runtime.IsXxxError
// helpers so callers never need a type switch of their own.

func IsSyntaxError(err error) bool     { _, ok := err.(*SyntaxError); return ok }
func IsUnboundVariable(err error) bool { _, ok := err.(*UnboundVariable); return ok }
func IsNotApplicable(err error) bool   { _, ok := err.(*NotApplicable); return ok }
func IsWrongArgCount(err error) bool   { _, ok := err.(*WrongArgCount); return ok }
func IsWrongArgType(err error) bool    { _, ok := err.(*WrongArgType); return ok }
func IsNumericError(err error) bool    { _, ok := err.(*NumericError); return ok }
func IsInternalError(err error) bool   { _, ok := err.(*InternalError); return ok }
