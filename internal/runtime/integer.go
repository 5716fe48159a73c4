package runtime

import (
	"math/big"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// Integer is an arbitrary-precision exact integer, backed by math/big.
// Grounded on original_source/model.h's IntObj, which likewise wraps a
// single big-integer value at the most specific tower level.
type Integer struct {
	v *bigInt
}

func (n *Integer) Kind() Kind         { return KindNumber }
func (n *Integer) IsTrue() bool       { return true }
func (n *Integer) Level() NumberLevel { return LevelInteger }

// Int returns the underlying *big.Int. Callers must not mutate it.
func (n *Integer) Int() *big.Int { return n.v }

// NewInteger allocates an Integer wrapping v. v is not copied; pass a
// fresh *big.Int (e.g. the result of a big.Int arithmetic call).
func NewInteger(st *Store, v *bigInt) *Integer {
	n := &Integer{v: v}
	st.join(n)
	return n
}

// NewIntegerFromInt64 allocates an Integer from a native int64.
func NewIntegerFromInt64(st *Store, v int64) *Integer {
	return NewInteger(st, big.NewInt(v))
}

// ParseInteger parses a base-10 exact integer literal, returning false
// if s is not a valid integer.
func ParseInteger(st *Store, s string) (*Integer, bool) {
	v, ok := new(bigInt).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return NewInteger(st, v), true
}

func (n *Integer) toRational(st *Store) *Rational {
	return newRationalReduced(st, new(bigRat).SetInt(n.v))
}

// IsZero reports whether the integer is exactly zero.
func (n *Integer) IsZero() bool { return n.v.Sign() == 0 }

// Quotient, Remainder, and Modulo implement Scheme's three integer
// division operators. Remainder takes the sign of the dividend;
// Modulo takes the sign of the divisor (R7RS 6.2.6).
func Quotient(st *Store, a, b *Integer) (*Integer, error) {
	if b.IsZero() {
		return nil, divByZeroError()
	}
	q := new(bigInt).Quo(a.v, b.v)
	return NewInteger(st, q), nil
}

func Remainder(st *Store, a, b *Integer) (*Integer, error) {
	if b.IsZero() {
		return nil, divByZeroError()
	}
	r := new(bigInt).Rem(a.v, b.v)
	return NewInteger(st, r), nil
}

func Modulo(st *Store, a, b *Integer) (*Integer, error) {
	if b.IsZero() {
		return nil, divByZeroError()
	}
	m := new(bigInt).Mod(a.v, b.v)
	if m.Sign() != 0 && b.v.Sign() < 0 {
		m.Add(m, b.v)
	}
	return NewInteger(st, m), nil
}

func GCD(st *Store, a, b *Integer) *Integer {
	return NewInteger(st, new(bigInt).GCD(nil, nil, new(bigInt).Abs(a.v), new(bigInt).Abs(b.v)))
}

func LCM(st *Store, a, b *Integer) *Integer {
	if a.IsZero() || b.IsZero() {
		return NewIntegerFromInt64(st, 0)
	}
	g := new(bigInt).GCD(nil, nil, new(bigInt).Abs(a.v), new(bigInt).Abs(b.v))
	prod := new(bigInt).Mul(new(bigInt).Abs(a.v), new(bigInt).Abs(b.v))
	return NewInteger(st, prod.Div(prod, g))
}

func divByZeroError() error {
	return schemeerrors.NewNumericError("division by zero")
}
