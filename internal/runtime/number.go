package runtime

import (
	"math/big"
	"math/cmplx"

	schemeerrors "github.com/cwbudde/go-syasi/errors"
)

// bigInt and bigRat alias the standard library's arbitrary-precision
// types so the rest of this package can talk about "the big integer
// type" without importing math/big everywhere. Go-zh-go.old, the
// standard library's own source, makes math/big part of the retrieval
// pack itself, not an outside dependency.
type bigInt = big.Int
type bigRat = big.Rat

func cAbs(c complex128) float64 { return cmplx.Abs(c) }

// NumberLevel orders the four numeric tower variants from most to
// least specific, matching the NumLvl field on the original source's
// NumObj (model.h): "the smaller the level is, the more generic that
// number is" there maps, here, to "the smaller the level, the more
// specific" — binary operations promote both operands up to
// max(levelA, levelB) before applying the operation (§4.2).
type NumberLevel int

const (
	LevelInteger NumberLevel = iota
	LevelRational
	LevelReal
	LevelComplex
)

// Number is the common interface for the four numeric tower variants.
// Integer and Rational are exact; Real and Complex are inexact —
// exactness is intrinsic to the level, so Exact() is simply
// Level() < LevelReal, with no separate flag to keep in sync.
type Number interface {
	Value
	Level() NumberLevel
}

// Exact reports whether n is an exact (Integer or Rational) value.
func Exact(n Number) bool { return n.Level() < LevelReal }

// promoteBoth converts a and b to the numerically broader of their two
// levels and returns both converted values alongside that level.
func promoteBoth(st *Store, a, b Number) (Number, Number, NumberLevel) {
	level := a.Level()
	if b.Level() > level {
		level = b.Level()
	}
	return convertLevel(st, a, level), convertLevel(st, b, level), level
}

func convertLevel(st *Store, n Number, level NumberLevel) Number {
	for n.Level() < level {
		switch n.Level() {
		case LevelInteger:
			n = n.(*Integer).toRational(st)
		case LevelRational:
			n = n.(*Rational).toReal(st)
		case LevelReal:
			n = n.(*Real).toComplex(st)
		}
	}
	return n
}

// Add promotes both operands and adds them.
func Add(st *Store, a, b Number) (Number, error) {
	x, y, level := promoteBoth(st, a, b)
	switch level {
	case LevelInteger:
		return NewInteger(st, new(bigInt).Add(x.(*Integer).v, y.(*Integer).v)), nil
	case LevelRational:
		return NormalizeRational(st, newRationalReduced(st, new(bigRat).Add(x.(*Rational).v, y.(*Rational).v))), nil
	case LevelReal:
		return NewReal(st, x.(*Real).v+y.(*Real).v), nil
	default:
		return NewComplex(st, x.(*Complex).v+y.(*Complex).v), nil
	}
}

// Sub promotes both operands and subtracts b from a.
func Sub(st *Store, a, b Number) (Number, error) {
	x, y, level := promoteBoth(st, a, b)
	switch level {
	case LevelInteger:
		return NewInteger(st, new(bigInt).Sub(x.(*Integer).v, y.(*Integer).v)), nil
	case LevelRational:
		return NormalizeRational(st, newRationalReduced(st, new(bigRat).Sub(x.(*Rational).v, y.(*Rational).v))), nil
	case LevelReal:
		return NewReal(st, x.(*Real).v-y.(*Real).v), nil
	default:
		return NewComplex(st, x.(*Complex).v-y.(*Complex).v), nil
	}
}

// Mul promotes both operands and multiplies them.
func Mul(st *Store, a, b Number) (Number, error) {
	x, y, level := promoteBoth(st, a, b)
	switch level {
	case LevelInteger:
		return NewInteger(st, new(bigInt).Mul(x.(*Integer).v, y.(*Integer).v)), nil
	case LevelRational:
		return NormalizeRational(st, newRationalReduced(st, new(bigRat).Mul(x.(*Rational).v, y.(*Rational).v))), nil
	case LevelReal:
		return NewReal(st, x.(*Real).v*y.(*Real).v), nil
	default:
		return NewComplex(st, x.(*Complex).v*y.(*Complex).v), nil
	}
}

// Div promotes both operands and divides a by b. Division of two exact
// integers that does not evenly divide yields a rational (§4.2).
// Division by exact zero is a NumericError; division by inexact zero
// follows IEEE semantics.
func Div(st *Store, a, b Number) (Number, error) {
	x, y, level := promoteBoth(st, a, b)
	switch level {
	case LevelInteger:
		bi, ai := y.(*Integer).v, x.(*Integer).v
		if bi.Sign() == 0 {
			return nil, schemeerrors.NewNumericError("division by exact zero")
		}
		return NormalizeRational(st, newRationalReduced(st, new(bigRat).SetFrac(ai, bi))), nil
	case LevelRational:
		yr := y.(*Rational).v
		if yr.Sign() == 0 {
			return nil, schemeerrors.NewNumericError("division by exact zero")
		}
		return NormalizeRational(st, newRationalReduced(st, new(bigRat).Quo(x.(*Rational).v, yr))), nil
	case LevelReal:
		return NewReal(st, x.(*Real).v/y.(*Real).v), nil
	default:
		return NewComplex(st, x.(*Complex).v/y.(*Complex).v), nil
	}
}

// Abs returns the absolute value of n.
func Abs(st *Store, n Number) Number {
	switch v := n.(type) {
	case *Integer:
		return NewInteger(st, new(bigInt).Abs(v.v))
	case *Rational:
		return newRationalReduced(st, new(bigRat).Abs(v.v))
	case *Real:
		if v.v < 0 {
			return NewReal(st, -v.v)
		}
		return v
	default:
		c := v.(*Complex)
		return NewReal(st, cAbs(c.v))
	}
}

// Compare promotes both operands and returns -1/0/1, or an error if the
// level is Complex (which has no total order). The promoted
// intermediates are scratch values owned by st; callers need not
// release them themselves, as Compare never attaches them anywhere.
func Compare(st *Store, a, b Number) (int, error) {
	x, y, level := promoteBoth(st, a, b)
	defer releaseScratch(st, a, x)
	defer releaseScratch(st, b, y)
	switch level {
	case LevelInteger:
		return x.(*Integer).v.Cmp(y.(*Integer).v), nil
	case LevelRational:
		return x.(*Rational).v.Cmp(y.(*Rational).v), nil
	case LevelReal:
		xf, yf := x.(*Real).v, y.(*Real).v
		switch {
		case xf < yf:
			return -1, nil
		case xf > yf:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, schemeerrors.NewNumericError("complex numbers are not ordered")
	}
}

// releaseScratch discards a promotion result that was never attached
// anywhere: if promoteBoth had to allocate a converted copy of
// original, expose it immediately so the store reclaims it on the next
// sweep instead of holding it live forever at a permanent refcount of
// zero.
func releaseScratch(st *Store, original Number, converted Number) {
	if st != nil && Value(original) != Value(converted) {
		st.Expose(converted)
	}
}

// NumEq reports numeric equality under =, which (unlike eqv?) compares
// across exactness and level: 3 = 3.0 is true.
func NumEq(st *Store, a, b Number) bool {
	if a.Level() == LevelComplex || b.Level() == LevelComplex {
		x, y, _ := promoteBoth(st, a, b)
		defer releaseScratch(st, a, x)
		defer releaseScratch(st, b, y)
		return x.(*Complex).v == y.(*Complex).v
	}
	cmp, err := Compare(st, a, b)
	return err == nil && cmp == 0
}
