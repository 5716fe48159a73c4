package runtime

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigNumOpts lets cmp.Diff compare big.Int/big.Rat by value instead of
// by their unexported internal fields, the same comparer shape
// cuelang-cue's lit_test.go uses to diff big.Rat/big.Int-bearing ASTs.
var bigNumOpts = []cmp.Option{
	cmp.Comparer(func(x, y big.Int) bool { return x.Cmp(&y) == 0 }),
	cmp.Comparer(func(x, y big.Rat) bool { return x.Cmp(&y) == 0 }),
}

func TestAddPromotesToBroaderLevel(t *testing.T) {
	st := NewStore()

	sum, err := Add(st, NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 2))
	require.NoError(t, err)
	assert.Equal(t, LevelInteger, sum.Level())
	assert.Equal(t, "3", Repr(sum))

	half, err := Div(st, NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 2))
	require.NoError(t, err)
	assert.Equal(t, LevelRational, half.Level())

	mixed, err := Add(st, half, NewReal(st, 0.5))
	require.NoError(t, err)
	assert.Equal(t, LevelReal, mixed.Level(), "adding an exact rational to an inexact real promotes to real")
}

func TestDivByExactZeroErrors(t *testing.T) {
	st := NewStore()
	_, err := Div(st, NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 0))
	assert.Error(t, err)
}

func TestDivReducesExactIntegersToRational(t *testing.T) {
	st := NewStore()
	q, err := Div(st, NewIntegerFromInt64(st, 4), NewIntegerFromInt64(st, 2))
	require.NoError(t, err)
	assert.Equal(t, LevelInteger, q.Level(), "4/2 reduces back down to an exact integer")
	assert.Equal(t, "2", Repr(q))
}

func TestCompareOrdersAcrossLevels(t *testing.T) {
	st := NewStore()
	c, err := Compare(st, NewIntegerFromInt64(st, 1), NewReal(st, 1.5))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompareRejectsComplex(t *testing.T) {
	st := NewStore()
	a := MakeRectangular(st, 1, 2)
	b := MakeRectangular(st, 1, 3)
	_, err := Compare(st, a, b)
	assert.Error(t, err, "complex numbers have no total order")
}

func TestNumEqComparesAcrossExactness(t *testing.T) {
	st := NewStore()
	assert.True(t, NumEq(st, NewIntegerFromInt64(st, 3), NewReal(st, 3.0)))
	assert.False(t, NumEq(st, NewIntegerFromInt64(st, 3), NewReal(st, 3.5)))
}

func TestMakeRectangularDemotesRealImaginary(t *testing.T) {
	st := NewStore()
	n := MakeRectangular(st, 5, 0)
	_, isReal := n.(*Real)
	assert.True(t, isReal, "a zero imaginary part demotes to Real rather than staying Complex")
}

func TestIntegerDivisionOperations(t *testing.T) {
	st := NewStore()
	a, b := NewIntegerFromInt64(st, 7), NewIntegerFromInt64(st, 2)

	q, err := Quotient(st, a, b)
	require.NoError(t, err)
	assert.Equal(t, "3", Repr(q))

	r, err := Remainder(st, a, b)
	require.NoError(t, err)
	assert.Equal(t, "1", Repr(r))

	m, err := Modulo(st, NewIntegerFromInt64(st, -7), b)
	require.NoError(t, err)
	assert.Equal(t, "1", Repr(m), "modulo takes the sign of the divisor")
}

func TestGCDandLCM(t *testing.T) {
	st := NewStore()
	a, b := NewIntegerFromInt64(st, 12), NewIntegerFromInt64(st, 18)
	assert.Equal(t, "6", Repr(GCD(st, a, b)))
	assert.Equal(t, "36", Repr(LCM(st, a, b)))
}

func TestRationalArithmeticMatchesBigRatDirectly(t *testing.T) {
	st := NewStore()
	sum, err := Add(st, NewRational(st, big.NewInt(1), big.NewInt(3)), NewRational(st, big.NewInt(1), big.NewInt(6)))
	require.NoError(t, err)

	want := new(big.Rat).SetFrac(big.NewInt(1), big.NewInt(2))
	got := sum.(*Rational).Rat()
	if diff := cmp.Diff(*want, *got, bigNumOpts...); diff != "" {
		t.Errorf("1/3 + 1/6 mismatch (-want +got):\n%s", diff)
	}
}
