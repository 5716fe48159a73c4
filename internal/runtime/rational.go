package runtime

// Rational is an arbitrary-precision exact fraction, backed by
// math/big.Rat, always kept in lowest terms (big.Rat normalizes on
// every operation). Grounded on original_source/model.h's RatObj.
type Rational struct {
	v *bigRat
}

func (n *Rational) Kind() Kind         { return KindNumber }
func (n *Rational) IsTrue() bool       { return true }
func (n *Rational) Level() NumberLevel { return LevelRational }

// Rat returns the underlying *big.Rat. Callers must not mutate it.
func (n *Rational) Rat() *bigRat { return n.v }

// newRationalReduced wraps v, which big.Rat already keeps reduced. If
// the denominator is 1, callers generally prefer demoting back to
// Integer (NormalizeRational does this); this constructor does not,
// since binary arithmetic in number.go intentionally stays at a single
// promoted level for the duration of one operation.
func newRationalReduced(st *Store, v *bigRat) *Rational {
	n := &Rational{v: v}
	st.join(n)
	return n
}

// NewRational allocates a Rational from a numerator and denominator.
func NewRational(st *Store, num, den *bigInt) *Rational {
	return newRationalReduced(st, new(bigRat).SetFrac(num, den))
}

// NormalizeRational demotes a rational whose value is integral (e.g.
// the result of 6/3) back to an Integer, matching the reader / printer
// expectation that exact integral values always display as integers,
// not as N/1.
func NormalizeRational(st *Store, r *Rational) Number {
	if r.v.IsInt() {
		return NewInteger(st, new(bigInt).Set(r.v.Num()))
	}
	return r
}

func (n *Rational) toReal(st *Store) *Real {
	f, _ := new(bigRat).Set(n.v).Float64()
	return NewReal(st, f)
}
