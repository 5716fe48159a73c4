package runtime

import "strconv"

// Real is an inexact double-precision floating point number, backed by
// float64. Grounded on original_source/model.h's RealObj.
type Real struct {
	v float64
}

func (n *Real) Kind() Kind         { return KindNumber }
func (n *Real) IsTrue() bool       { return true }
func (n *Real) Level() NumberLevel { return LevelReal }

// Float64 returns the underlying value.
func (n *Real) Float64() float64 { return n.v }

// NewReal allocates a Real.
func NewReal(st *Store, v float64) *Real {
	n := &Real{v: v}
	st.join(n)
	return n
}

// ParseReal parses a floating point literal such as "3.14" or "1e10".
func ParseReal(st *Store, s string) (*Real, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return NewReal(st, v), true
}

func (n *Real) toComplex(st *Store) *Complex {
	return NewComplex(st, complex(n.v, 0))
}
