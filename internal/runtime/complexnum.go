package runtime

// Complex is an inexact complex number, backed by complex128. It is
// the top of the numeric tower (§4.2): every other variant promotes
// into it but it promotes into nothing. Grounded on
// original_source/model.h's ComplexObj.
type Complex struct {
	v complex128
}

func (n *Complex) Kind() Kind         { return KindNumber }
func (n *Complex) IsTrue() bool       { return true }
func (n *Complex) Level() NumberLevel { return LevelComplex }

// Complex128 returns the underlying value.
func (n *Complex) Complex128() complex128 { return n.v }

// NewComplex allocates a Complex.
func NewComplex(st *Store, v complex128) *Complex {
	n := &Complex{v: v}
	st.join(n)
	return n
}

// RealPart and ImagPart extract the two real-valued components,
// returned as Real values.
func RealPart(st *Store, n *Complex) *Real { return NewReal(st, real(n.v)) }
func ImagPart(st *Store, n *Complex) *Real { return NewReal(st, imag(n.v)) }

// MakeRectangular builds a Complex from separate real and imaginary
// parts, demoting to Real when the imaginary part is exactly zero.
func MakeRectangular(st *Store, re, im float64) Number {
	if im == 0 {
		return NewReal(st, re)
	}
	return NewComplex(st, complex(re, im))
}
