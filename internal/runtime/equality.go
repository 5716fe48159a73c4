package runtime

// Eq implements eq?: identity comparison. Two values are eq? when they
// are the same Go pointer/value, with symbols, #t/#f and the empty list
// additionally guaranteed eq? whenever they are eqv? — this package
// interns symbols and shares #t/#f singletons per store, so plain ==
// suffices. Characters are allocated per use, so two equal characters
// are eqv? but not necessarily eq?. Grounded on original_source/eval.cpp's
// is_eq, which likewise compares the tagged pointer directly.
func Eq(a, b Value) bool {
	return a == b
}

// Eqv implements eqv?: like eq?, but additionally true for numbers of
// the same exactness and value, and for characters representing the
// same code point.
func Eqv(a, b Value) bool {
	if Eq(a, b) {
		return true
	}
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if aok && bok {
		return an.Level() == bn.Level() && NumEq(nil, an, bn)
	}
	ac, aok := a.(*Character)
	bc, bok := b.(*Character)
	if aok && bok {
		return ac.r == bc.r
	}
	return false
}

// Equal implements equal?: full structural recursion into pairs,
// vectors, and strings; everything else falls back to eqv?. Grounded
// on original_source/eval.cpp's is_equal. The recursion is plain Go
// recursion (not the evaluator's explicit stack) since equal? is not
// part of the tail-call-sensitive evaluation path — a cyclic structure
// will recurse forever here exactly as it does in the original, which
// does not guard against it either.
func Equal(a, b Value) bool {
	if Eqv(a, b) {
		return true
	}
	switch av := a.(type) {
	case *Pair:
		bv, ok := b.(*Pair)
		if !ok {
			return false
		}
		return Equal(av.Car(), bv.Car()) && Equal(av.Cdr(), bv.Cdr())
	case *Vector:
		bv, ok := b.(*Vector)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			ai, _ := av.Ref(i)
			bi, _ := bv.Ref(i)
			if !Equal(ai, bi) {
				return false
			}
		}
		return true
	case *String:
		bv, ok := b.(*String)
		return ok && av.Compare(bv) == 0
	default:
		return false
	}
}
