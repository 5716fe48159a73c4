package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquality(t *testing.T) {
	st := NewStore()
	a := NewPair(st, NewIntegerFromInt64(st, 1), EmptyList)
	b := NewPair(st, NewIntegerFromInt64(st, 1), EmptyList)

	assert.True(t, Eq(a, a), "a value is eq? to itself")
	assert.False(t, Eq(a, b), "structurally equal pairs are distinct objects")
	assert.False(t, Eqv(a, b), "eqv? does not recurse into pairs")
	assert.True(t, Equal(a, b), "equal? recurses into pair structure")

	assert.True(t, Eqv(NewIntegerFromInt64(st, 7), NewIntegerFromInt64(st, 7)), "eqv? compares exact integers by value")
	assert.False(t, Eqv(NewIntegerFromInt64(st, 7), NewReal(st, 7)), "eqv? distinguishes exactness")
}

func TestReprRoundTrip(t *testing.T) {
	st := NewStore()
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", NewIntegerFromInt64(st, 42), "42"},
		{"empty list", EmptyList, "()"},
		{"boolean true", NewBoolean(st, true), "#t"},
		{"boolean false", NewBoolean(st, false), "#f"},
		{"symbol", st.Intern("foo"), "foo"},
		{"string", NewString(st, "hi"), `"hi"`},
		{"character", NewCharacter(st, 'a'), `#\a`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Repr(c.v))
		})
	}
}

func TestReprList(t *testing.T) {
	st := NewStore()
	list := SliceToList(st, []Value{NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 2), NewIntegerFromInt64(st, 3)})
	assert.Equal(t, "(1 2 3)", Repr(list))
}

func TestReprCyclicPairDoesNotHang(t *testing.T) {
	st := NewStore()
	p := NewPair(st, NewIntegerFromInt64(st, 1), EmptyList)
	p.SetCdr(st, p)
	assert.Contains(t, Repr(p), "#inf#")
}

func TestListHelpers(t *testing.T) {
	st := NewStore()
	list := SliceToList(st, []Value{NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 2)})
	items, ok := ListToSlice(list)
	assert.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, ListLength(list))

	improper := NewPair(st, NewIntegerFromInt64(st, 1), NewIntegerFromInt64(st, 2))
	_, ok = ListToSlice(improper)
	assert.False(t, ok, "a dotted pair is not a proper list")
	assert.Equal(t, -1, ListLength(improper))
}
