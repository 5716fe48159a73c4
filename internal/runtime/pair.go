package runtime

// Pair is the universal list and syntax-tree cell: (car . cdr). It is
// mutable via SetCar/SetCdr, which is exactly how cyclic structures get
// built (§9 "Cyclic object graph"). Pair is a Container: the store's
// cycle pass traces both fields.
type Pair struct {
	car, cdr Value
}

// NewPair allocates a fresh (car . cdr) pair, joins it with the store,
// and attaches one reference to each field on its behalf. car(cons(x,y))
// = x and cdr(cons(x,y)) = y hold by construction (§8 invariant).
func NewPair(st *Store, car, cdr Value) *Pair {
	p := &Pair{car: st.Attach(car), cdr: st.Attach(cdr)}
	st.join(p)
	return p
}

func (p *Pair) Kind() Kind   { return KindPair }
func (p *Pair) IsTrue() bool { return true }

// Car returns the first field.
func (p *Pair) Car() Value { return p.car }

// Cdr returns the second field.
func (p *Pair) Cdr() Value { return p.cdr }

// SetCar mutates the first field, rebalancing the store's reference
// counts: the new value is attached, the old one exposed.
func (p *Pair) SetCar(st *Store, v Value) {
	old := p.car
	p.car = st.Attach(v)
	st.Expose(old)
}

// SetCdr mutates the second field, symmetrically to SetCar.
func (p *Pair) SetCdr(st *Store, v Value) {
	old := p.cdr
	p.cdr = st.Attach(v)
	st.Expose(old)
}

// Trace implements Container: a pair references its car and cdr.
func (p *Pair) Trace(fn func(Value)) {
	fn(p.car)
	fn(p.cdr)
}

func (p *Pair) release(st *Store) {
	st.Expose(p.car)
	st.Expose(p.cdr)
}

// emptyList is the distinguished singleton terminating proper lists. It
// satisfies neither is_pair nor ordinary pair field access (§3), so it
// is its own type rather than a degenerate Pair.
type emptyListType struct{}

func (emptyListType) Kind() Kind   { return KindEmptyList }
func (emptyListType) IsTrue() bool { return true }

// EmptyList is the single shared instance of the empty list. Every
// proper-list terminator and every nil-cdr in the tree is this value.
var EmptyList Value = emptyListType{}

// IsEmptyList reports whether v is the empty list.
func IsEmptyList(v Value) bool {
	_, ok := v.(emptyListType)
	return ok
}

// IsProperList reports whether v is a chain of pairs terminated by the
// empty list.
func IsProperList(v Value) bool {
	for {
		switch t := v.(type) {
		case emptyListType:
			return true
		case *Pair:
			v = t.cdr
		default:
			return false
		}
	}
}

// ListToSlice converts a proper list to a Go slice, in order. Returns
// false if v is not a proper list.
func ListToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch t := v.(type) {
		case emptyListType:
			return out, true
		case *Pair:
			out = append(out, t.car)
			v = t.cdr
		default:
			return nil, false
		}
	}
}

// SliceToList builds a proper list from a Go slice, joining every cons
// cell with the store, in the order given.
func SliceToList(st *Store, items []Value) Value {
	result := EmptyList
	for i := len(items) - 1; i >= 0; i-- {
		result = NewPair(st, items[i], result)
	}
	return result
}

// ListLength returns the number of cells in a proper list, or -1 if v
// is not a proper list.
func ListLength(v Value) int {
	n := 0
	for {
		switch t := v.(type) {
		case emptyListType:
			return n
		case *Pair:
			n++
			v = t.cdr
		default:
			return -1
		}
	}
}
