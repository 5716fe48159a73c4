package runtime

// Boolean represents #t / #f. False (and only false) is false in a
// conditional (§3).
type Boolean struct {
	val bool
}

func (b *Boolean) Kind() Kind   { return KindBoolean }
func (b *Boolean) IsTrue() bool { return b.val }

// Value reports the underlying bool.
func (b *Boolean) Value() bool { return b.val }

// NewBoolean returns the shared #t or #f value for this store, lazily
// created on first use and reused on every subsequent call — matching
// the teacher's pool.go NewBoolean, which also returns pre-allocated
// singletons to avoid per-call allocation for the two most common
// values in the system.
func NewBoolean(st *Store, val bool) *Boolean {
	if st.trueVal == nil {
		st.trueVal = &Boolean{val: true}
		st.falseVal = &Boolean{val: false}
		st.join(st.trueVal)
		st.join(st.falseVal)
		// Permanent references: #t/#f are shared for the store's
		// entire lifetime.
		st.joined[st.trueVal] = 1
		st.joined[st.falseVal] = 1
	}
	if val {
		return st.trueVal
	}
	return st.falseVal
}

// Character is one printable unit.
type Character struct {
	r rune
}

func (c *Character) Kind() Kind   { return KindCharacter }
func (c *Character) IsTrue() bool { return true }

// Rune returns the underlying rune.
func (c *Character) Rune() rune { return c.r }

// NewCharacter allocates a character value.
func NewCharacter(st *Store, r rune) *Character {
	c := &Character{r: r}
	st.join(c)
	return c
}

// Unspecified is the distinguished value returned by side-effecting
// forms (define, set!, set-car!, ...). It prints as #<Unspecified>
// (§3), matching original_source/model.h's UnspecObj.
type Unspecified struct{}

func (Unspecified) Kind() Kind   { return KindUnspecified }
func (Unspecified) IsTrue() bool { return true }

// TheUnspecified is the single shared Unspecified instance.
var TheUnspecified Value = Unspecified{}
