// Package runtime provides the core runtime value system for the
// interpreter: the value model (§4.2), the reference-counted value
// store (§4.1), and the lexical environment (§4.3). These three sit
// together in one package, mirroring the teacher's own runtime package,
// because the store's cycle collector and the value model's container
// predicate are two views of the same small set of types.
package runtime

// Kind discriminates the variants of Value. Tests for class membership
// (is_pair, is_number, ...) are built on top of it, matching the
// ClassType bitmask in the original source's model.h — Go gives us a
// real sum type, so a plain enum plus a type switch replaces the bitmask.
type Kind int

const (
	KindEmptyList Kind = iota
	KindPair
	KindSymbol
	KindBoolean
	KindCharacter
	KindString
	KindVector
	KindNumber
	KindPromise
	KindUnspecified
	KindOperator
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindEmptyList:
		return "empty-list"
	case KindPair:
		return "pair"
	case KindSymbol:
		return "symbol"
	case KindBoolean:
		return "boolean"
	case KindCharacter:
		return "character"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindNumber:
		return "number"
	case KindPromise:
		return "promise"
	case KindUnspecified:
		return "unspecified"
	case KindOperator:
		return "operator"
	case KindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// Value is the universal runtime value: every symbol, pair, number,
// string, procedure, and so on implements it.
type Value interface {
	// Kind reports which variant of the discriminated union this value is.
	Kind() Kind
	// IsTrue reports whether this value counts as true in a conditional.
	// Every value is true except the boolean #f.
	IsTrue() bool
}

// IsPair reports whether v is a non-empty Pair.
func IsPair(v Value) bool {
	_, ok := v.(*Pair)
	return ok
}

// IsSimple reports whether v is neither a pair nor the empty list — a
// "simple" object in the evaluator's sense (§4.4): looked up directly
// rather than descended into as a call.
func IsSimple(v Value) bool {
	if v == nil {
		return true
	}
	switch v.Kind() {
	case KindPair, KindEmptyList:
		return false
	default:
		return true
	}
}

// IsOperator reports whether v participates in the operator protocol
// (§4.5): a special form, a closure, or a builtin procedure.
func IsOperator(v Value) bool {
	return v != nil && v.Kind() == KindOperator
}

// IsSymbol reports whether v is a Symbol.
func IsSymbol(v Value) bool {
	_, ok := v.(*Symbol)
	return ok
}

// IsNumber reports whether v is any numeric tower variant.
func IsNumber(v Value) bool {
	return v != nil && v.Kind() == KindNumber
}

// IsContainer reports whether v can hold outbound references to other
// values and therefore participates in cycle collection (§4.1): only
// pairs and vectors qualify.
func IsContainer(v Value) bool {
	_, ok := v.(Container)
	return ok
}

// Container is implemented by the two value kinds that can form
// reference cycles: Pair and Vector. Trace calls fn once for every
// value this container directly, currently references.
type Container interface {
	Value
	Trace(fn func(Value))
}

// releaser is implemented by any value that owns outbound references
// it must drop when its refcount reaches zero. Leaf values (numbers,
// strings, symbols, booleans, characters) need no such hook. Because
// release is unexported, only types declared in this package can
// satisfy it.
type releaser interface {
	release(st *Store)
}

// Releasable is the exported counterpart of releaser, for operator
// values (closures, builtins, special forms) declared outside this
// package that still own outbound references — a closure's captured
// environment and body — needing exposure on reclaim.
type Releasable interface {
	Release(st *Store)
}
