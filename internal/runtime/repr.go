package runtime

import (
	"strconv"
	"strings"
)

// Repr renders v in external representation (§4.2, §8): the syntax a
// reader would accept back, not a user-display form (write, not
// display). It walks pairs and vectors with an explicit cursor stack
// rather than Go recursion, per the same "no host recursion substitutes
// for an explicit structure" requirement the evaluator and store honor
// elsewhere in this package — a pathological deeply-nested or circular
// list must not blow the Go call stack. Cycles are rendered as #inf#,
// matching a reader macro original_source/model.cpp recognizes as a
// "back reference to an already-printed object" marker.
func Repr(v Value) string {
	var b strings.Builder
	reprInto(&b, v)
	return b.String()
}

// reprFrame is one entry of the explicit cursor stack: a list frame
// walks its pair chain one cons cell at a time via cur, remembering
// every cell it has opened (on the active print path) in opened so
// they can be unmarked when the frame closes; a vector frame walks its
// elements by index.
type reprFrame struct {
	cur    Value
	opened []*Pair

	vec   *Vector
	idx   int
	isVec bool
}

func reprInto(b *strings.Builder, root Value) {
	onPath := make(map[Value]bool) // containers on the active print path (ancestors)
	var stack []*reprFrame

	emit := func(v Value) {
		switch val := v.(type) {
		case *Pair:
			if onPath[Value(val)] {
				b.WriteString("#inf#")
				return
			}
			stack = append(stack, &reprFrame{cur: val})
		case *Vector:
			if onPath[Value(val)] {
				b.WriteString("#inf#")
				return
			}
			b.WriteString("#(")
			if val.Len() == 0 {
				b.WriteByte(')')
				return
			}
			onPath[val] = true
			stack = append(stack, &reprFrame{vec: val, isVec: true})
		default:
			b.WriteString(reprLeaf(v))
		}
	}

	emit(root)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.isVec {
			if top.idx >= top.vec.Len() {
				b.WriteByte(')')
				delete(onPath, Value(top.vec))
				stack = stack[:len(stack)-1]
				continue
			}
			if top.idx > 0 {
				b.WriteByte(' ')
			}
			item, _ := top.vec.Ref(top.idx)
			top.idx++
			emit(item)
			continue
		}

		closeList := func(suffix string) {
			b.WriteString(suffix)
			for _, p := range top.opened {
				delete(onPath, p)
			}
			stack = stack[:len(stack)-1]
		}

		if IsEmptyList(top.cur) {
			closeList(")")
			continue
		}
		pair, ok := top.cur.(*Pair)
		if !ok {
			// improper tail
			b.WriteString(" . ")
			emit(top.cur)
			top.cur = EmptyList
			continue
		}
		if onPath[pair] {
			closeList(" . #inf#)")
			continue
		}
		if len(top.opened) == 0 {
			b.WriteByte('(')
		} else {
			b.WriteByte(' ')
		}
		onPath[pair] = true
		top.opened = append(top.opened, pair)
		top.cur = pair.Cdr()
		emit(pair.Car())
	}
}

func reprLeaf(v Value) string {
	switch val := v.(type) {
	case emptyListType:
		return "()"
	case *Symbol:
		return val.Name()
	case *Boolean:
		if val.Value() {
			return "#t"
		}
		return "#f"
	case *Character:
		return reprChar(val.Rune())
	case *String:
		return reprString(val.Text())
	case Unspecified:
		return "#<Unspecified>"
	case *Integer:
		return val.v.String()
	case *Rational:
		return val.v.Num().String() + "/" + val.v.Denom().String()
	case *Real:
		return reprFloat(val.v)
	case *Complex:
		return reprComplex(val.v)
	case *Promise:
		return "#<promise>"
	default:
		if IsOperator(v) {
			return "#<procedure>"
		}
		return "#<unknown>"
	}
}

func reprChar(r rune) string {
	switch r {
	case ' ':
		return "#\\space"
	case '\n':
		return "#\\newline"
	case '\t':
		return "#\\tab"
	default:
		return "#\\" + string(r)
	}
}

func reprString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func reprFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += "."
	}
	return s
}

func reprComplex(c complex128) string {
	re, im := real(c), imag(c)
	sign := "+"
	if im < 0 {
		sign = ""
	}
	return reprFloat(re) + sign + reprFloat(im) + "i"
}
